package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const ownerTable = "owners"

var ownerColumns = []string{"id", "full_name", "position", "pc_ip", "pc_name", "phone", "email"}

type OwnerRepositoryInterface interface {
	CreateOwner(ctx context.Context, payload dto.CreateOwnerDTO) error
	OwnerExists(ctx context.Context, fullName string) (bool, error)
	GetAllOwners(ctx context.Context) ([]entities.Owner, error)
	FindOwnerByName(ctx context.Context, fullName string) (*entities.Owner, error)
	UpdateOwner(ctx context.Context, oldFullName string, payload dto.UpdateOwnerDTO) error
	DeleteOwner(ctx context.Context, fullName string) error
	EnsureOwner(ctx context.Context, fullName string) error
}

type OwnerRepository struct {
	storage querier
}

func NewOwnerRepository(storage querier) OwnerRepositoryInterface {
	return &OwnerRepository{
		storage: storage,
	}
}

func (r *OwnerRepository) CreateOwner(ctx context.Context, payload dto.CreateOwnerDTO) error {
	query, args, err := sq.Insert(ownerTable).
		Columns("full_name", "position", "pc_ip", "pc_name", "phone", "email").
		Values(payload.FullName, payload.Position, payload.PCIP, payload.PCName, payload.Phone, payload.Email).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *OwnerRepository) OwnerExists(ctx context.Context, fullName string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(ownerTable).
		Where(sq.Eq{"full_name": fullName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OwnerRepository) GetAllOwners(ctx context.Context) ([]entities.Owner, error) {
	query, args, err := sq.Select(ownerColumns...).
		From(ownerTable).
		OrderBy("full_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []entities.Owner
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		owners = append(owners, *owner)
	}
	return owners, rows.Err()
}

func (r *OwnerRepository) FindOwnerByName(ctx context.Context, fullName string) (*entities.Owner, error) {
	query, args, err := sq.Select(ownerColumns...).
		From(ownerTable).
		Where(sq.Eq{"full_name": fullName}).
		ToSql()
	if err != nil {
		return nil, err
	}

	owner, err := scanOwner(r.storage.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return owner, nil
}

// UpdateOwner меняет ФИО и только те поля карточки, что заданы в payload.
func (r *OwnerRepository) UpdateOwner(ctx context.Context, oldFullName string, payload dto.UpdateOwnerDTO) error {
	builder := sq.Update(ownerTable).
		Set("full_name", payload.NewFullName)
	if payload.Position.Valid {
		builder = builder.Set("position", payload.Position.String)
	}
	if payload.PCIP.Valid {
		builder = builder.Set("pc_ip", payload.PCIP.String)
	}
	if payload.PCName.Valid {
		builder = builder.Set("pc_name", payload.PCName.String)
	}
	if payload.Phone.Valid {
		builder = builder.Set("phone", payload.Phone.String)
	}
	if payload.Email.Valid {
		builder = builder.Set("email", payload.Email.String)
	}

	query, args, err := builder.Where(sq.Eq{"full_name": oldFullName}).ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *OwnerRepository) DeleteOwner(ctx context.Context, fullName string) error {
	query, args, err := sq.Delete(ownerTable).
		Where(sq.Eq{"full_name": fullName}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *OwnerRepository) EnsureOwner(ctx context.Context, fullName string) error {
	query, args, err := sq.Insert(ownerTable).
		Columns("full_name").
		Values(fullName).
		Suffix("ON CONFLICT(full_name) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func scanOwner(row interface{ Scan(dest ...any) error }) (*entities.Owner, error) {
	var owner entities.Owner
	if err := row.Scan(
		&owner.ID,
		&owner.FullName,
		&owner.Position,
		&owner.PCIP,
		&owner.PCName,
		&owner.Phone,
		&owner.Email,
	); err != nil {
		return nil, err
	}
	return &owner, nil
}
