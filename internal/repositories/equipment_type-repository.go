package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	apperrors "inventory-system/pkg/errors"
)

const equipmentTypeTable = "equipment_types"

type EquipmentTypeRepositoryInterface interface {
	CreateType(ctx context.Context, name string) error
	TypeExists(ctx context.Context, name string) (bool, error)
	FindCanonicalName(ctx context.Context, name string) (string, error)
	GetAllTypes(ctx context.Context) ([]string, error)
	RenameType(ctx context.Context, oldName, newName string) error
	DeleteType(ctx context.Context, name string) error
	EnsureType(ctx context.Context, name string) error
}

type EquipmentTypeRepository struct {
	storage querier
}

func NewEquipmentTypeRepository(storage querier) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{
		storage: storage,
	}
}

func (r *EquipmentTypeRepository) CreateType(ctx context.Context, name string) error {
	query, args, err := sq.Insert(equipmentTypeTable).
		Columns("type_name").
		Values(name).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *EquipmentTypeRepository) TypeExists(ctx context.Context, name string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(equipmentTypeTable).
		Where(sq.Eq{"type_name": name}).
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

// FindCanonicalName возвращает каноническое написание типа по имени без
// учёта регистра. LOWER() в sqlite сворачивает только ASCII, поэтому
// регистр сводится на стороне Go.
func (r *EquipmentTypeRepository) FindCanonicalName(ctx context.Context, name string) (string, error) {
	names, err := r.GetAllTypes(ctx)
	if err != nil {
		return "", err
	}

	for _, candidate := range names {
		if strings.EqualFold(candidate, name) {
			return candidate, nil
		}
	}
	return "", apperrors.ErrNotFound
}

func (r *EquipmentTypeRepository) GetAllTypes(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("type_name").
		From(equipmentTypeTable).
		OrderBy("type_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.collectNames(ctx, query, args)
}

func (r *EquipmentTypeRepository) RenameType(ctx context.Context, oldName, newName string) error {
	query, args, err := sq.Update(equipmentTypeTable).
		Set("type_name", newName).
		Where(sq.Eq{"type_name": oldName}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *EquipmentTypeRepository) DeleteType(ctx context.Context, name string) error {
	query, args, err := sq.Delete(equipmentTypeTable).
		Where(sq.Eq{"type_name": name}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *EquipmentTypeRepository) EnsureType(ctx context.Context, name string) error {
	query, args, err := sq.Insert(equipmentTypeTable).
		Columns("type_name").
		Values(name).
		Suffix("ON CONFLICT(type_name) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *EquipmentTypeRepository) collectNames(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
