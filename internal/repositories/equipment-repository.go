package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const equipmentTable = "equipment"

var equipmentColumns = []string{
	"id", "inventory_number", "type", "name", "model",
	"serial_number", "room", "owner", "written_off",
}

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	UpdateImported(ctx context.Context, id uint64, payload dto.ImportedEquipmentDTO) error
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindIDByInventoryNumber(ctx context.Context, inventoryNumber string) (uint64, error)
	ExistsInventoryNumber(ctx context.Context, inventoryNumber string, excludeID uint64) (bool, error)
	SearchEquipment(ctx context.Context, text string) ([]entities.Equipment, error)
	FilterEquipment(ctx context.Context, room, owner string, includeWrittenOff bool) ([]entities.Equipment, error)
	GetWrittenOff(ctx context.Context) ([]entities.Equipment, error)
	WriteOff(ctx context.Context, id uint64) error
	SetRoom(ctx context.Context, id uint64, room string) error
	CountInRoom(ctx context.Context, room string, excludeID uint64) (int, error)
	RewriteSynonymType(ctx context.Context, synonym, mainType string) (int64, error)
	ReplaceType(ctx context.Context, oldName, newName string) error
	ReplaceRoom(ctx context.Context, oldName, newName string) error
	ReplaceOwner(ctx context.Context, oldName, newName string) error
	ClearRoom(ctx context.Context, room string) error
	ClearOwner(ctx context.Context, owner string) error
	DistinctTypes(ctx context.Context) ([]string, error)
	DistinctRooms(ctx context.Context) ([]string, error)
	DistinctOwners(ctx context.Context) ([]string, error)
}

type EquipmentRepository struct {
	storage querier
}

func NewEquipmentRepository(storage querier) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	query, args, err := sq.Insert(equipmentTable).
		Columns("inventory_number", "type", "name", "model", "serial_number", "room", "owner", "written_off").
		Values(payload.InventoryNumber, payload.Type, payload.Name, payload.Model,
			payload.SerialNumber, payload.Room, payload.Owner, boolToInt(payload.WrittenOff)).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("вставка оборудования: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	query, args, err := sq.Update(equipmentTable).
		Set("inventory_number", payload.InventoryNumber).
		Set("type", payload.Type).
		Set("name", payload.Name).
		Set("model", payload.Model).
		Set("serial_number", payload.SerialNumber).
		Set("room", payload.Room).
		Set("owner", payload.Owner).
		Set("written_off", boolToInt(payload.WrittenOff)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	return r.execExpectingRow(ctx, query, args)
}

func (r *EquipmentRepository) UpdateImported(ctx context.Context, id uint64, payload dto.ImportedEquipmentDTO) error {
	query, args, err := sq.Update(equipmentTable).
		Set("type", payload.Type).
		Set("name", payload.Name).
		Set("model", payload.Model).
		Set("serial_number", payload.SerialNumber).
		Set("room", payload.Room).
		Set("owner", payload.Owner).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	return r.execExpectingRow(ctx, query, args)
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := sq.Select(equipmentColumns...).
		From(equipmentTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	equipment, err := scanEquipment(r.storage.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (r *EquipmentRepository) FindIDByInventoryNumber(ctx context.Context, inventoryNumber string) (uint64, error) {
	query, args, err := sq.Select("id").
		From(equipmentTable).
		Where(sq.Eq{"inventory_number": inventoryNumber}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) ExistsInventoryNumber(ctx context.Context, inventoryNumber string, excludeID uint64) (bool, error) {
	builder := sq.Select("COUNT(*)").
		From(equipmentTable).
		Where(sq.Eq{"inventory_number": inventoryNumber})
	if excludeID > 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EquipmentRepository) SearchEquipment(ctx context.Context, text string) ([]entities.Equipment, error) {
	pattern := "%" + text + "%"
	query, args, err := sq.Select(equipmentColumns...).
		From(equipmentTable).
		Where(sq.Eq{"written_off": 0}).
		Where(sq.Or{
			sq.Like{"inventory_number": pattern},
			sq.Like{"name": pattern},
			sq.Like{"model": pattern},
			sq.Like{"serial_number": pattern},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEquipment(rows)
}

func (r *EquipmentRepository) FilterEquipment(ctx context.Context, room, owner string, includeWrittenOff bool) ([]entities.Equipment, error) {
	builder := sq.Select(equipmentColumns...).
		From(equipmentTable).
		OrderBy("id")
	if !includeWrittenOff {
		builder = builder.Where(sq.Eq{"written_off": 0})
	}
	if room != "" {
		builder = builder.Where(sq.Like{"room": "%" + room + "%"})
	}
	if owner != "" {
		builder = builder.Where(sq.Like{"owner": "%" + owner + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEquipment(rows)
}

func (r *EquipmentRepository) GetWrittenOff(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select(equipmentColumns...).
		From(equipmentTable).
		Where(sq.Eq{"written_off": 1}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEquipment(rows)
}

func (r *EquipmentRepository) WriteOff(ctx context.Context, id uint64) error {
	query, args, err := sq.Update(equipmentTable).
		Set("written_off", 1).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	return r.execExpectingRow(ctx, query, args)
}

func (r *EquipmentRepository) SetRoom(ctx context.Context, id uint64, room string) error {
	query, args, err := sq.Update(equipmentTable).
		Set("room", room).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	return r.execExpectingRow(ctx, query, args)
}

// CountInRoom считает не-списанные единицы в кабинете; excludeID исключает
// собственную запись при обновлении, чтобы не отвергать правки без смены
// кабинета.
func (r *EquipmentRepository) CountInRoom(ctx context.Context, room string, excludeID uint64) (int, error) {
	builder := sq.Select("COUNT(*)").
		From(equipmentTable).
		Where(sq.Eq{"room": room, "written_off": 0})
	if excludeID > 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// RewriteSynonymType переписывает тип у всех строк, где он совпадает с
// синонимом без учёта регистра, и возвращает число затронутых строк.
// LOWER() в sqlite сворачивает только ASCII, поэтому кандидаты выбираются
// из базы, а регистр сводится на стороне Go.
func (r *EquipmentRepository) RewriteSynonymType(ctx context.Context, synonym, mainType string) (int64, error) {
	types, err := r.distinctColumn(ctx, "type")
	if err != nil {
		return 0, err
	}

	var changed int64
	for _, candidate := range types {
		if candidate == mainType || !strings.EqualFold(candidate, synonym) {
			continue
		}

		query, args, err := sq.Update(equipmentTable).
			Set("type", mainType).
			Where(sq.Eq{"type": candidate}).
			ToSql()
		if err != nil {
			return changed, err
		}

		result, err := r.storage.ExecContext(ctx, query, args...)
		if err != nil {
			return changed, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return changed, err
		}
		changed += affected
	}
	return changed, nil
}

func (r *EquipmentRepository) ReplaceType(ctx context.Context, oldName, newName string) error {
	return r.replaceColumn(ctx, "type", oldName, newName)
}

func (r *EquipmentRepository) ReplaceRoom(ctx context.Context, oldName, newName string) error {
	return r.replaceColumn(ctx, "room", oldName, newName)
}

func (r *EquipmentRepository) ReplaceOwner(ctx context.Context, oldName, newName string) error {
	return r.replaceColumn(ctx, "owner", oldName, newName)
}

func (r *EquipmentRepository) ClearRoom(ctx context.Context, room string) error {
	return r.replaceColumn(ctx, "room", room, "")
}

func (r *EquipmentRepository) ClearOwner(ctx context.Context, owner string) error {
	return r.replaceColumn(ctx, "owner", owner, "")
}

func (r *EquipmentRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "type")
}

func (r *EquipmentRepository) DistinctRooms(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "room")
}

func (r *EquipmentRepository) DistinctOwners(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "owner")
}

func (r *EquipmentRepository) replaceColumn(ctx context.Context, column, oldValue, newValue string) error {
	query, args, err := sq.Update(equipmentTable).
		Set(column, newValue).
		Where(sq.Eq{column: oldValue}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *EquipmentRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query, args, err := sq.Select("DISTINCT " + column).
		From(equipmentTable).
		Where(sq.NotEq{column: ""}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

func (r *EquipmentRepository) execExpectingRow(ctx context.Context, query string, args []interface{}) error {
	result, err := r.storage.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanEquipment(row interface{ Scan(dest ...any) error }) (*entities.Equipment, error) {
	var equipment entities.Equipment
	var writtenOff int64
	if err := row.Scan(
		&equipment.ID,
		&equipment.InventoryNumber,
		&equipment.Type,
		&equipment.Name,
		&equipment.Model,
		&equipment.SerialNumber,
		&equipment.Room,
		&equipment.Owner,
		&writtenOff,
	); err != nil {
		return nil, err
	}
	equipment.WrittenOff = writtenOff != 0
	return &equipment, nil
}

func collectEquipment(rows *sql.Rows) ([]entities.Equipment, error) {
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *equipment)
	}
	return list, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
