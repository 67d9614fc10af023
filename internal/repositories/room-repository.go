package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"

	"inventory-system/internal/entities"
)

const roomTable = "rooms"

type RoomRepositoryInterface interface {
	CreateRoom(ctx context.Context, name string, maxSeats int) error
	RoomExists(ctx context.Context, name string) (bool, error)
	GetAllRooms(ctx context.Context) ([]entities.Room, error)
	GetMaxSeats(ctx context.Context, name string) (int, error)
	RenameRoom(ctx context.Context, oldName, newName string, maxSeats null.Int) error
	DeleteRoom(ctx context.Context, name string) error
	EnsureRoom(ctx context.Context, name string) error
}

type RoomRepository struct {
	storage querier
}

func NewRoomRepository(storage querier) RoomRepositoryInterface {
	return &RoomRepository{
		storage: storage,
	}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, name string, maxSeats int) error {
	query, args, err := sq.Insert(roomTable).
		Columns("room_name", "max_seats").
		Values(name, maxSeats).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *RoomRepository) RoomExists(ctx context.Context, name string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(roomTable).
		Where(sq.Eq{"room_name": name}).
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

func (r *RoomRepository) GetAllRooms(ctx context.Context) ([]entities.Room, error) {
	query, args, err := sq.Select("id", "room_name", "max_seats").
		From(roomTable).
		OrderBy("room_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []entities.Room
	for rows.Next() {
		var room entities.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.MaxSeats); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetMaxSeats возвращает 0 для незаведённого кабинета: он считается
// безлимитным, как и кабинет с max_seats = 0.
func (r *RoomRepository) GetMaxSeats(ctx context.Context, name string) (int, error) {
	query, args, err := sq.Select("max_seats").
		From(roomTable).
		Where(sq.Eq{"room_name": name}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var maxSeats int
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&maxSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return maxSeats, nil
}

func (r *RoomRepository) RenameRoom(ctx context.Context, oldName, newName string, maxSeats null.Int) error {
	builder := sq.Update(roomTable).
		Set("room_name", newName)
	if maxSeats.Valid {
		builder = builder.Set("max_seats", maxSeats.Int)
	}

	query, args, err := builder.Where(sq.Eq{"room_name": oldName}).ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, name string) error {
	query, args, err := sq.Delete(roomTable).
		Where(sq.Eq{"room_name": name}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *RoomRepository) EnsureRoom(ctx context.Context, name string) error {
	query, args, err := sq.Insert(roomTable).
		Columns("room_name", "max_seats").
		Values(name, 0).
		Suffix("ON CONFLICT(room_name) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}
