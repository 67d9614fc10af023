package errors

import (
	"errors"
	"fmt"
)

var (
	// Общие
	ErrNotFound  = fmt.Errorf("запись не найдена")
	ErrNoChanges = fmt.Errorf("нет изменений для сохранения")

	// Нарушения уникальности
	ErrEquipmentExists = fmt.Errorf("оборудование с таким инвентарным номером уже существует")
	ErrTypeExists      = fmt.Errorf("тип оборудования уже существует")
	ErrRoomExists      = fmt.Errorf("кабинет уже существует")
	ErrOwnerExists     = fmt.Errorf("владелец уже существует")
	ErrSynonymExists   = fmt.Errorf("синоним уже существует")
)

// RoomCapacityError — отдельный сигнал переполнения кабинета, несёт его имя.
type RoomCapacityError struct {
	Room string
}

func (e *RoomCapacityError) Error() string {
	return fmt.Sprintf("кабинет %s превышает максимальное количество мест", e.Room)
}

func NewRoomCapacityError(room string) error {
	return &RoomCapacityError{Room: room}
}

func IsRoomCapacity(err error) bool {
	var capErr *RoomCapacityError
	return errors.As(err, &capErr)
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
