package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type RoomService struct {
	roomRepo      repositories.RoomRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewRoomService(
	roomRepo repositories.RoomRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:      roomRepo,
		equipmentRepo: equipmentRepo,
		validate:      validate,
		logger:        logger,
	}
}

func (s *RoomService) AddRoom(ctx context.Context, payload dto.CreateRoomDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные кабинета: %v", err)
	}

	exists, err := s.roomRepo.RoomExists(ctx, payload.Name)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrRoomExists
	}

	if err := s.roomRepo.CreateRoom(ctx, payload.Name, payload.MaxSeats); err != nil {
		s.logger.Error("ошибка при создании кабинета", zap.String("room", payload.Name), zap.Error(err))
		return err
	}

	s.logger.Debug("кабинет добавлен", zap.String("room", payload.Name), zap.Int("max_seats", payload.MaxSeats))
	return nil
}

func (s *RoomService) GetAllRooms(ctx context.Context) ([]entities.Room, error) {
	return s.roomRepo.GetAllRooms(ctx)
}

func (s *RoomService) GetRoomNames(ctx context.Context) ([]string, error) {
	rooms, err := s.roomRepo.GetAllRooms(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

func (s *RoomService) GetRoomMaxSeats(ctx context.Context, name string) (int, error) {
	return s.roomRepo.GetMaxSeats(ctx, name)
}

// UpdateRoom переименовывает кабинет (с каскадом на оборудование) и/или
// меняет лимит мест. Без фактических изменений возвращает ErrNoChanges.
func (s *RoomService) UpdateRoom(ctx context.Context, oldName string, payload dto.UpdateRoomDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные кабинета: %v", err)
	}

	oldName = strings.TrimSpace(oldName)
	if oldName == payload.NewName && !payload.MaxSeats.Valid {
		return apperrors.ErrNoChanges
	}

	if oldName != payload.NewName {
		// уникальность нового имени проверяется до каскада по оборудованию
		exists, err := s.roomRepo.RoomExists(ctx, payload.NewName)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrRoomExists
		}
		if err := s.equipmentRepo.ReplaceRoom(ctx, oldName, payload.NewName); err != nil {
			return err
		}
	}
	if err := s.roomRepo.RenameRoom(ctx, oldName, payload.NewName, payload.MaxSeats); err != nil {
		return err
	}

	s.logger.Debug("кабинет обновлён", zap.String("old", oldName), zap.String("new", payload.NewName))
	return nil
}

// DeleteRoom очищает поле кабинета у ссылающегося оборудования и удаляет
// запись. Повторное удаление — успех.
func (s *RoomService) DeleteRoom(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	if err := s.equipmentRepo.ClearRoom(ctx, name); err != nil {
		return err
	}
	if err := s.roomRepo.DeleteRoom(ctx, name); err != nil {
		return err
	}

	s.logger.Debug("кабинет удалён", zap.String("room", name))
	return nil
}

func (s *RoomService) EnsureRoom(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.roomRepo.EnsureRoom(ctx, name)
}
