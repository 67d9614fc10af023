package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	roomRepo      repositories.RoomRepositoryInterface
	ownerRepo     repositories.OwnerRepositoryInterface
	synonymRepo   repositories.TypeSynonymRepositoryInterface
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	roomRepo repositories.RoomRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		typeRepo:      typeRepo,
		roomRepo:      roomRepo,
		ownerRepo:     ownerRepo,
		synonymRepo:   synonymRepo,
		validate:      validate,
		logger:        logger,
	}
}

// AddEquipment проверяет уникальность инвентарного номера и вместимость
// кабинета до каких-либо записей, затем доводит справочники, вставляет
// запись и перезапускает унификацию типов.
func (s *EquipmentService) AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	if err := s.validate.Struct(payload); err != nil {
		return 0, apperrors.NewInvalidInputError("некорректные данные оборудования: %v", err)
	}

	equipType, err := resolveEquipmentType(ctx, s.synonymRepo, s.typeRepo, payload.Type)
	if err != nil {
		return 0, err
	}
	payload.Type = equipType

	if payload.Room != "" {
		free, err := roomHasFreeSeat(ctx, s.roomRepo, s.equipmentRepo, payload.Room, 0)
		if err != nil {
			return 0, err
		}
		if !free {
			s.logger.Warn("кабинет переполнен",
				zap.String("room", payload.Room),
				zap.String("inventory_number", payload.InventoryNumber))
			return 0, apperrors.NewRoomCapacityError(payload.Room)
		}
	}

	duplicate, err := s.equipmentRepo.ExistsInventoryNumber(ctx, payload.InventoryNumber, 0)
	if err != nil {
		return 0, err
	}
	if duplicate {
		s.logger.Warn("дубликат инвентарного номера", zap.String("inventory_number", payload.InventoryNumber))
		return 0, apperrors.ErrEquipmentExists
	}

	if err := ensureReferences(ctx, s.typeRepo, s.roomRepo, s.ownerRepo, payload.Type, payload.Room, payload.Owner); err != nil {
		return 0, err
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании оборудования",
			zap.String("inventory_number", payload.InventoryNumber), zap.Error(err))
		return 0, err
	}

	if _, err := unifyEquipmentTypes(ctx, s.synonymRepo, s.equipmentRepo); err != nil {
		return id, err
	}

	s.logger.Debug("оборудование добавлено",
		zap.Uint64("id", id),
		zap.String("inventory_number", payload.InventoryNumber),
		zap.String("type", payload.Type))
	return id, nil
}

// UpdateEquipment повторяет семантику добавления, но при подсчёте занятости
// кабинета исключает собственную запись: правка без смены кабинета не
// должна отвергаться.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные оборудования: %v", err)
	}

	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return err
	}

	equipType, err := resolveEquipmentType(ctx, s.synonymRepo, s.typeRepo, payload.Type)
	if err != nil {
		return err
	}
	payload.Type = equipType

	if payload.Room != "" {
		free, err := roomHasFreeSeat(ctx, s.roomRepo, s.equipmentRepo, payload.Room, id)
		if err != nil {
			return err
		}
		if !free {
			s.logger.Warn("кабинет переполнен", zap.String("room", payload.Room), zap.Uint64("id", id))
			return apperrors.NewRoomCapacityError(payload.Room)
		}
	}

	duplicate, err := s.equipmentRepo.ExistsInventoryNumber(ctx, payload.InventoryNumber, id)
	if err != nil {
		return err
	}
	if duplicate {
		return apperrors.ErrEquipmentExists
	}

	if err := ensureReferences(ctx, s.typeRepo, s.roomRepo, s.ownerRepo, payload.Type, payload.Room, payload.Owner); err != nil {
		return err
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, payload); err != nil {
		s.logger.Error("ошибка при обновлении оборудования", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.logger.Debug("оборудование обновлено", zap.Uint64("id", id))
	return nil
}

func (s *EquipmentService) GetEquipmentByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

// SearchEquipment ищет подстроку в инвентарном номере, названии, модели и
// серийном номере среди не-списанных записей. Пустой запрос возвращает
// пустой список, не обращаясь к базе.
func (s *EquipmentService) SearchEquipment(ctx context.Context, text string) ([]entities.Equipment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entities.Equipment{}, nil
	}
	return s.equipmentRepo.SearchEquipment(ctx, text)
}

func (s *EquipmentService) FilterEquipment(ctx context.Context, payload dto.FilterEquipmentDTO) ([]entities.Equipment, error) {
	room := normalizeFilterValue(payload.Room)
	owner := normalizeFilterValue(payload.Owner)
	return s.equipmentRepo.FilterEquipment(ctx, room, owner, payload.IncludeWrittenOff)
}

func (s *EquipmentService) GetWrittenOff(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetWrittenOff(ctx)
}

// WriteOffEquipment помечает запись списанной. Операция идемпотентна,
// остальные поля не меняются.
func (s *EquipmentService) WriteOffEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.WriteOff(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("оборудование списано", zap.Uint64("id", id))
	return nil
}

// MoveToStock переводит запись в фиксированный кабинет-склад.
func (s *EquipmentService) MoveToStock(ctx context.Context, id uint64) error {
	current, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return err
	}
	if current.Room == constants.StockRoom {
		return nil
	}

	free, err := roomHasFreeSeat(ctx, s.roomRepo, s.equipmentRepo, constants.StockRoom, id)
	if err != nil {
		return err
	}
	if !free {
		return apperrors.NewRoomCapacityError(constants.StockRoom)
	}

	if err := s.roomRepo.EnsureRoom(ctx, constants.StockRoom); err != nil {
		return err
	}
	if err := s.equipmentRepo.SetRoom(ctx, id, constants.StockRoom); err != nil {
		return err
	}

	s.logger.Debug("оборудование перемещено на склад", zap.Uint64("id", id))
	return nil
}

// CheckRoomCapacity — предикат "в кабинете есть свободное место".
func (s *EquipmentService) CheckRoomCapacity(ctx context.Context, room string) (bool, error) {
	return roomHasFreeSeat(ctx, s.roomRepo, s.equipmentRepo, room, 0)
}

// ResolveType приводит сырой токен к каноническому типу.
func (s *EquipmentService) ResolveType(ctx context.Context, raw string) (string, error) {
	return resolveEquipmentType(ctx, s.synonymRepo, s.typeRepo, raw)
}

func normalizeFilterValue(value string) string {
	value = strings.TrimSpace(value)
	if value == constants.NoFilter {
		return ""
	}
	return value
}

// resolveEquipmentType: синоним -> существующий канонический тип (без учёта
// регистра) -> "Невідомо". Единое правило для добавления, правки и импорта.
func resolveEquipmentType(
	ctx context.Context,
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	raw string,
) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return constants.UnknownType, nil
	}

	mainType, err := synonymRepo.GetMainType(ctx, raw)
	if err == nil {
		return mainType, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	canonical, err := typeRepo.FindCanonicalName(ctx, raw)
	if err == nil {
		return canonical, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	return constants.UnknownType, nil
}

// roomHasFreeSeat: лимит 0 означает "без ограничения"; иначе число
// не-списанных единиц в кабинете должно быть меньше лимита.
func roomHasFreeSeat(
	ctx context.Context,
	roomRepo repositories.RoomRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	room string,
	excludeEquipmentID uint64,
) (bool, error) {
	maxSeats, err := roomRepo.GetMaxSeats(ctx, room)
	if err != nil {
		return false, err
	}
	if maxSeats == 0 {
		return true, nil
	}

	count, err := equipmentRepo.CountInRoom(ctx, room, excludeEquipmentID)
	if err != nil {
		return false, err
	}
	return count < maxSeats, nil
}

// ensureReferences идемпотентно заводит справочные записи, на которые
// ссылается оборудование; пустые имена пропускаются.
func ensureReferences(
	ctx context.Context,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	roomRepo repositories.RoomRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	equipType, room, owner string,
) error {
	if equipType != "" {
		if err := typeRepo.EnsureType(ctx, equipType); err != nil {
			return err
		}
	}
	if room != "" {
		if err := roomRepo.EnsureRoom(ctx, room); err != nil {
			return err
		}
	}
	if owner != "" {
		if err := ownerRepo.EnsureOwner(ctx, owner); err != nil {
			return err
		}
	}
	return nil
}
