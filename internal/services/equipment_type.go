package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentTypeService struct {
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	synonymRepo   repositories.TypeSynonymRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentTypeService(
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	logger *zap.Logger,
) *EquipmentTypeService {
	return &EquipmentTypeService{
		typeRepo:      typeRepo,
		equipmentRepo: equipmentRepo,
		synonymRepo:   synonymRepo,
		logger:        logger,
	}
}

func (s *EquipmentTypeService) AddType(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewInvalidInputError("название типа не может быть пустым")
	}

	exists, err := s.typeRepo.TypeExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrTypeExists
	}

	if err := s.typeRepo.CreateType(ctx, name); err != nil {
		s.logger.Error("ошибка при создании типа", zap.String("type", name), zap.Error(err))
		return err
	}

	s.logger.Debug("тип добавлен", zap.String("type", name))
	return nil
}

func (s *EquipmentTypeService) GetAllTypes(ctx context.Context) ([]string, error) {
	return s.typeRepo.GetAllTypes(ctx)
}

// UpdateType переименовывает тип и каскадно правит оборудование и синонимы.
func (s *EquipmentTypeService) UpdateType(ctx context.Context, oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return apperrors.NewInvalidInputError("название типа не может быть пустым")
	}
	if oldName == newName {
		return apperrors.ErrNoChanges
	}

	// уникальность нового имени проверяется до каскада по оборудованию
	exists, err := s.typeRepo.TypeExists(ctx, newName)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrTypeExists
	}

	if err := s.equipmentRepo.ReplaceType(ctx, oldName, newName); err != nil {
		return err
	}
	if err := s.typeRepo.RenameType(ctx, oldName, newName); err != nil {
		return err
	}
	if err := s.synonymRepo.ReplaceMainType(ctx, oldName, newName); err != nil {
		return err
	}

	s.logger.Debug("тип переименован", zap.String("old", oldName), zap.String("new", newName))
	return nil
}

// DeleteType удаляет тип: ссылающееся оборудование получает канонический
// маркер "Невідомо", синонимы типа удаляются. Повторное удаление — успех.
func (s *EquipmentTypeService) DeleteType(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || name == constants.UnknownType {
		return nil
	}

	if err := s.typeRepo.EnsureType(ctx, constants.UnknownType); err != nil {
		return err
	}
	if err := s.equipmentRepo.ReplaceType(ctx, name, constants.UnknownType); err != nil {
		return err
	}
	if err := s.synonymRepo.DeleteSynonymsForType(ctx, name); err != nil {
		return err
	}
	if err := s.typeRepo.DeleteType(ctx, name); err != nil {
		return err
	}

	s.logger.Debug("тип удалён", zap.String("type", name))
	return nil
}

// EnsureType — идемпотентное "создать при отсутствии"; пустое имя молча
// игнорируется.
func (s *EquipmentTypeService) EnsureType(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.typeRepo.EnsureType(ctx, name)
}
