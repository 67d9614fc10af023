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

type OwnerService struct {
	ownerRepo     repositories.OwnerRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewOwnerService(
	ownerRepo repositories.OwnerRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) *OwnerService {
	return &OwnerService{
		ownerRepo:     ownerRepo,
		equipmentRepo: equipmentRepo,
		validate:      validate,
		logger:        logger,
	}
}

func (s *OwnerService) AddOwner(ctx context.Context, payload dto.CreateOwnerDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные владельца: %v", err)
	}

	exists, err := s.ownerRepo.OwnerExists(ctx, payload.FullName)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrOwnerExists
	}

	if err := s.ownerRepo.CreateOwner(ctx, payload); err != nil {
		s.logger.Error("ошибка при создании владельца", zap.String("owner", payload.FullName), zap.Error(err))
		return err
	}

	s.logger.Debug("владелец добавлен", zap.String("owner", payload.FullName))
	return nil
}

func (s *OwnerService) GetAllOwners(ctx context.Context) ([]entities.Owner, error) {
	return s.ownerRepo.GetAllOwners(ctx)
}

func (s *OwnerService) GetOwnerNames(ctx context.Context) ([]string, error) {
	owners, err := s.ownerRepo.GetAllOwners(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(owners))
	for _, owner := range owners {
		names = append(names, owner.FullName)
	}
	return names, nil
}

func (s *OwnerService) GetOwnerDetails(ctx context.Context, fullName string) (*entities.Owner, error) {
	return s.ownerRepo.FindOwnerByName(ctx, fullName)
}

// UpdateOwner меняет ФИО (с каскадом на оборудование) и заданные поля
// карточки; незаданные null-поля не трогаются.
func (s *OwnerService) UpdateOwner(ctx context.Context, oldFullName string, payload dto.UpdateOwnerDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные владельца: %v", err)
	}

	oldFullName = strings.TrimSpace(oldFullName)
	hasCardChanges := payload.Position.Valid || payload.PCIP.Valid || payload.PCName.Valid ||
		payload.Phone.Valid || payload.Email.Valid
	if oldFullName == payload.NewFullName && !hasCardChanges {
		return apperrors.ErrNoChanges
	}

	if oldFullName != payload.NewFullName {
		// уникальность нового ФИО проверяется до каскада по оборудованию
		exists, err := s.ownerRepo.OwnerExists(ctx, payload.NewFullName)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrOwnerExists
		}
		if err := s.equipmentRepo.ReplaceOwner(ctx, oldFullName, payload.NewFullName); err != nil {
			return err
		}
	}
	if err := s.ownerRepo.UpdateOwner(ctx, oldFullName, payload); err != nil {
		return err
	}

	s.logger.Debug("владелец обновлён", zap.String("old", oldFullName), zap.String("new", payload.NewFullName))
	return nil
}

// DeleteOwner очищает поле владельца у ссылающегося оборудования и удаляет
// запись. Повторное удаление — успех.
func (s *OwnerService) DeleteOwner(ctx context.Context, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil
	}

	if err := s.equipmentRepo.ClearOwner(ctx, fullName); err != nil {
		return err
	}
	if err := s.ownerRepo.DeleteOwner(ctx, fullName); err != nil {
		return err
	}

	s.logger.Debug("владелец удалён", zap.String("owner", fullName))
	return nil
}

func (s *OwnerService) EnsureOwner(ctx context.Context, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil
	}
	return s.ownerRepo.EnsureOwner(ctx, fullName)
}
