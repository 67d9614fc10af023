package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type TypeSynonymService struct {
	synonymRepo   repositories.TypeSynonymRepositoryInterface
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewTypeSynonymService(
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) *TypeSynonymService {
	return &TypeSynonymService{
		synonymRepo:   synonymRepo,
		typeRepo:      typeRepo,
		equipmentRepo: equipmentRepo,
		validate:      validate,
		logger:        logger,
	}
}

// AddSynonym заводит канонический тип при необходимости, добавляет пару и
// сразу перезапускает унификацию: новый синоним задним числом нормализует
// уже накопленные данные.
func (s *TypeSynonymService) AddSynonym(ctx context.Context, payload dto.CreateTypeSynonymDTO) error {
	if err := s.validate.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные синонима: %v", err)
	}

	synonym := strings.TrimSpace(payload.Synonym)
	mainType := strings.TrimSpace(payload.MainType)

	exists, err := s.synonymRepo.SynonymPairExists(ctx, synonym, mainType)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrSynonymExists
	}

	if err := s.typeRepo.EnsureType(ctx, mainType); err != nil {
		return err
	}
	if err := s.synonymRepo.CreateSynonym(ctx, synonym, mainType); err != nil {
		s.logger.Error("ошибка при создании синонима",
			zap.String("synonym", synonym), zap.String("main_type", mainType), zap.Error(err))
		return err
	}

	if _, err := unifyEquipmentTypes(ctx, s.synonymRepo, s.equipmentRepo); err != nil {
		return err
	}

	s.logger.Debug("синоним добавлен", zap.String("synonym", synonym), zap.String("main_type", mainType))
	return nil
}

// DeleteSynonym идемпотентен: удаление отсутствующего синонима — успех.
func (s *TypeSynonymService) DeleteSynonym(ctx context.Context, synonym string) error {
	synonym = strings.TrimSpace(synonym)
	if synonym == "" {
		return nil
	}
	return s.synonymRepo.DeleteSynonym(ctx, synonym)
}

func (s *TypeSynonymService) GetMainType(ctx context.Context, synonym string) (string, error) {
	return s.synonymRepo.GetMainType(ctx, synonym)
}

func (s *TypeSynonymService) GetSynonymsForType(ctx context.Context, mainType string) ([]string, error) {
	return s.synonymRepo.GetSynonymsForType(ctx, mainType)
}

// UnifyTypes прогоняет все пары синонимов по таблице оборудования и
// возвращает число переписанных строк. Повторный запуск ничего не меняет.
func (s *TypeSynonymService) UnifyTypes(ctx context.Context) (int64, error) {
	changed, err := unifyEquipmentTypes(ctx, s.synonymRepo, s.equipmentRepo)
	if err != nil {
		return changed, err
	}
	if changed > 0 {
		s.logger.Debug("типы унифицированы", zap.Int64("changed", changed))
	}
	return changed, nil
}

func unifyEquipmentTypes(
	ctx context.Context,
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
) (int64, error) {
	pairs, err := synonymRepo.GetAllSynonyms(ctx)
	if err != nil {
		return 0, err
	}

	var changed int64
	for _, pair := range pairs {
		affected, err := equipmentRepo.RewriteSynonymType(ctx, pair.Synonym, pair.MainType)
		if err != nil {
			return changed, err
		}
		changed += affected
	}
	return changed, nil
}
