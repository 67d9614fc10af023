package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

// Распознаваемые заголовки колонок; у части полей есть запасные варианты,
// встречающиеся в реальных ведомостях.
var importHeaderAliases = map[string][]string{
	"inventory_number": {"Інвентарний номер", "Інв. номер"},
	"type":             {"Тип обладнання", "Тип"},
	"name":             {"Назва обладнання", "Назва"},
	"model":            {"Модель"},
	"serial_number":    {"Серійний номер", "Серійний №"},
	"room":             {"Кабінет"},
	"owner":            {"Власник"},
}

// ImportResult — итог фонового импорта.
type ImportResult struct {
	Imported int
	Err      error
}

type EquipmentImportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	roomRepo      repositories.RoomRepositoryInterface
	ownerRepo     repositories.OwnerRepositoryInterface
	synonymRepo   repositories.TypeSynonymRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentImportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	roomRepo repositories.RoomRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	synonymRepo repositories.TypeSynonymRepositoryInterface,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{
		equipmentRepo: equipmentRepo,
		typeRepo:      typeRepo,
		roomRepo:      roomRepo,
		ownerRepo:     ownerRepo,
		synonymRepo:   synonymRepo,
		logger:        logger,
	}
}

// ImportFromExcel обходит все листы книги и возвращает число принятых строк
// (вставленных или обновлённых). Импорт устойчив на уровне строки: плохая
// строка логируется и пропускается, партия не прерывается. Транзакции на
// всю партию нет — при сбое посреди импорта уже принятые строки остаются.
func (s *EquipmentImportService) ImportFromExcel(ctx context.Context, path string) (int, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	imported := 0
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			s.logger.Error("не удалось прочитать лист", zap.String("sheet", sheet), zap.Error(err))
			continue
		}
		if len(rows) == 0 {
			continue
		}

		columns := resolveImportColumns(rows[0])
		if columns["inventory_number"] < 0 {
			s.logger.Warn("лист без колонки инвентарного номера пропущен", zap.String("sheet", sheet))
			continue
		}

		for i := 1; i < len(rows); i++ {
			if s.importRow(ctx, sheet, i+1, rows[i], columns) {
				imported++
			}
		}
	}

	if _, err := unifyEquipmentTypes(ctx, s.synonymRepo, s.equipmentRepo); err != nil {
		return imported, err
	}

	s.logger.Info("импорт из Excel завершён", zap.String("file", path), zap.Int("imported", imported))
	return imported, nil
}

// ImportFromExcelAsync выносит импорт в фоновую горутину, чтобы не блокировать
// интерактивный слой; итог приходит по каналу. Отмены запущенного импорта
// нет — он дорабатывает до конца.
func (s *EquipmentImportService) ImportFromExcelAsync(ctx context.Context, path string) <-chan ImportResult {
	out := make(chan ImportResult, 1)
	go func() {
		defer close(out)
		imported, err := s.ImportFromExcel(ctx, path)
		out <- ImportResult{Imported: imported, Err: err}
	}()
	return out
}

func (s *EquipmentImportService) importRow(ctx context.Context, sheet string, line int, row []string, columns map[string]int) bool {
	inventoryNumber := safeCell(row, columns["inventory_number"])
	if inventoryNumber == "" {
		// строки без инвентарного номера пропускаются молча
		return false
	}

	equipType, err := resolveEquipmentType(ctx, s.synonymRepo, s.typeRepo, safeCell(row, columns["type"]))
	if err != nil {
		s.logger.Error("строка не импортирована: ошибка разбора типа",
			zap.String("sheet", sheet), zap.Int("line", line),
			zap.String("inventory_number", inventoryNumber), zap.Error(err))
		return false
	}

	payload := dto.ImportedEquipmentDTO{
		Type:         equipType,
		Name:         safeCell(row, columns["name"]),
		Model:        safeCell(row, columns["model"]),
		SerialNumber: safeCell(row, columns["serial_number"]),
		Room:         safeCell(row, columns["room"]),
		Owner:        safeCell(row, columns["owner"]),
	}

	existingID, err := s.equipmentRepo.FindIDByInventoryNumber(ctx, inventoryNumber)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		existingID = 0
	default:
		s.logger.Error("строка не импортирована: ошибка поиска записи",
			zap.String("sheet", sheet), zap.Int("line", line),
			zap.String("inventory_number", inventoryNumber), zap.Error(err))
		return false
	}

	if payload.Room != "" {
		free, err := roomHasFreeSeat(ctx, s.roomRepo, s.equipmentRepo, payload.Room, existingID)
		if err != nil {
			s.logger.Error("строка не импортирована: ошибка проверки кабинета",
				zap.String("sheet", sheet), zap.Int("line", line),
				zap.String("inventory_number", inventoryNumber), zap.Error(err))
			return false
		}
		if !free {
			s.logger.Warn("строка пропущена: кабинет переполнен",
				zap.String("sheet", sheet), zap.Int("line", line),
				zap.String("inventory_number", inventoryNumber), zap.String("room", payload.Room))
			return false
		}
	}

	if err := ensureReferences(ctx, s.typeRepo, s.roomRepo, s.ownerRepo, payload.Type, payload.Room, payload.Owner); err != nil {
		s.logger.Error("строка не импортирована: ошибка справочников",
			zap.String("sheet", sheet), zap.Int("line", line),
			zap.String("inventory_number", inventoryNumber), zap.Error(err))
		return false
	}

	if existingID > 0 {
		err = s.equipmentRepo.UpdateImported(ctx, existingID, payload)
	} else {
		_, err = s.equipmentRepo.CreateEquipment(ctx, dto.CreateEquipmentDTO{
			InventoryNumber: inventoryNumber,
			Type:            payload.Type,
			Name:            payload.Name,
			Model:           payload.Model,
			SerialNumber:    payload.SerialNumber,
			Room:            payload.Room,
			Owner:           payload.Owner,
		})
	}
	if err != nil {
		s.logger.Error("строка не импортирована: ошибка записи",
			zap.String("sheet", sheet), zap.Int("line", line),
			zap.String("inventory_number", inventoryNumber), zap.Error(err))
		return false
	}

	return true
}

// resolveImportColumns сопоставляет обрезанные заголовки первой строки с
// полями; для каждого поля берётся первая подошедшая колонка.
func resolveImportColumns(header []string) map[string]int {
	columns := make(map[string]int, len(importHeaderAliases))
	for field := range importHeaderAliases {
		columns[field] = -1
	}

	for index, rawHeader := range header {
		trimmed := strings.TrimSpace(rawHeader)
		for field, aliases := range importHeaderAliases {
			if columns[field] >= 0 {
				continue
			}
			for _, alias := range aliases {
				if strings.EqualFold(trimmed, alias) {
					columns[field] = index
					break
				}
			}
		}
	}
	return columns
}

func safeCell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
