package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
)

// Заголовки выгрузки совпадают с каноническими заголовками импорта, так что
// выгруженную книгу можно загрузить обратно без правок.
var reportHeaders = []string{
	"Інвентарний номер", "Тип обладнання", "Назва обладнання",
	"Модель", "Серійний номер", "Кабінет", "Власник",
}

type EquipmentReportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentReportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentReportService {
	return &EquipmentReportService{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// ExportToExcel выгружает текущий инвентарь в книгу и возвращает число
// выгруженных строк.
func (s *EquipmentReportService) ExportToExcel(ctx context.Context, path string, includeWrittenOff bool) (int, error) {
	list, err := s.equipmentRepo.FilterEquipment(ctx, "", "", includeWrittenOff)
	if err != nil {
		return 0, err
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)

	for column, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return 0, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return 0, err
		}
	}

	for rowIndex, equipment := range list {
		values := []string{
			equipment.InventoryNumber, equipment.Type, equipment.Name,
			equipment.Model, equipment.SerialNumber, equipment.Room, equipment.Owner,
		}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
			if err != nil {
				return 0, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return 0, err
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return 0, fmt.Errorf("сохранение выгрузки: %w", err)
	}

	s.logger.Info("выгрузка в Excel завершена", zap.String("file", path), zap.Int("exported", len(list)))
	return len(list), nil
}
