package main

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/database/sqlitedb"
	"inventory-system/pkg/logger"
	"inventory-system/seeders"
)

func main() {
	cfg := config.New()

	log := logger.NewLogger(cfg.Logger.FilePath)
	defer log.Sync()

	ctx := context.Background()

	db, err := sqlitedb.ConnectDB(cfg.Database.Path)
	if err != nil {
		log.Fatal("не удалось открыть базу данных", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer db.Close()

	if err := seeders.SeedTypeSynonyms(ctx, db); err != nil {
		log.Fatal("ошибка засева словаря синонимов", zap.Error(err))
	}
	if err := seeders.SeedReferenceFromEquipment(ctx, db); err != nil {
		log.Fatal("ошибка засева справочников", zap.Error(err))
	}

	validate := validator.New()

	equipmentRepo := repositories.NewEquipmentRepository(db)
	typeRepo := repositories.NewEquipmentTypeRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	ownerRepo := repositories.NewOwnerRepository(db)
	synonymRepo := repositories.NewTypeSynonymRepository(db)

	equipmentService := services.NewEquipmentService(
		equipmentRepo, typeRepo, roomRepo, ownerRepo, synonymRepo, validate, log)
	synonymService := services.NewTypeSynonymService(synonymRepo, typeRepo, equipmentRepo, validate, log)
	importService := services.NewEquipmentImportService(
		equipmentRepo, typeRepo, roomRepo, ownerRepo, synonymRepo, log)

	if changed, err := synonymService.UnifyTypes(ctx); err != nil {
		log.Fatal("ошибка унификации типов", zap.Error(err))
	} else if changed > 0 {
		log.Info("типы оборудования унифицированы", zap.Int64("changed", changed))
	}

	if len(os.Args) > 1 {
		result := <-importService.ImportFromExcelAsync(ctx, os.Args[1])
		if result.Err != nil {
			log.Fatal("импорт завершился с ошибкой", zap.String("file", os.Args[1]), zap.Error(result.Err))
		}
		log.Info("импорт завершён", zap.String("file", os.Args[1]), zap.Int("imported", result.Imported))
		return
	}

	list, err := equipmentService.FilterEquipment(ctx, dto.FilterEquipmentDTO{})
	if err != nil {
		log.Fatal("ошибка чтения инвентаря", zap.Error(err))
	}
	log.Info("база инвентаря готова к работе",
		zap.String("path", cfg.Database.Path), zap.Int("active_equipment", len(list)))
}
