package seeders

import (
	"context"
	"database/sql"
	"fmt"

	"inventory-system/internal/repositories"
)

// SeedReferenceFromEquipment добирает справочники из уже накопленного
// оборудования: каждый встречающийся тип, кабинет и владелец получает
// запись в своей таблице. Нужен для баз, заполненных импортом до появления
// справочников.
func SeedReferenceFromEquipment(ctx context.Context, db *sql.DB) error {
	equipmentRepo := repositories.NewEquipmentRepository(db)
	typeRepo := repositories.NewEquipmentTypeRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	ownerRepo := repositories.NewOwnerRepository(db)

	types, err := equipmentRepo.DistinctTypes(ctx)
	if err != nil {
		return fmt.Errorf("выборка типов: %w", err)
	}
	for _, name := range types {
		if err := typeRepo.EnsureType(ctx, name); err != nil {
			return fmt.Errorf("засев типа %q: %w", name, err)
		}
	}

	rooms, err := equipmentRepo.DistinctRooms(ctx)
	if err != nil {
		return fmt.Errorf("выборка кабинетов: %w", err)
	}
	for _, name := range rooms {
		if err := roomRepo.EnsureRoom(ctx, name); err != nil {
			return fmt.Errorf("засев кабинета %q: %w", name, err)
		}
	}

	owners, err := equipmentRepo.DistinctOwners(ctx)
	if err != nil {
		return fmt.Errorf("выборка владельцев: %w", err)
	}
	for _, name := range owners {
		if err := ownerRepo.EnsureOwner(ctx, name); err != nil {
			return fmt.Errorf("засев владельца %q: %w", name, err)
		}
	}

	return nil
}
