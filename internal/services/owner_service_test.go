package services_test

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	apperrors "inventory-system/pkg/errors"
)

func TestOwnerService_AddOwner(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.owners.AddOwner(ctx, dto.CreateOwnerDTO{
		FullName: "Іваненко І.І.",
		Position: "інженер",
		PCIP:     "10.0.0.5",
		PCName:   "WS-05",
		Phone:    "1234",
		Email:    "ivanenko@example.com",
	}))

	owner, err := env.owners.GetOwnerDetails(ctx, "Іваненко І.І.")
	require.NoError(t, err)
	assert.Equal(t, "інженер", owner.Position)
	assert.Equal(t, "10.0.0.5", owner.PCIP)

	err = env.owners.AddOwner(ctx, dto.CreateOwnerDTO{FullName: "Іваненко І.І."})
	assert.ErrorIs(t, err, apperrors.ErrOwnerExists)
}

func TestOwnerService_AddOwnerRejectsBadEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	err := env.owners.AddOwner(ctx, dto.CreateOwnerDTO{
		FullName: "Іваненко І.І.", Email: "не-адрес"})
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestOwnerService_UpdateOwnerPartialCard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.owners.AddOwner(ctx, dto.CreateOwnerDTO{
		FullName: "Іваненко І.І.", Position: "інженер", Phone: "1234"}))

	// меняется только телефон, остальные поля карточки не трогаются
	require.NoError(t, env.owners.UpdateOwner(ctx, "Іваненко І.І.", dto.UpdateOwnerDTO{
		NewFullName: "Іваненко І.І.",
		Phone:       null.StringFrom("5678"),
	}))

	owner, err := env.owners.GetOwnerDetails(ctx, "Іваненко І.І.")
	require.NoError(t, err)
	assert.Equal(t, "5678", owner.Phone)
	assert.Equal(t, "інженер", owner.Position, "незаданные поля должны сохраниться")
}

func TestOwnerService_UpdateOwnerRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.owners.AddOwner(ctx, dto.CreateOwnerDTO{FullName: "Іваненко І.І."}))
	require.NoError(t, env.owners.AddOwner(ctx, dto.CreateOwnerDTO{FullName: "Петренко П.П."}))
	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Owner: "Іваненко І.І."})
	require.NoError(t, err)

	err = env.owners.UpdateOwner(ctx, "Іваненко І.І.", dto.UpdateOwnerDTO{
		NewFullName: "Петренко П.П."})
	assert.ErrorIs(t, err, apperrors.ErrOwnerExists)

	// отказ не должен оставить частичную запись
	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Іваненко І.І.", found.Owner, "оборудование не должно сменить владельца при отказе")
}

func TestOwnerService_UpdateOwnerNoChanges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.owners.AddOwner(ctx, dto.CreateOwnerDTO{FullName: "Іваненко І.І."}))

	err := env.owners.UpdateOwner(ctx, "Іваненко І.І.", dto.UpdateOwnerDTO{
		NewFullName: "Іваненко І.І."})
	assert.ErrorIs(t, err, apperrors.ErrNoChanges)
}

func TestOwnerService_RenameCascadesToEquipment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Owner: "Іваненко І.І."})
	require.NoError(t, err)

	require.NoError(t, env.owners.UpdateOwner(ctx, "Іваненко І.І.", dto.UpdateOwnerDTO{
		NewFullName: "Петренко П.П."}))

	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Петренко П.П.", found.Owner)
}

func TestOwnerService_DeleteOwnerClearsEquipment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Owner: "Іваненко І.І."})
	require.NoError(t, err)

	require.NoError(t, env.owners.DeleteOwner(ctx, "Іваненко І.І."))

	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, found.Owner)

	_, err = env.owners.GetOwnerDetails(ctx, "Іваненко І.І.")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// повторное удаление — успех
	require.NoError(t, env.owners.DeleteOwner(ctx, "Іваненко І.І."))
}
