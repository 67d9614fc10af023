package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

func TestEquipmentTypeService_AddType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.AddType(ctx, "Монітор"))

	types, err := env.types.GetAllTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Монітор"}, types)

	err = env.types.AddType(ctx, "Монітор")
	assert.ErrorIs(t, err, apperrors.ErrTypeExists)

	err = env.types.AddType(ctx, "   ")
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid, "пустое имя должно отвергаться")
}

func TestEquipmentTypeService_UpdateTypeCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))
	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "Монітор"})
	require.NoError(t, err)

	require.NoError(t, env.types.UpdateType(ctx, "Монітор", "Дисплей"))

	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Дисплей", found.Type, "переименование должно каскадом править оборудование")

	mainType, err := env.synonyms.GetMainType(ctx, "mon")
	require.NoError(t, err)
	assert.Equal(t, "Дисплей", mainType, "синонимы должны указывать на новое имя")

	types, err := env.types.GetAllTypes(ctx)
	require.NoError(t, err)
	assert.Contains(t, types, "Дисплей")
	assert.NotContains(t, types, "Монітор")
}

func TestEquipmentTypeService_UpdateTypeRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.AddType(ctx, "Монітор"))
	require.NoError(t, env.types.AddType(ctx, "Принтер"))
	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "Монітор"})
	require.NoError(t, err)

	err = env.types.UpdateType(ctx, "Монітор", "Принтер")
	assert.ErrorIs(t, err, apperrors.ErrTypeExists)

	// отказ не должен оставить частичную запись
	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Монітор", found.Type, "оборудование не должно сменить тип при отказе")
}

func TestEquipmentTypeService_UpdateTypeNoChanges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.AddType(ctx, "Монітор"))

	err := env.types.UpdateType(ctx, "Монітор", "Монітор")
	assert.ErrorIs(t, err, apperrors.ErrNoChanges)
}

func TestEquipmentTypeService_DeleteTypeCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))
	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "Монітор"})
	require.NoError(t, err)

	require.NoError(t, env.types.DeleteType(ctx, "Монітор"))

	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.UnknownType, found.Type, "оборудование получает маркер неизвестного типа")

	_, err = env.synonyms.GetMainType(ctx, "mon")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "синонимы удалённого типа должны исчезнуть")

	// повторное удаление — успех
	require.NoError(t, env.types.DeleteType(ctx, "Монітор"))
}

func TestEquipmentTypeService_DeleteUnknownTypeIsNoop(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.EnsureType(ctx, constants.UnknownType))
	require.NoError(t, env.types.DeleteType(ctx, constants.UnknownType))

	types, err := env.types.GetAllTypes(ctx)
	require.NoError(t, err)
	assert.Contains(t, types, constants.UnknownType, "маркер неизвестного типа не удаляется")
}

func TestEquipmentTypeService_EnsureTypeIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.EnsureType(ctx, "Принтер"))
	require.NoError(t, env.types.EnsureType(ctx, "Принтер"))

	types, err := env.types.GetAllTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Принтер"}, types)
}
