package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	apperrors "inventory-system/pkg/errors"
)

func TestTypeSynonymService_AddSynonymEnsuresTypeAndUnifies(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// запись с сырым токеном уже лежит в базе
	id, err := env.equipmentRepo.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "mon"})
	require.NoError(t, err)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))

	found, err := env.equipment.GetEquipmentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Монітор", found.Type, "новый синоним должен задним числом нормализовать данные")

	types, err := env.types.GetAllTypes(ctx)
	require.NoError(t, err)
	assert.Contains(t, types, "Монітор", "канонический тип заводится автоматически")
}

func TestTypeSynonymService_AddSynonymRejectsDuplicatePair(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))

	err := env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"})
	assert.ErrorIs(t, err, apperrors.ErrSynonymExists)
}

func TestTypeSynonymService_UnifyTypesIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))

	_, err := env.equipmentRepo.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "MON"})
	require.NoError(t, err)
	_, err = env.equipmentRepo.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-002", Type: "mon"})
	require.NoError(t, err)

	changed, err := env.synonyms.UnifyTypes(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, changed)

	// повторный прогон ничего не меняет
	changed, err = env.synonyms.UnifyTypes(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestTypeSynonymService_GetSynonymsForType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))
	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "monitor", MainType: "Монітор"}))

	synonyms, err := env.synonyms.GetSynonymsForType(ctx, "Монітор")
	require.NoError(t, err)
	assert.Equal(t, []string{"mon", "monitor"}, synonyms)
}

func TestTypeSynonymService_DeleteSynonymIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.synonyms.AddSynonym(ctx, dto.CreateTypeSynonymDTO{
		Synonym: "mon", MainType: "Монітор"}))

	require.NoError(t, env.synonyms.DeleteSynonym(ctx, "mon"))
	require.NoError(t, env.synonyms.DeleteSynonym(ctx, "mon"))

	_, err := env.synonyms.GetMainType(ctx, "mon")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
