package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inventory-system/internal/dto"
)

func TestEquipmentReportService_ExportToExcel(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.AddType(ctx, "Монітор"))
	require.NoError(t, env.types.AddType(ctx, "Принтер"))

	_, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "Монітор", Name: "Samsung S24", Room: "101"})
	require.NoError(t, err)
	writtenOffID, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-002", Type: "Принтер"})
	require.NoError(t, err)
	require.NoError(t, env.equipment.WriteOffEquipment(ctx, writtenOffID))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	exported, err := env.report.ExportToExcel(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, exported, "списанные записи не попадают в выгрузку по умолчанию")

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Інвентарний номер", rows[0][0])
	assert.Equal(t, "INV-001", rows[1][0])
	assert.Equal(t, "Монітор", rows[1][1])
}

func TestEquipmentReportService_ExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.types.AddType(ctx, "Монітор"))

	_, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{
		InventoryNumber: "INV-001", Type: "Монітор", Room: "101", Owner: "Іваненко І.І."})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.xlsx")
	_, err = env.report.ExportToExcel(ctx, path, false)
	require.NoError(t, err)

	// выгрузка читается импортом без правок
	other := newTestEnv(t)
	require.NoError(t, other.types.AddType(ctx, "Монітор"))
	imported, err := other.importer.ImportFromExcel(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, imported)

	list, err := other.equipment.SearchEquipment(ctx, "INV-001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Монітор", list[0].Type)
	assert.Equal(t, "101", list[0].Room)
}

func TestEquipmentReportService_IncludeWrittenOff(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.equipment.AddEquipment(ctx, dto.CreateEquipmentDTO{InventoryNumber: "INV-001"})
	require.NoError(t, err)
	require.NoError(t, env.equipment.WriteOffEquipment(ctx, id))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	exported, err := env.report.ExportToExcel(ctx, path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, exported)
}
