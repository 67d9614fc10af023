package services_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/database/sqlitedb"
)

// testEnv собирает полный набор сервисов поверх временной базы — сервисы
// тестируются против настоящего sqlite, без моков.
type testEnv struct {
	db *sql.DB

	equipmentRepo repositories.EquipmentRepositoryInterface
	roomRepo      repositories.RoomRepositoryInterface
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	ownerRepo     repositories.OwnerRepositoryInterface
	synonymRepo   repositories.TypeSynonymRepositoryInterface

	equipment *services.EquipmentService
	types     *services.EquipmentTypeService
	rooms     *services.RoomService
	owners    *services.OwnerService
	synonyms  *services.TypeSynonymService
	importer  *services.EquipmentImportService
	report    *services.EquipmentReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlitedb.ConnectDB(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err, "не удалось открыть тестовую базу")
	t.Cleanup(func() { db.Close() })

	log := zap.NewNop()
	validate := validator.New()

	env := &testEnv{
		db:            db,
		equipmentRepo: repositories.NewEquipmentRepository(db),
		roomRepo:      repositories.NewRoomRepository(db),
		typeRepo:      repositories.NewEquipmentTypeRepository(db),
		ownerRepo:     repositories.NewOwnerRepository(db),
		synonymRepo:   repositories.NewTypeSynonymRepository(db),
	}

	env.equipment = services.NewEquipmentService(
		env.equipmentRepo, env.typeRepo, env.roomRepo, env.ownerRepo, env.synonymRepo, validate, log)
	env.types = services.NewEquipmentTypeService(env.typeRepo, env.equipmentRepo, env.synonymRepo, log)
	env.rooms = services.NewRoomService(env.roomRepo, env.equipmentRepo, validate, log)
	env.owners = services.NewOwnerService(env.ownerRepo, env.equipmentRepo, validate, log)
	env.synonyms = services.NewTypeSynonymService(env.synonymRepo, env.typeRepo, env.equipmentRepo, validate, log)
	env.importer = services.NewEquipmentImportService(
		env.equipmentRepo, env.typeRepo, env.roomRepo, env.ownerRepo, env.synonymRepo, log)
	env.report = services.NewEquipmentReportService(env.equipmentRepo, log)

	return env
}
