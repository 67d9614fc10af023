package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ConnectDB открывает файл базы и готовит схему. Пул ограничен одним
// соединением: хранилище рассчитано на одного интерактивного пользователя,
// и все read-modify-write последовательности сериализуются здесь.
func ConnectDB(path string) (*sql.DB, error) {
	if path == "" {
		path = "inventory.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("открытие sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("настройка sqlite: %w", err)
	}

	if err := CreateTables(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// CreateTables идемпотентно создаёт пять таблиц хранилища. Ссылки между
// сущностями хранятся строками-именами, каскады поддерживаются кодом
// репозиториев, а не движком.
func CreateTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS equipment (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			inventory_number TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT '',
			serial_number TEXT NOT NULL DEFAULT '',
			room TEXT NOT NULL DEFAULT '',
			owner TEXT NOT NULL DEFAULT '',
			written_off INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS equipment_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type_name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS type_synonyms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			synonym TEXT NOT NULL,
			main_type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_name TEXT NOT NULL UNIQUE,
			max_seats INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS owners (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL UNIQUE,
			position TEXT NOT NULL DEFAULT '',
			pc_ip TEXT NOT NULL DEFAULT '',
			pc_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("создание таблиц: %w", err)
		}
	}
	return nil
}
