package seeders

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// SeedTypeSynonyms загружает базовый словарь синонимов и соответствующие
// канонические типы. Повторный запуск ничего не меняет.
func SeedTypeSynonyms(ctx context.Context, db *sql.DB) error {
	for _, pair := range typeSynonymsData {
		query, args, err := sq.Insert("equipment_types").
			Columns("type_name").
			Values(pair.MainType).
			Suffix("ON CONFLICT(type_name) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("сборка запроса типа %q: %w", pair.MainType, err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("засев типа %q: %w", pair.MainType, err)
		}

		query, args, err = sq.Select("COUNT(*)").
			From("type_synonyms").
			Where(sq.Eq{"synonym": pair.Synonym, "main_type": pair.MainType}).
			ToSql()
		if err != nil {
			return fmt.Errorf("сборка запроса синонима %q: %w", pair.Synonym, err)
		}
		var count int
		if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("проверка синонима %q: %w", pair.Synonym, err)
		}
		if count > 0 {
			continue
		}

		query, args, err = sq.Insert("type_synonyms").
			Columns("synonym", "main_type").
			Values(pair.Synonym, pair.MainType).
			ToSql()
		if err != nil {
			return fmt.Errorf("сборка вставки синонима %q: %w", pair.Synonym, err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("засев синонима %q: %w", pair.Synonym, err)
		}
	}
	return nil
}
