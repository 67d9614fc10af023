package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const typeSynonymTable = "type_synonyms"

type TypeSynonymRepositoryInterface interface {
	CreateSynonym(ctx context.Context, synonym, mainType string) error
	SynonymPairExists(ctx context.Context, synonym, mainType string) (bool, error)
	GetMainType(ctx context.Context, synonym string) (string, error)
	GetSynonymsForType(ctx context.Context, mainType string) ([]string, error)
	GetAllSynonyms(ctx context.Context) ([]entities.TypeSynonym, error)
	DeleteSynonym(ctx context.Context, synonym string) error
	DeleteSynonymsForType(ctx context.Context, mainType string) error
	ReplaceMainType(ctx context.Context, oldName, newName string) error
}

type TypeSynonymRepository struct {
	storage querier
}

func NewTypeSynonymRepository(storage querier) TypeSynonymRepositoryInterface {
	return &TypeSynonymRepository{
		storage: storage,
	}
}

func (r *TypeSynonymRepository) CreateSynonym(ctx context.Context, synonym, mainType string) error {
	query, args, err := sq.Insert(typeSynonymTable).
		Columns("synonym", "main_type").
		Values(synonym, mainType).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *TypeSynonymRepository) SynonymPairExists(ctx context.Context, synonym, mainType string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(typeSynonymTable).
		Where(sq.Eq{"synonym": synonym, "main_type": mainType}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.storage.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetMainType — точный поиск синонима без учёта регистра. LOWER() в sqlite
// сворачивает только ASCII, поэтому регистр сводится на стороне Go.
func (r *TypeSynonymRepository) GetMainType(ctx context.Context, synonym string) (string, error) {
	pairs, err := r.GetAllSynonyms(ctx)
	if err != nil {
		return "", err
	}

	for _, pair := range pairs {
		if strings.EqualFold(pair.Synonym, synonym) {
			return pair.MainType, nil
		}
	}
	return "", apperrors.ErrNotFound
}

func (r *TypeSynonymRepository) GetSynonymsForType(ctx context.Context, mainType string) ([]string, error) {
	query, args, err := sq.Select("synonym").
		From(typeSynonymTable).
		Where(sq.Eq{"main_type": mainType}).
		OrderBy("synonym").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var synonyms []string
	for rows.Next() {
		var synonym string
		if err := rows.Scan(&synonym); err != nil {
			return nil, err
		}
		synonyms = append(synonyms, synonym)
	}
	return synonyms, rows.Err()
}

func (r *TypeSynonymRepository) GetAllSynonyms(ctx context.Context) ([]entities.TypeSynonym, error) {
	query, args, err := sq.Select("id", "synonym", "main_type").
		From(typeSynonymTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var synonyms []entities.TypeSynonym
	for rows.Next() {
		var synonym entities.TypeSynonym
		if err := rows.Scan(&synonym.ID, &synonym.Synonym, &synonym.MainType); err != nil {
			return nil, err
		}
		synonyms = append(synonyms, synonym)
	}
	return synonyms, rows.Err()
}

func (r *TypeSynonymRepository) DeleteSynonym(ctx context.Context, synonym string) error {
	query, args, err := sq.Delete(typeSynonymTable).
		Where(sq.Eq{"synonym": synonym}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *TypeSynonymRepository) DeleteSynonymsForType(ctx context.Context, mainType string) error {
	query, args, err := sq.Delete(typeSynonymTable).
		Where(sq.Eq{"main_type": mainType}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}

func (r *TypeSynonymRepository) ReplaceMainType(ctx context.Context, oldName, newName string) error {
	query, args, err := sq.Update(typeSynonymTable).
		Set("main_type", newName).
		Where(sq.Eq{"main_type": oldName}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.ExecContext(ctx, query, args...)
	return err
}
