package page

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhairstudio/jhair-server/internal/platform/database/schema"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetByKey(context context.Context, key string) (*Record, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ContentPage.Key, schema.ContentPage.Fields, schema.ContentPage.UpdatedAt,
		schema.ContentPage.Table, schema.ContentPage.Key)

	record := &Record{}
	var rawFields []byte

	err := repository.db.QueryRow(context, query, key).Scan(&record.Key, &rawFields, &record.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_page_by_key")
	}

	if err := json.Unmarshal(rawFields, &record.Fields); err != nil {
		return nil, dberr.Wrap(err, "decode_page_fields")
	}

	return record, nil
}

func (repository *PostgresRepository) Save(context context.Context, record *Record) error {
	rawFields, err := json.Marshal(record.Fields)
	if err != nil {
		return dberr.Wrap(err, "encode_page_fields")
	}

	// Full-map replace, last write wins.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, now())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = now()
	`,
		schema.ContentPage.Table,
		schema.ContentPage.Key, schema.ContentPage.Fields, schema.ContentPage.UpdatedAt,
		schema.ContentPage.Key,
		schema.ContentPage.Fields, schema.ContentPage.Fields, schema.ContentPage.UpdatedAt,
	)

	if _, err := repository.db.Exec(context, query, record.Key, rawFields); err != nil {
		return dberr.Wrap(err, "save_page")
	}

	return nil
}
