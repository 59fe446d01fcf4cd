package tag

import (
	"context"
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

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentTag.ID, schema.ContentTag.Slug,
		schema.ContentTag.NameEN, schema.ContentTag.NameES, schema.ContentTag.NameNL,
		schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.NameEN)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Slug, &t.NameEN, &t.NameES, &t.NameNL, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (repository *PostgresRepository) GetTagByID(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ContentTag.ID, schema.ContentTag.Slug,
		schema.ContentTag.NameEN, schema.ContentTag.NameES, schema.ContentTag.NameNL,
		schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.ID)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.Slug, &t.NameEN, &t.NameES, &t.NameNL, &t.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_id")
	}

	return t, nil
}

func (repository *PostgresRepository) CreateTag(context context.Context, tag *Tag) (*Tag, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.ContentTag.Table,
		schema.ContentTag.Slug, schema.ContentTag.NameEN, schema.ContentTag.NameES, schema.ContentTag.NameNL,
		schema.ContentTag.ID, schema.ContentTag.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		tag.Slug, tag.NameEN, tag.NameES, tag.NameNL,
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_tag")
	}

	return tag, nil
}

func (repository *PostgresRepository) UpdateTag(context context.Context, tag *Tag) (*Tag, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentTag.Table,
		schema.ContentTag.Slug, schema.ContentTag.NameEN, schema.ContentTag.NameES, schema.ContentTag.NameNL,
		schema.ContentTag.ID,
		schema.ContentTag.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		tag.ID, tag.Slug, tag.NameEN, tag.NameES, tag.NameNL,
	).Scan(&tag.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_tag")
	}

	return tag, nil
}

func (repository *PostgresRepository) DeleteTag(context context.Context, id int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_tag")
	}
	defer func() { _ = tx.Rollback(context) }()

	// Detach from all blogs first; the posts themselves stay untouched.
	detachQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBlogTag.Table, schema.ContentBlogTag.TagID)
	if _, err := tx.Exec(context, detachQuery, id); err != nil {
		return dberr.Wrap(err, "detach_tag")
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentTag.Table, schema.ContentTag.ID)
	result, err := tx.Exec(context, deleteQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_tag")
	}

	return nil
}
