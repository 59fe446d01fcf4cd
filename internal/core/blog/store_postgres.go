package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhairstudio/jhair-server/internal/core/tag"
	"github.com/jhairstudio/jhair-server/internal/platform/database/schema"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// blogColumns is the SELECT list for a full blog row, aliased to "b".
func blogColumns() string {
	ref := schema.ContentBlog
	cols := ref.Columns()
	aliased := make([]string, len(cols))
	for i, col := range cols {
		aliased[i] = "b." + col
	}
	return strings.Join(aliased, ", ")
}

func scanBlog(row pgx.Row) (*Blog, error) {
	b := &Blog{Tags: make([]tag.Tag, 0)}
	err := row.Scan(
		&b.ID, &b.Slug,
		&b.TitleEN, &b.TitleES, &b.TitleNL,
		&b.DescriptionEN, &b.DescriptionES, &b.DescriptionNL,
		&b.ContentEN, &b.ContentES, &b.ContentNL,
		&b.AuthorName, &b.ImageURL, &b.ThumbnailURL,
		&b.PublishedAt, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// searchColumns picks the locale-specific columns a search term matches against.
func searchColumns(loc locale.Locale) (title, description string) {
	ref := schema.ContentBlog
	switch loc {
	case locale.ES:
		return ref.TitleES, ref.DescriptionES
	case locale.NL:
		return ref.TitleNL, ref.DescriptionNL
	default:
		return ref.TitleEN, ref.DescriptionEN
	}
}

// buildListWhere assembles the WHERE clause and positional args for a filter.
func buildListWhere(filter ListFilter) (string, []any) {
	ref := schema.ContentBlog
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.PublishedOnly {
		conditions = append(conditions, fmt.Sprintf("b.%s = TRUE", ref.IsPublished))
	}

	if len(filter.TagSlugs) > 0 {
		args = append(args, filter.TagSlugs)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM %s bt
			JOIN %s t ON bt.%s = t.%s
			WHERE bt.%s = b.%s AND t.%s = ANY($%d)
		)`,
			schema.ContentBlogTag.Table, schema.ContentTag.Table,
			schema.ContentBlogTag.TagID, schema.ContentTag.ID,
			schema.ContentBlogTag.BlogID, ref.ID,
			schema.ContentTag.Slug, len(args),
		))
	}

	if filter.Search != "" {
		titleCol, descCol := searchColumns(filter.Lang)
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(b.%s ILIKE $%d OR b.%s ILIKE $%d)",
			titleCol, len(args), descCol, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (repository *PostgresRepository) List(context context.Context, filter ListFilter) ([]*Blog, int, error) {
	ref := schema.ContentBlog
	where, args := buildListWhere(filter)

	// 1. Total count of matches, so pagination metadata reflects the
	//    filtered set, not the page.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s b %s`, ref.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_blogs")
	}

	// 2. One page of rows, newest first
	pageArgs := append(args, filter.Page.Limit, filter.Page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT %s FROM %s b %s
		ORDER BY b.%s DESC, b.%s DESC
		LIMIT $%d OFFSET $%d
	`,
		blogColumns(), ref.Table, where,
		ref.PublishedAt, ref.ID,
		len(pageArgs)-1, len(pageArgs),
	)

	rows, err := repository.db.Query(context, listQuery, pageArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	blogs := make([]*Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_blog")
		}
		blogs = append(blogs, b)
	}
	rows.Close()

	if err := repository.loadTags(context, blogs); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string, publishedOnly bool) (*Blog, error) {
	ref := schema.ContentBlog

	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1`, blogColumns(), ref.Table, ref.Slug)
	if publishedOnly {
		query += fmt.Sprintf(" AND b.%s = TRUE", ref.IsPublished)
	}

	b, err := scanBlog(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog_by_slug")
	}

	if err := repository.loadTags(context, []*Blog{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Blog, error) {
	ref := schema.ContentBlog

	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1`, blogColumns(), ref.Table, ref.ID)

	b, err := scanBlog(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog_by_id")
	}

	if err := repository.loadTags(context, []*Blog{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// loadTags attaches tags to each blog in one round trip.
func (repository *PostgresRepository) loadTags(context context.Context, blogs []*Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	blogIDs := make([]int, len(blogs))
	blogMap := make(map[int]*Blog, len(blogs))
	for i, b := range blogs {
		blogIDs[i] = b.ID
		blogMap[b.ID] = b
	}

	query := fmt.Sprintf(`
		SELECT bt.%s, t.%s, t.%s, t.%s, t.%s, t.%s, t.%s
		FROM %s bt
		JOIN %s t ON bt.%s = t.%s
		WHERE bt.%s = ANY($1)
		ORDER BY t.%s ASC
	`,
		schema.ContentBlogTag.BlogID,
		schema.ContentTag.ID, schema.ContentTag.Slug,
		schema.ContentTag.NameEN, schema.ContentTag.NameES, schema.ContentTag.NameNL,
		schema.ContentTag.CreatedAt,
		schema.ContentBlogTag.Table, schema.ContentTag.Table,
		schema.ContentBlogTag.TagID, schema.ContentTag.ID,
		schema.ContentBlogTag.BlogID,
		schema.ContentTag.NameEN,
	)

	rows, err := repository.db.Query(context, query, blogIDs)
	if err != nil {
		return dberr.Wrap(err, "load_blog_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var blogID int
		t := tag.Tag{}
		if err := rows.Scan(&blogID, &t.ID, &t.Slug, &t.NameEN, &t.NameES, &t.NameNL, &t.CreatedAt); err != nil {
			return dberr.Wrap(err, "scan_blog_tag")
		}
		if b, ok := blogMap[blogID]; ok {
			b.Tags = append(b.Tags, t)
		}
	}

	return nil
}

func (repository *PostgresRepository) Create(context context.Context, blog *Blog, tagIDs []int) (*Blog, error) {
	ref := schema.ContentBlog

	tx, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_create_blog")
	}
	defer func() { _ = tx.Rollback(context) }()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.Slug,
		ref.TitleEN, ref.TitleES, ref.TitleNL,
		ref.DescriptionEN, ref.DescriptionES, ref.DescriptionNL,
		ref.ContentEN, ref.ContentES, ref.ContentNL,
		ref.AuthorName, ref.ImageURL, ref.ThumbnailURL,
		ref.PublishedAt, ref.IsPublished,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err = tx.QueryRow(context, query,
		blog.Slug,
		blog.TitleEN, blog.TitleES, blog.TitleNL,
		blog.DescriptionEN, blog.DescriptionES, blog.DescriptionNL,
		blog.ContentEN, blog.ContentES, blog.ContentNL,
		blog.AuthorName, blog.ImageURL, blog.ThumbnailURL,
		blog.PublishedAt, blog.IsPublished,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_blog")
	}

	if err := replaceTagLinks(context, tx, blog.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_create_blog")
	}

	return repository.GetByID(context, blog.ID)
}

func (repository *PostgresRepository) Update(context context.Context, blog *Blog, tagIDs []int) (*Blog, error) {
	ref := schema.ContentBlog

	tx, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_update_blog")
	}
	defer func() { _ = tx.Rollback(context) }()

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2,
			%s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11,
			%s = $12, %s = $13, %s = $14,
			%s = $15, %s = $16,
			%s = now()
		WHERE %s = $1
	`,
		ref.Table,
		ref.Slug,
		ref.TitleEN, ref.TitleES, ref.TitleNL,
		ref.DescriptionEN, ref.DescriptionES, ref.DescriptionNL,
		ref.ContentEN, ref.ContentES, ref.ContentNL,
		ref.AuthorName, ref.ImageURL, ref.ThumbnailURL,
		ref.PublishedAt, ref.IsPublished,
		ref.UpdatedAt,
		ref.ID,
	)

	result, err := tx.Exec(context, query,
		blog.ID, blog.Slug,
		blog.TitleEN, blog.TitleES, blog.TitleNL,
		blog.DescriptionEN, blog.DescriptionES, blog.DescriptionNL,
		blog.ContentEN, blog.ContentES, blog.ContentNL,
		blog.AuthorName, blog.ImageURL, blog.ThumbnailURL,
		blog.PublishedAt, blog.IsPublished,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_blog")
	}
	if result.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	if err := replaceTagLinks(context, tx, blog.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_update_blog")
	}

	return repository.GetByID(context, blog.ID)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_blog")
	}
	defer func() { _ = tx.Rollback(context) }()

	detachQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBlogTag.Table, schema.ContentBlogTag.BlogID)
	if _, err := tx.Exec(context, detachQuery, id); err != nil {
		return dberr.Wrap(err, "detach_blog_tags")
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBlog.Table, schema.ContentBlog.ID)
	result, err := tx.Exec(context, deleteQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_blog")
	}

	return nil
}

// replaceTagLinks rewrites the blog's tag associations inside a transaction.
func replaceTagLinks(context context.Context, tx pgx.Tx, blogID int, tagIDs []int) error {
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBlogTag.Table, schema.ContentBlogTag.BlogID)
	if _, err := tx.Exec(context, clearQuery, blogID); err != nil {
		return dberr.Wrap(err, "clear_blog_tags")
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::int[])
		ON CONFLICT DO NOTHING
	`,
		schema.ContentBlogTag.Table, schema.ContentBlogTag.BlogID, schema.ContentBlogTag.TagID)

	if _, err := tx.Exec(context, insertQuery, blogID, tagIDs); err != nil {
		return dberr.Wrap(err, "link_blog_tags")
	}

	return nil
}
