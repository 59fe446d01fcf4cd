package offering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

func offeringColumns() string {
	return strings.Join(schema.ContentOffering.Columns(), ", ")
}

func scanOffering(row pgx.Row) (*Offering, error) {
	o := &Offering{}
	err := row.Scan(
		&o.ID, &o.Slug, &o.Icon,
		&o.TitleEN, &o.TitleES, &o.TitleNL,
		&o.DescriptionEN, &o.DescriptionES, &o.DescriptionNL,
		&o.Sections[0].TitleEN, &o.Sections[0].TitleES, &o.Sections[0].TitleNL,
		&o.Sections[0].BodyEN, &o.Sections[0].BodyES, &o.Sections[0].BodyNL,
		&o.Sections[1].TitleEN, &o.Sections[1].TitleES, &o.Sections[1].TitleNL,
		&o.Sections[1].BodyEN, &o.Sections[1].BodyES, &o.Sections[1].BodyNL,
		&o.Sections[2].TitleEN, &o.Sections[2].TitleES, &o.Sections[2].TitleNL,
		&o.Sections[2].BodyEN, &o.Sections[2].BodyES, &o.Sections[2].BodyNL,
		&o.SortOrder, &o.IsPublished, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (repository *PostgresRepository) List(context context.Context, publishedOnly bool) ([]*Offering, error) {
	ref := schema.ContentOffering

	query := fmt.Sprintf(`SELECT %s FROM %s`, offeringColumns(), ref.Table)
	if publishedOnly {
		query += fmt.Sprintf(" WHERE %s = TRUE", ref.IsPublished)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", ref.SortOrder, ref.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_offerings")
	}
	defer rows.Close()

	offerings := make([]*Offering, 0)
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_offering")
		}
		offerings = append(offerings, o)
	}

	return offerings, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string, publishedOnly bool) (*Offering, error) {
	ref := schema.ContentOffering

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, offeringColumns(), ref.Table, ref.Slug)
	if publishedOnly {
		query += fmt.Sprintf(" AND %s = TRUE", ref.IsPublished)
	}

	o, err := scanOffering(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_offering_by_slug")
	}
	return o, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Offering, error) {
	ref := schema.ContentOffering

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, offeringColumns(), ref.Table, ref.ID)

	o, err := scanOffering(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_offering_by_id")
	}
	return o, nil
}

// editableColumns is every column set on insert and update, in arg order.
func editableColumns() []string {
	ref := schema.ContentOffering
	return []string{
		ref.Slug, ref.Icon,
		ref.TitleEN, ref.TitleES, ref.TitleNL,
		ref.DescriptionEN, ref.DescriptionES, ref.DescriptionNL,
		ref.Section1TitleEN, ref.Section1TitleES, ref.Section1TitleNL,
		ref.Section1BodyEN, ref.Section1BodyES, ref.Section1BodyNL,
		ref.Section2TitleEN, ref.Section2TitleES, ref.Section2TitleNL,
		ref.Section2BodyEN, ref.Section2BodyES, ref.Section2BodyNL,
		ref.Section3TitleEN, ref.Section3TitleES, ref.Section3TitleNL,
		ref.Section3BodyEN, ref.Section3BodyES, ref.Section3BodyNL,
		ref.SortOrder, ref.IsPublished,
	}
}

func editableValues(o *Offering) []any {
	return []any{
		o.Slug, o.Icon,
		o.TitleEN, o.TitleES, o.TitleNL,
		o.DescriptionEN, o.DescriptionES, o.DescriptionNL,
		o.Sections[0].TitleEN, o.Sections[0].TitleES, o.Sections[0].TitleNL,
		o.Sections[0].BodyEN, o.Sections[0].BodyES, o.Sections[0].BodyNL,
		o.Sections[1].TitleEN, o.Sections[1].TitleES, o.Sections[1].TitleNL,
		o.Sections[1].BodyEN, o.Sections[1].BodyES, o.Sections[1].BodyNL,
		o.Sections[2].TitleEN, o.Sections[2].TitleES, o.Sections[2].TitleNL,
		o.Sections[2].BodyEN, o.Sections[2].BodyES, o.Sections[2].BodyNL,
		o.SortOrder, o.IsPublished,
	}
}

func (repository *PostgresRepository) Create(context context.Context, offering *Offering) (*Offering, error) {
	ref := schema.ContentOffering
	cols := editableColumns()

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		RETURNING %s, %s, %s
	`,
		ref.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, editableValues(offering)...).
		Scan(&offering.ID, &offering.CreatedAt, &offering.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_offering")
	}

	return offering, nil
}

func (repository *PostgresRepository) Update(context context.Context, offering *Offering) (*Offering, error) {
	ref := schema.ContentOffering
	cols := editableColumns()

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	query := fmt.Sprintf(`
		UPDATE %s SET %s, %s = now() WHERE %s = $1
		RETURNING %s, %s
	`,
		ref.Table, strings.Join(assignments, ", "), ref.UpdatedAt, ref.ID,
		ref.CreatedAt, ref.UpdatedAt,
	)

	args := append([]any{offering.ID}, editableValues(offering)...)
	err := repository.db.QueryRow(context, query, args...).
		Scan(&offering.CreatedAt, &offering.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_offering")
	}

	return offering, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	ref := schema.ContentOffering

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ref.Table, ref.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_offering")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
