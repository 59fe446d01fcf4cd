package partner

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

func partnerColumns() string {
	return strings.Join(schema.ContentPartner.Columns(), ", ")
}

func scanPartner(row pgx.Row) (*Partner, error) {
	p := &Partner{}
	err := row.Scan(&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL, &p.SortOrder, &p.IsPublished, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) List(context context.Context, publishedOnly bool) ([]*Partner, error) {
	ref := schema.ContentPartner

	query := fmt.Sprintf(`SELECT %s FROM %s`, partnerColumns(), ref.Table)
	if publishedOnly {
		query += fmt.Sprintf(" WHERE %s = TRUE", ref.IsPublished)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", ref.SortOrder, ref.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_partners")
	}
	defer rows.Close()

	partners := make([]*Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_partner")
		}
		partners = append(partners, p)
	}

	return partners, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Partner, error) {
	ref := schema.ContentPartner

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, partnerColumns(), ref.Table, ref.ID)

	p, err := scanPartner(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_partner_by_id")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, partner *Partner) (*Partner, error) {
	ref := schema.ContentPartner

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		ref.Table,
		ref.Name, ref.LogoURL, ref.WebsiteURL, ref.SortOrder, ref.IsPublished,
		ref.ID, ref.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		partner.Name, partner.LogoURL, partner.WebsiteURL, partner.SortOrder, partner.IsPublished,
	).Scan(&partner.ID, &partner.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_partner")
	}

	return partner, nil
}

func (repository *PostgresRepository) Update(context context.Context, partner *Partner) (*Partner, error) {
	ref := schema.ContentPartner

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1
		RETURNING %s
	`,
		ref.Table,
		ref.Name, ref.LogoURL, ref.WebsiteURL, ref.SortOrder, ref.IsPublished,
		ref.ID,
		ref.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		partner.ID, partner.Name, partner.LogoURL, partner.WebsiteURL, partner.SortOrder, partner.IsPublished,
	).Scan(&partner.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_partner")
	}

	return partner, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	ref := schema.ContentPartner

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ref.Table, ref.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_partner")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
