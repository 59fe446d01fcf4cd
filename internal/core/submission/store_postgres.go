package submission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhairstudio/jhair-server/internal/platform/database/schema"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateContact(context context.Context, submission *ContactSubmission) (*ContactSubmission, error) {
	ref := schema.ContentContactSubmission

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.Name, ref.Email, ref.Phone, ref.Subject, ref.Message,
		ref.ID, ref.IsRead, ref.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		submission.Name, submission.Email, submission.Phone, submission.Subject, submission.Message,
	).Scan(&submission.ID, &submission.IsRead, &submission.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_contact_submission")
	}

	return submission, nil
}

func (repository *PostgresRepository) ListContacts(context context.Context, page pagination.Params) ([]*ContactSubmission, int, error) {
	ref := schema.ContentContactSubmission

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, ref.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contact_submissions")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s
		ORDER BY %s DESC LIMIT $1 OFFSET $2
	`,
		ref.ID, ref.Name, ref.Email, ref.Phone, ref.Subject, ref.Message, ref.IsRead, ref.CreatedAt,
		ref.Table, ref.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contact_submissions")
	}
	defer rows.Close()

	submissions := make([]*ContactSubmission, 0)
	for rows.Next() {
		s := &ContactSubmission{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.IsRead, &s.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact_submission")
		}
		submissions = append(submissions, s)
	}

	return submissions, total, nil
}

func (repository *PostgresRepository) MarkContactRead(context context.Context, id int) error {
	ref := schema.ContentContactSubmission

	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`, ref.Table, ref.IsRead, ref.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark_contact_read")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) CreateServiceRequest(context context.Context, request *ServiceRequest) (*ServiceRequest, error) {
	ref := schema.ContentServiceRequest

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		ref.Table,
		ref.OfferingID, ref.Name, ref.Email, ref.Phone,
		ref.ID, ref.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		request.OfferingID, request.Name, request.Email, request.Phone,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_service_request")
	}

	return request, nil
}

func (repository *PostgresRepository) ListServiceRequests(context context.Context, page pagination.Params) ([]*ServiceRequest, int, error) {
	ref := schema.ContentServiceRequest

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, ref.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_service_requests")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s FROM %s
		ORDER BY %s DESC LIMIT $1 OFFSET $2
	`,
		ref.ID, ref.OfferingID, ref.Name, ref.Email, ref.Phone, ref.CreatedAt,
		ref.Table, ref.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_service_requests")
	}
	defer rows.Close()

	requests := make([]*ServiceRequest, 0)
	for rows.Next() {
		r := &ServiceRequest{}
		if err := rows.Scan(&r.ID, &r.OfferingID, &r.Name, &r.Email, &r.Phone, &r.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_service_request")
		}
		requests = append(requests, r)
	}

	return requests, total, nil
}
