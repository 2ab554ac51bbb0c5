package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/aurumprivate/aurum-leads/internal/entity"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, first_name, last_name, email, company, position, revenue,
			requirements, plan_name, quality, category, follow_up_date,
			status, interactions, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Company,
		lead.Position,
		lead.Revenue,
		lead.Requirements,
		lead.PlanName,
		lead.Quality,
		lead.Category,
		lead.FollowUpDate,
		lead.Status,
		pq.Array(lead.Interactions),
		pq.Array(lead.Notes),
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		log.Printf("Erro crítico no banco ao gravar lead: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := selectLeadQuery + ` WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Lead, error) {
	query := selectLeadQuery + ` WHERE category = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) MarkSent(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE leads
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, entity.LeadStatusSent, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE category = 'HOT'),
			COUNT(*) FILTER (WHERE category = 'WARM'),
			COUNT(*) FILTER (WHERE category = 'COLD'),
			COALESCE(AVG(quality), 0)
		FROM leads
	`

	stats := &entity.LeadStats{}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.Hot,
		&stats.Warm,
		&stats.Cold,
		&stats.AverageQuality,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar stats de leads: %w", err)
	}

	return stats, nil
}

const selectLeadQuery = `
	SELECT id, first_name, last_name, email, company, position, revenue,
	       requirements, plan_name, quality, category, follow_up_date,
	       status, interactions, notes, created_at, updated_at
	FROM leads`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	lead := &entity.Lead{}
	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Company,
		&lead.Position,
		&lead.Revenue,
		&lead.Requirements,
		&lead.PlanName,
		&lead.Quality,
		&lead.Category,
		&lead.FollowUpDate,
		&lead.Status,
		pq.Array(&lead.Interactions),
		pq.Array(&lead.Notes),
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lead.Interactions == nil {
		lead.Interactions = []string{}
	}
	if lead.Notes == nil {
		lead.Notes = []string{}
	}

	return lead, nil
}
