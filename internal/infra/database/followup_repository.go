package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
)

type FollowUpRepository struct {
	DB *sql.DB
}

func NewFollowUpRepository(db *sql.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

func (r *FollowUpRepository) Create(ctx context.Context, followUp *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, lead_id, follow_up_date, status, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		followUp.ID,
		followUp.LeadID,
		followUp.FollowUpDate,
		followUp.Status,
		followUp.Type,
		followUp.CreatedAt,
		followUp.UpdatedAt,
	)

	return err
}

// MarkDueSent vira SCHEDULED -> SENT em uma única instrução condicional e
// devolve só as linhas que esta chamada mudou. Duas varreduras concorrentes
// nunca pegam o mesmo follow-up: o UPDATE é atômico no Postgres.
func (r *FollowUpRepository) MarkDueSent(ctx context.Context, now time.Time) ([]*entity.FollowUp, error) {
	query := `
		UPDATE follow_ups
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND follow_up_date <= $3
		RETURNING id, lead_id, follow_up_date, status, type, created_at, updated_at
	`

	rows, err := r.DB.QueryContext(ctx, query,
		entity.FollowUpStatusSent,
		entity.FollowUpStatusScheduled,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []*entity.FollowUp
	for rows.Next() {
		followUp := &entity.FollowUp{}
		err := rows.Scan(
			&followUp.ID,
			&followUp.LeadID,
			&followUp.FollowUpDate,
			&followUp.Status,
			&followUp.Type,
			&followUp.CreatedAt,
			&followUp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		due = append(due, followUp)
	}

	return due, rows.Err()
}

func (r *FollowUpRepository) CountScheduled(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM follow_ups WHERE status = $1
	`, entity.FollowUpStatusScheduled).Scan(&count)

	return count, err
}
