package repository

import (
	"context"
	"fmt"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProspectRepo represents prospect (lead) repository.
type ProspectRepo struct{ db *pgxpool.Pool }

// NewProspectRepo creates a new ProspectRepo.
func NewProspectRepo(db *pgxpool.Pool) *ProspectRepo { return &ProspectRepo{db: db} }

// Create - persists a new prospect.
func (r *ProspectRepo) Create(ctx context.Context, p *domain.Prospect) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO prospects(id, name, phone, note, source, staff_id)
        VALUES($1,$2,$3,$4,$5,$6)
    `, p.ID, p.Name, p.Phone, p.Note, p.Source, p.StaffID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create prospect %s: %w", p.ID, err)
	}
	return nil
}

// List returns prospects ordered by creation time, newest first.
func (r *ProspectRepo) List(ctx context.Context, limit, offset *int) ([]domain.Prospect, error) {
	q := `SELECT id, name, phone, note, source, staff_id, created_at
	      FROM prospects ORDER BY created_at DESC`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Prospect
	for rows.Next() {
		var p domain.Prospect
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Note, &p.Source, &p.StaffID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
