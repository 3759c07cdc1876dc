package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"aula-match/internal/domain"
)

// ContentRepository persiste el contenido sintetizado para consulta posterior.
type ContentRepository interface {
	Create(ctx context.Context, content domain.ContentTemplate) error
	FindByUserID(ctx context.Context, userID string) ([]domain.ContentTemplate, error)
}

type PgContentRepository struct {
	pool *pgxpool.Pool
}

func NewPgContentRepository(pool *pgxpool.Pool) *PgContentRepository {
	return &PgContentRepository{pool: pool}
}

func (r *PgContentRepository) Create(ctx context.Context, content domain.ContentTemplate) error {
	const query = `
		INSERT INTO generated_content (id, user_id, style_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	body, err := json.Marshal(content)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		content.ID,
		content.UserID,
		content.StyleID,
		body,
		content.CreatedAt,
	)
	return err
}

func (r *PgContentRepository) FindByUserID(ctx context.Context, userID string) ([]domain.ContentTemplate, error) {
	const query = `
		SELECT body
		FROM generated_content
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []domain.ContentTemplate
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var c domain.ContentTemplate
		if err := json.Unmarshal(body, &c); err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}
