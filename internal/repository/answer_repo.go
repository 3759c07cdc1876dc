package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aula-match/internal/domain"
)

// AnswerRepository persiste las respuestas del cuestionario. Una respuesta
// nueva para el mismo (user_id, question_id) pisa a la anterior.
type AnswerRepository interface {
	UpsertBatch(ctx context.Context, answers []domain.Answer) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Answer, error)
}

type PgAnswerRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnswerRepository(pool *pgxpool.Pool) *PgAnswerRepository {
	return &PgAnswerRepository{pool: pool}
}

func (r *PgAnswerRepository) UpsertBatch(ctx context.Context, answers []domain.Answer) error {
	const query = `
		INSERT INTO survey_answers (id, user_id, question_id, category, value, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, question_id)
		DO UPDATE SET
			category = EXCLUDED.category,
			value = EXCLUDED.value,
			answered_at = EXCLUDED.answered_at
	`
	for _, a := range answers {
		if _, err := r.pool.Exec(ctx, query,
			a.ID,
			a.UserID,
			a.QuestionID,
			a.Category,
			a.Value,
			a.AnsweredAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgAnswerRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Answer, error) {
	const query = `
		SELECT id, user_id, question_id, category, value, answered_at
		FROM survey_answers
		WHERE user_id = $1
		ORDER BY answered_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.QuestionID,
			&a.Category,
			&a.Value,
			&a.AnsweredAt,
		); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
