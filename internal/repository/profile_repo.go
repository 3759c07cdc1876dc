package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"aula-match/internal/domain"
)

// ProfileRepository persiste el perfil de personalidad vigente de cada docente.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.PersonalityProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.PersonalityProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Upsert(ctx context.Context, profile domain.PersonalityProfile) error {
	const query = `
		INSERT INTO personality_profiles (id, user_id, type, scores, strengths, challenges, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET
			type = EXCLUDED.type,
			scores = EXCLUDED.scores,
			strengths = EXCLUDED.strengths,
			challenges = EXCLUDED.challenges,
			created_at = EXCLUDED.created_at
	`
	scores, err := json.Marshal(profile.Scores)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Type,
		scores,
		profile.Strengths,
		profile.Challenges,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.PersonalityProfile, error) {
	const query = `
		SELECT id, user_id, type, scores, strengths, challenges, created_at
		FROM personality_profiles
		WHERE user_id = $1
	`
	var p domain.PersonalityProfile
	var scores []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Type,
		&scores,
		&p.Strengths,
		&p.Challenges,
		&p.CreatedAt,
	)
	if err != nil {
		return domain.PersonalityProfile{}, err
	}
	if err := json.Unmarshal(scores, &p.Scores); err != nil {
		return domain.PersonalityProfile{}, err
	}
	return p, nil
}
