package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"aula-match/internal/domain"
)

// StyleRepository lee el catalogo de estilos de ensenanza. El motor de
// recomendacion nunca consulta storage; recibe el catalogo ya cargado.
type StyleRepository interface {
	ListAll(ctx context.Context) ([]domain.StyleProfile, error)
}

type PgStyleRepository struct {
	pool *pgxpool.Pool
}

func NewPgStyleRepository(pool *pgxpool.Pool) *PgStyleRepository {
	return &PgStyleRepository{pool: pool}
}

func (r *PgStyleRepository) ListAll(ctx context.Context) ([]domain.StyleProfile, error) {
	const query = `
		SELECT id, name, description, characteristics, methods, benefits,
		       compatible_types, compatible_subjects, average_rating, adoption_rate
		FROM teaching_styles
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var styles []domain.StyleProfile
	for rows.Next() {
		var s domain.StyleProfile
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.Characteristics,
			&s.Methods,
			&s.Benefits,
			&s.Compatibility.PersonalityTypes,
			&s.Compatibility.Subjects,
			&s.UsageStats.AverageRating,
			&s.UsageStats.AdoptionRate,
		); err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}
	return styles, rows.Err()
}

// MarshalCatalog serializa el catalogo para la cache (redis).
func MarshalCatalog(styles []domain.StyleProfile) ([]byte, error) {
	return json.Marshal(styles)
}

// UnmarshalCatalog deserializa el catalogo desde la cache.
func UnmarshalCatalog(data []byte) ([]domain.StyleProfile, error) {
	var styles []domain.StyleProfile
	err := json.Unmarshal(data, &styles)
	return styles, err
}
