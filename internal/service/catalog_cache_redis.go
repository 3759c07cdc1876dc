package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"aula-match/internal/domain"
	"aula-match/internal/repository"
)

// CatalogCache guarda el catalogo de estilos para no pegarle a la base en cada
// recomendacion. Vive en la capa de orquestacion; el motor puro no cachea.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.StyleProfile, bool)
	Set(ctx context.Context, styles []domain.StyleProfile)
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	key    string
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) CatalogCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCatalogCache{
		client: client,
		ttl:    ttl,
		key:    "styles:catalog",
	}
}

func (c *redisCatalogCache) Get(ctx context.Context) ([]domain.StyleProfile, bool) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		return nil, false
	}
	styles, err := repository.UnmarshalCatalog(data)
	if err != nil {
		return nil, false
	}
	return styles, true
}

func (c *redisCatalogCache) Set(ctx context.Context, styles []domain.StyleProfile) {
	data, err := repository.MarshalCatalog(styles)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.key, data, c.ttl).Err()
}
