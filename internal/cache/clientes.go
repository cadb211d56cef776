package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

const (
	clientesKey = "clientes:all"
	clientesTTL = 30 * time.Second
)

// ClientesCache guarda o snapshot da listagem completa no redis.
// Um *ClientesCache nil é válido e desliga o cache (API só com banco).
type ClientesCache struct {
	rdb *redis.Client
}

func NewClientesCache(redisURL string) *ClientesCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis desabilitado, REDIS_URL inválida: %v", err)
		return nil
	}

	return &ClientesCache{rdb: redis.NewClient(opts)}
}

func (c *ClientesCache) Get(ctx context.Context) ([]models.Cliente, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, clientesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var clientes []models.Cliente
	if err := json.Unmarshal(raw, &clientes); err != nil {
		return nil, false
	}
	return clientes, true
}

func (c *ClientesCache) Set(ctx context.Context, clientes []models.Cliente) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(clientes)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, clientesKey, raw, clientesTTL).Err(); err != nil {
		log.Printf("cache set falhou: %v", err)
	}
}

// Invalidate roda antes de responder qualquer mutação, para que
// um GET / logo em seguida já reflita a escrita.
func (c *ClientesCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, clientesKey).Err(); err != nil {
		log.Printf("cache invalidate falhou: %v", err)
	}
}
