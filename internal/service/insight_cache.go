package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"career-compass/internal/domain"
)

// DefaultInsightTTL es la expiracion de referencia de una entrada de cache.
const DefaultInsightTTL = 24 * time.Hour

// InsightCache mapea una firma (careers + bucket del vector) a insights ya
// generados. Entradas vencidas se tratan como ausentes. Errores del backend
// se tratan como miss: la cache es auxiliar, nunca bloquea el pipeline.
type InsightCache interface {
	Get(ctx context.Context, signature string) (map[string]domain.CareerInsight, bool)
	Put(ctx context.Context, signature string, entries map[string]domain.CareerInsight, ttl time.Duration)
}

// InsightSignature deriva la clave de cache: ids del top-5 en orden mas el
// vector bucketeado a un decimal, para que perfiles casi identicos compartan
// entrada.
func InsightSignature(top []domain.CareerMatch, vector domain.TraitVector) string {
	var sb strings.Builder
	for i, m := range top {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.Career.ID)
	}
	sb.WriteByte('|')
	for _, dim := range domain.TraitDimensions {
		fmt.Fprintf(&sb, "%s:%.1f;", dim, vector[dim])
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return fmt.Sprintf("%x", sum)
}

type memoryCacheEntry struct {
	entries   map[string]domain.CareerInsight
	expiresAt time.Time
}

type memoryInsightCache struct {
	mu    sync.Mutex
	items map[string]memoryCacheEntry
	now   func() time.Time
}

// NewMemoryInsightCache crea la variante en memoria, usada en tests y en
// despliegues sin Redis.
func NewMemoryInsightCache() InsightCache {
	return &memoryInsightCache{
		items: make(map[string]memoryCacheEntry),
		now:   time.Now,
	}
}

func (c *memoryInsightCache) Get(_ context.Context, signature string) (map[string]domain.CareerInsight, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[signature]
	if !ok {
		return nil, false
	}
	if c.now().After(item.expiresAt) {
		delete(c.items, signature)
		return nil, false
	}
	return item.entries, true
}

func (c *memoryInsightCache) Put(_ context.Context, signature string, entries map[string]domain.CareerInsight, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultInsightTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[signature] = memoryCacheEntry{
		entries:   entries,
		expiresAt: c.now().Add(ttl),
	}
}

type redisInsightCache struct {
	client *redis.Client
	prefix string
}

// NewRedisInsightCache crea la variante Redis. Devuelve nil con cliente nil,
// igual que los stores equivalentes.
func NewRedisInsightCache(client *redis.Client) InsightCache {
	if client == nil {
		return nil
	}
	return &redisInsightCache{
		client: client,
		prefix: "insight:cache:",
	}
}

func (c *redisInsightCache) Get(ctx context.Context, signature string) (map[string]domain.CareerInsight, bool) {
	opCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(opCtx, c.prefix+signature).Bytes()
	if err != nil {
		return nil, false
	}
	var entries map[string]domain.CareerInsight
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *redisInsightCache) Put(ctx context.Context, signature string, entries map[string]domain.CareerInsight, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultInsightTTL
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(opCtx, c.prefix+signature, raw, ttl).Err()
}
