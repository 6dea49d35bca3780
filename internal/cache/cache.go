package cache

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gofrs/uuid/v5"
)

// UserCache keeps one value per user. Invalidate bumps the user's generation,
// so a value computed from data read before a write can never be served after it.
type UserCache[V any] struct {
	cache       *ristretto.Cache[string, V]
	ttl         time.Duration
	generations sync.Map
}

func NewUserCache[V any](ttl time.Duration) (*UserCache[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}

	return &UserCache[V]{cache: c, ttl: ttl}, nil
}

func (c *UserCache[V]) generation(userID uuid.UUID) *atomic.Uint64 {
	gen, _ := c.generations.LoadOrStore(userID, &atomic.Uint64{})
	return gen.(*atomic.Uint64)
}

func key(userID uuid.UUID, gen uint64) string {
	return userID.String() + ":" + strconv.FormatUint(gen, 10)
}

// Get returns the cached value and the generation it must be stored under on a miss.
func (c *UserCache[V]) Get(userID uuid.UUID) (V, uint64, bool) {
	gen := c.generation(userID).Load()
	value, ok := c.cache.Get(key(userID, gen))
	return value, gen, ok
}

// Set stores value unless the user has been invalidated since gen was read.
func (c *UserCache[V]) Set(userID uuid.UUID, gen uint64, value V, cost int64) bool {
	if c.generation(userID).Load() != gen {
		return false
	}
	return c.cache.SetWithTTL(key(userID, gen), value, cost, c.ttl)
}

func (c *UserCache[V]) Invalidate(userID uuid.UUID) {
	gen := c.generation(userID).Add(1)
	c.cache.Del(key(userID, gen-1))
}

// Wait blocks until buffered writes are visible to Get.
func (c *UserCache[V]) Wait() {
	c.cache.Wait()
}

func (c *UserCache[V]) Close() {
	c.cache.Close()
}
