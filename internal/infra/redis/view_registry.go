package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"purrfect-cats/internal/app"
)

// redisTimeout bounds each marker write.
const redisTimeout = 2 * time.Second

// ViewRegistry is a Redis-aware implementation of app.ViewRegistry.
// Notes:
//   - Views still live in a local map; each one is owned by its connection
//     and never shared across instances.
//   - Redis only carries a liveness marker per view so operators can count
//     open pages across instances (SCAN cats:view:*). Open views must be
//     touched more often than the ttl or their marker expires.
//   - Redis calls run outside the lock with a short timeout so an
//     unreachable Redis never stalls Get/Count.
type ViewRegistry struct {
	client *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex
	views  map[string]*app.View
}

func NewViewRegistry(client *redis.Client, ttl time.Duration) *ViewRegistry {
	return &ViewRegistry{
		client: client,
		ttl:    ttl,
		views:  make(map[string]*app.View),
	}
}

func (r *ViewRegistry) Register(view *app.View) {
	r.mu.Lock()
	r.views[view.ID()] = view
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	// best-effort liveness marker
	if err := r.client.Set(ctx, r.key(view.ID()), "1", r.ttl).Err(); err != nil {
		log.Printf("view %s: set liveness marker: %v", view.ID(), err)
	}
}

// Touch extends the liveness marker of an open view.
func (r *ViewRegistry) Touch(viewID string) {
	r.mu.RLock()
	_, ok := r.views[viewID]
	r.mu.RUnlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	// SET rather than EXPIRE so a marker lost to eviction comes back.
	if err := r.client.Set(ctx, r.key(viewID), "1", r.ttl).Err(); err != nil {
		log.Printf("view %s: refresh liveness marker: %v", viewID, err)
	}
}

func (r *ViewRegistry) Get(viewID string) (*app.View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[viewID]
	return view, ok
}

func (r *ViewRegistry) Remove(viewID string) {
	r.mu.Lock()
	_, ok := r.views[viewID]
	delete(r.views, viewID)
	r.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	_ = r.client.Del(ctx, r.key(viewID)).Err()
}

func (r *ViewRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

func (r *ViewRegistry) key(viewID string) string {
	return "cats:view:" + viewID
}
