package memory

import (
	"sync"

	"purrfect-cats/internal/app"
)

// ViewRegistry is an in-memory implementation of app.ViewRegistry.
type ViewRegistry struct {
	mu    sync.RWMutex
	views map[string]*app.View
}

func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{
		views: make(map[string]*app.View),
	}
}

func (r *ViewRegistry) Register(view *app.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[view.ID()] = view
}

func (r *ViewRegistry) Get(viewID string) (*app.View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[viewID]
	return view, ok
}

func (r *ViewRegistry) Remove(viewID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, viewID)
}

// Touch is a no-op; in-process views need no liveness marker.
func (r *ViewRegistry) Touch(string) {}

func (r *ViewRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
