package app

import (
	"context"

	"github.com/google/uuid"

	"purrfect-cats/internal/domain"
)

// CatalogRepository loads catalog content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// ViewRegistry tracks the views that are currently open (in-memory, Redis, etc).
type ViewRegistry interface {
	Register(view *View)
	Get(viewID string) (*View, bool)
	Remove(viewID string)
	// Touch marks an open view as still alive.
	Touch(viewID string)
	Count() int
}

// ViewService contains the page use cases.
type ViewService struct {
	catalogs CatalogRepository
	views    ViewRegistry
	fetcher  FactFetcher
	clock    Clock
	opts     ViewOptions
}

func NewViewService(catalogs CatalogRepository, views ViewRegistry, fetcher FactFetcher, opts ViewOptions) *ViewService {
	return &ViewService{
		catalogs: catalogs,
		views:    views,
		fetcher:  fetcher,
		clock:    SystemClock{},
		opts:     opts,
	}
}

// WithClock swaps the scheduling clock; used by tests.
func (s *ViewService) WithClock(clock Clock) *ViewService {
	s.clock = clock
	return s
}

// Open builds and registers a new view for a catalog. The caller runs it and
// must Close it afterwards.
func (s *ViewService) Open(ctx context.Context, catalogID string) (*View, error) {
	catalog, err := s.catalogs.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	view, err := NewView(uuid.NewString(), catalog, s.fetcher, s.clock, s.opts)
	if err != nil {
		return nil, err
	}
	s.views.Register(view)
	return view, nil
}

// Dispatch routes a command to a registered view.
func (s *ViewService) Dispatch(ctx context.Context, viewID string, cmd domain.Command) error {
	view, ok := s.views.Get(viewID)
	if !ok {
		return domain.ErrViewNotFound
	}
	return view.Dispatch(ctx, cmd)
}

// KeepAlive touches the view's registry entry every opts.Heartbeat until ctx
// ends. A zero heartbeat disables it.
func (s *ViewService) KeepAlive(ctx context.Context, viewID string) {
	if s.opts.Heartbeat <= 0 {
		return
	}
	ticker := s.clock.NewTicker(s.opts.Heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.views.Touch(viewID)
		}
	}
}

func (s *ViewService) Close(viewID string) {
	s.views.Remove(viewID)
}

func (s *ViewService) ActiveViews() int {
	return s.views.Count()
}

// Catalog returns the answer-free catalog for rendering info panels.
func (s *ViewService) Catalog(ctx context.Context, catalogID string) (domain.PublicCatalog, error) {
	catalog, err := s.catalogs.GetCatalog(ctx, catalogID)
	if err != nil {
		return domain.PublicCatalog{}, err
	}
	return catalog.Public(), nil
}

// Fact fetches a single display-ready fact outside any view.
func (s *ViewService) Fact(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FactTimeout)
	defer cancel()
	return FetchFactText(ctx, s.fetcher)
}
