package app

import (
	"context"
	"log"

	"purrfect-cats/internal/domain"
)

const (
	// FactFallbackText is shown whenever a fact could not be fetched.
	FactFallbackText = "Failed to fetch a cat fact. Please try again."
	// FactLoadingText is shown while the first fact is in flight.
	FactLoadingText = "Loading a cat fact..."
)

// FactFetcher retrieves one fact from an external source.
type FactFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// FetchFactText always resolves to display-ready text.
func FetchFactText(ctx context.Context, fetcher FactFetcher) string {
	text, err := fetcher.Fetch(ctx)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("fact fetch failed: %v", err)
		}
		return FactFallbackText
	}
	return text
}

// FactBoard owns the fact widget state. Each Begin issues a sequence number
// and only the latest one may resolve, so a slow older response cannot
// overwrite a newer fact.
type FactBoard struct {
	text    string
	loading bool
	issued  uint64
}

func NewFactBoard() *FactBoard {
	return &FactBoard{text: FactLoadingText}
}

func (b *FactBoard) Begin() uint64 {
	b.issued++
	b.loading = true
	return b.issued
}

func (b *FactBoard) Resolve(seq uint64, text string) bool {
	if seq != b.issued {
		return false
	}
	b.text = text
	b.loading = false
	return true
}

func (b *FactBoard) State() domain.FactState {
	return domain.FactState{Text: b.text, Loading: b.loading}
}
