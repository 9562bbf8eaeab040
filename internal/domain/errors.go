package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrInvalidCatalog is wrapped by Catalog.Validate failures.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrEmptyImageSet is returned when a carousel is built without images.
	ErrEmptyImageSet = errors.New("image set is empty")
	// ErrEmptyQuizBank is returned when starting a quiz with no questions.
	ErrEmptyQuizBank = errors.New("quiz bank is empty")
	// ErrQuizInProgress rejects a start while a session is running.
	ErrQuizInProgress = errors.New("quiz already in progress")
	// ErrQuizNotStarted rejects answers outside a session.
	ErrQuizNotStarted = errors.New("quiz not started")
	// ErrAnswerPending rejects a second answer for the same question.
	ErrAnswerPending = errors.New("answer already submitted")
	// ErrUnknownCommand indicates an unsupported command kind.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrViewClosed is returned when dispatching to a view that stopped running.
	ErrViewClosed = errors.New("view closed")
	// ErrViewNotFound indicates a view id is not registered.
	ErrViewNotFound = errors.New("view not found")
)
