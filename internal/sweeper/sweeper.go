package sweeper

import (
	"context"
)

// Sweeper is a long running background task
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the main loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop asks the main loop to exit and waits for in-flight work
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging
	Name() string
}
