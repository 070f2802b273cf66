package activity

import "context"

// Repository stores the append-only event feed.
type Repository interface {
	Append(ctx context.Context, events []Event) error
	// ListByGameweek returns events newest first; limit <= 0 means all.
	ListByGameweek(ctx context.Context, gameweekID, limit int) ([]Event, error)
	MaxID(ctx context.Context) (int64, error)
}
