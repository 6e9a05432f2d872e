package domain

import "context"

// ConnectionRepository maintains the symmetric connection graph between
// profiles. Both directions of an edge are written inside a single
// transaction so a failed save can never leave a one-sided connection.
type ConnectionRepository interface {
	Connect(ctx context.Context, profileID, otherID int64) error
	Disconnect(ctx context.Context, profileID, otherID int64) error
	ListConnections(ctx context.Context, profileID int64) ([]Profile, error)
}

type ConnectionUsecase interface {
	Connect(ctx context.Context, first, second string) error
	Disconnect(ctx context.Context, first, second string) error
}
