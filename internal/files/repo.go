package files

import "context"

// Repo defines persistence operations for file records.
type Repo interface {
	Create(ctx context.Context, rec FileRecord) error
	ListByUser(ctx context.Context, userID int64) ([]FileRecord, error)
}
