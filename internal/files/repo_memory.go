package files

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int64][]FileRecord // userID -> records in insertion order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[int64][]FileRecord),
	}
}

// Create appends a record for the owning user.
func (r *MemoryRepo) Create(ctx context.Context, rec FileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.UserID == 0 || rec.FileID == "" {
		return ErrInvalidInput
	}
	if rec.MimeType == "" {
		rec.MimeType = "application/octet-stream"
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = append(r.data[rec.UserID], rec)
	return nil
}

// ListByUser returns a user's records sorted newest-first by upload date.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID int64) ([]FileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stored := r.data[userID]
	r.mu.RUnlock()

	recs := make([]FileRecord, len(stored))
	copy(recs, stored)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].UploadDate.After(recs[j].UploadDate)
	})
	return recs, nil
}
