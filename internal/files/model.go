package files

import "time"

// FileRecord is one stored file reference owned by a user. The platform keeps
// the actual bytes; FileID is the opaque handle needed to fetch them again.
// Records are append-only: created once per upload, never updated or deleted.
type FileRecord struct {
	ID         string
	UserID     int64
	Filename   string
	FileID     string
	FileSize   int64
	MimeType   string
	UploadDate time.Time
}
