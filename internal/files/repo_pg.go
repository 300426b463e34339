package files

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new file record. The insert is a single statement, so a
// failed write leaves nothing behind for a later read.
func (r *PGRepo) Create(ctx context.Context, rec FileRecord) error {
	if rec.UserID == 0 || rec.FileID == "" {
		return ErrInvalidInput
	}
	const query = `
INSERT INTO file_records (
    id,
    user_id,
    filename,
    file_id,
    file_size,
    mime_type,
    upload_date
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	mimeType := rec.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.Filename,
		rec.FileID,
		rec.FileSize,
		mimeType,
		rec.UploadDate,
	)
	return err
}

// ListByUser returns all records for a user, newest upload first.
func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]FileRecord, error) {
	const query = `
SELECT id, user_id, filename, file_id, file_size, mime_type, upload_date
FROM file_records
WHERE user_id = $1
ORDER BY upload_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FileRecord
	for rows.Next() {
		var rec FileRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Filename,
			&rec.FileID,
			&rec.FileSize,
			&rec.MimeType,
			&rec.UploadDate,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
