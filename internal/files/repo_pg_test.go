package files

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateBindsAllColumns(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	rec := FileRecord{
		ID:         "rec-1",
		UserID:     42,
		Filename:   "notes.pdf",
		FileID:     "BQACAgIAAxkBAAIB",
		FileSize:   2048,
		MimeType:   "application/pdf",
		UploadDate: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO file_records").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.Filename,
			rec.FileID,
			rec.FileSize,
			rec.MimeType,
			rec.UploadDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateDefaultsMimeType(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	rec := FileRecord{
		ID:         "rec-2",
		UserID:     42,
		Filename:   "photo_ABCDEFGH.jpg",
		FileID:     "ABCDEFGH1234",
		UploadDate: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO file_records").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.Filename,
			rec.FileID,
			int64(0),
			"application/octet-stream",
			rec.UploadDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateRejectsMissingOwner(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	if err := repo.Create(context.Background(), FileRecord{FileID: "x"}); err != ErrInvalidInput {
		t.Fatalf("Create = %v, want ErrInvalidInput", err)
	}
}

func TestPGRepoListByUserOrdersNewestFirst(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "filename", "file_id", "file_size", "mime_type", "upload_date"}).
		AddRow("rec-2", int64(42), "b.txt", "file-b", int64(10), "text/plain", now).
		AddRow("rec-1", int64(42), "a.txt", "file-a", int64(20), "text/plain", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, filename, file_id, file_size, mime_type, upload_date").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	recs, err := repo.ListByUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "rec-2" || recs[1].ID != "rec-1" {
		t.Fatalf("unexpected order: %s, %s", recs[0].ID, recs[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
