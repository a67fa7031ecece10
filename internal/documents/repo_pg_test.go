package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var documentTestColumns = []string{
	"id", "user_id", "kind", "file_name", "original_filename", "mime_type",
	"content_type", "size_bytes", "storage_provider", "storage_key",
	"extracted_text_key", "extracted_at", "created_at",
}

func TestPGRepoCreateDefaultsKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", "guest:g1", KindOther, "notes.txt", "notes.txt",
			"text/plain", "text/plain", int64(42), "local",
			sqlmock.AnyArg(), created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), Document{
		ID:         "doc-1",
		UserID:     "guest:g1",
		FileName:   "notes.txt",
		MimeType:   "text/plain",
		SizeBytes:  42,
		StorageKey: "guest-g1/notes.txt",
		CreatedAt:  created,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoGetCurrentByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(documentTestColumns).
		AddRow("doc-2", "guest:g1", KindReportCard, "report-card.pdf", "report-card.pdf",
			"application/pdf", "application/pdf", int64(2048), "local",
			"guest-g1/report-card.pdf", nil, nil, created)

	mock.ExpectQuery("FROM documents").
		WithArgs("guest:g1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	doc, err := repo.GetCurrentByUser(context.Background(), "guest:g1")
	if err != nil {
		t.Fatalf("GetCurrentByUser: %v", err)
	}
	if doc.Kind != KindReportCard {
		t.Errorf("kind = %q, want %q", doc.Kind, KindReportCard)
	}
	if doc.StorageKey != "guest-g1/report-card.pdf" {
		t.Errorf("storageKey = %q", doc.StorageKey)
	}
	if doc.ExtractedAt != nil {
		t.Errorf("expected nil extractedAt, got %v", doc.ExtractedAt)
	}
}

func TestPGRepoGetCurrentByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM documents").
		WithArgs("guest:missing").
		WillReturnRows(sqlmock.NewRows(documentTestColumns))

	repo := &PGRepo{DB: db}
	_, err = repo.GetCurrentByUser(context.Background(), "guest:missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateExtraction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	extractedAt := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE documents").
		WithArgs("guest-g1/report-card.pdf.extracted.txt", extractedAt, "guest:g1", "doc-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.UpdateExtraction(context.Background(), "guest:g1", "doc-2",
		"guest-g1/report-card.pdf.extracted.txt", extractedAt); err != nil {
		t.Fatalf("UpdateExtraction: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
