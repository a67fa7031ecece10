package documents

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolmatch-backend/internal/extract"
	"schoolmatch-backend/internal/shared/storage/object"
	"schoolmatch-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

var uploadExts = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, userId, fileName, kind string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}
	if !uploadExts[strings.ToLower(filepath.Ext(fileName))] {
		return Document{}, ErrUnsupportedType
	}
	if kind == "" {
		kind = InferKind(fileName)
	}
	if !ValidKind(kind) {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userId,
		Kind:       kind,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// CreateFromS3 records a document already uploaded straight to S3 by the client.
func (s *Service) CreateFromS3(ctx context.Context, userId, s3Key, originalFileName, contentType string, sizeBytes int64) (Document, error) {
	if s3Key == "" || originalFileName == "" || contentType == "" || sizeBytes <= 0 {
		return Document{}, ErrInvalidInput
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userId,
		Kind:             InferKind(originalFileName),
		FileName:         originalFileName,
		OriginalFilename: originalFileName,
		MimeType:         contentType,
		ContentType:      contentType,
		SizeBytes:        sizeBytes,
		StorageProvider:  "s3",
		StorageKey:       s3Key,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Current returns the current document for a user.
func (s *Service) Current(ctx context.Context, userId string) (Document, error) {
	if userId == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// CurrentText returns the extracted text of the user's current document,
// extracting and caching it on first use.
func (s *Service) CurrentText(ctx context.Context, userId string) (string, string, error) {
	doc, err := s.Current(ctx, userId)
	if err != nil {
		return "", "", err
	}
	return s.textFor(ctx, userId, doc)
}

// TextByID returns the extracted text of a specific document owned by the user.
func (s *Service) TextByID(ctx context.Context, userId, documentID string) (string, string, error) {
	if documentID == "" {
		return "", "", ErrInvalidInput
	}
	doc, err := s.Repo.GetByID(ctx, userId, documentID)
	if err != nil {
		return "", "", err
	}
	return s.textFor(ctx, userId, doc)
}

func (s *Service) textFor(ctx context.Context, userId string, doc Document) (string, string, error) {
	if doc.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, readErr := io.ReadAll(body)
			if readErr == nil {
				return string(raw), doc.MimeType, nil
			}
		}
		telemetry.Error("cached extraction unreadable, re-extracting", map[string]any{
			"documentId": doc.ID,
			"key":        doc.ExtractedTextKey,
		})
	}

	text, err := extract.Text(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", "", err
	}
	text = strings.TrimSpace(text)

	// extract.Text persisted the derived copy under this key.
	extractedKey := doc.StorageKey + ".extracted.txt"
	if err := s.Repo.UpdateExtraction(ctx, userId, doc.ID, extractedKey, time.Now().UTC()); err != nil {
		telemetry.Error("failed to record extraction", map[string]any{
			"documentId": doc.ID,
			"err":        err.Error(),
		})
	}
	return text, doc.MimeType, nil
}
