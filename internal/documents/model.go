package documents

import (
	"path/filepath"
	"strings"
	"time"
)

// Document kinds. Kind is advisory: it steers extraction prompts but any
// kind flows through the same pipeline.
const (
	KindReportCard = "report_card"
	KindIEP        = "iep"
	KindTranscript = "transcript"
	KindOther      = "other"
)

// Document represents an uploaded student record (report card, IEP,
// transcript) owned by a parent account.
type Document struct {
	ID               string
	UserID           string
	Kind             string
	FileName         string
	OriginalFilename string
	MimeType         string
	ContentType      string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}

// ValidKind reports whether kind is one of the known document kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindReportCard, KindIEP, KindTranscript, KindOther:
		return true
	}
	return false
}

// InferKind guesses a document kind from its file name.
func InferKind(fileName string) string {
	base := strings.ToLower(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	switch {
	case strings.Contains(base, "report"), strings.Contains(base, "grade"):
		return KindReportCard
	case strings.Contains(base, "iep"):
		return KindIEP
	case strings.Contains(base, "transcript"):
		return KindTranscript
	default:
		return KindOther
	}
}
