package resume

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
)

// maxTextChars bounds the extracted text kept for keyword matching.
const maxTextChars = 50_000

// FileStore keeps uploaded files. Keys are relative paths chosen by the caller.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
	Remove(ctx context.Context, path string) error
}

// Document is a stored resume together with its extracted text.
type Document struct {
	Path      string
	Filename  string
	Size      int
	Text      string
	Excerpted bool
}

// UseCase validates, parses and stores resume uploads.
type UseCase interface {
	Ingest(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (Document, error)
	Discard(ctx context.Context, path string) error
}

type service struct {
	store    FileStore
	maxBytes int
}

// NewService returns the default resume use case. maxBytes <= 0 disables the size cap.
func NewService(store FileStore, maxBytes int) UseCase {
	return &service{store: store, maxBytes: maxBytes}
}

func (s *service) Ingest(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (Document, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if !Supported(filename) {
		return Document{}, ErrUnsupportedFormat
	}
	if len(data) == 0 {
		return Document{}, apperr.Validation("resume file is empty")
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return Document{}, apperr.Validation(fmt.Sprintf("resume file is too large (max %d bytes)", s.maxBytes))
	}
	text, err := ParseResumeText(filename, data)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindUnknown {
			return Document{}, err
		}
		return Document{}, apperr.Validation("could not read resume: " + err.Error())
	}
	excerpted := false
	if len(text) > maxTextChars {
		text = text[:maxTextChars]
		excerpted = true
	}
	key := filepath.Join("resumes", ownerID.String(), uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	path, err := s.store.Save(ctx, key, data)
	if err != nil {
		return Document{}, fmt.Errorf("store resume: %w", err)
	}
	return Document{Path: path, Filename: filename, Size: len(data), Text: text, Excerpted: excerpted}, nil
}

func (s *service) Discard(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	return s.store.Remove(ctx, path)
}
