package bookmarks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/storage"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
)

const exportURLTTL = time.Hour

var (
	ErrURLRequired       = apperr.With(apperr.ErrValidation, "URL is required")
	ErrExportUnavailable = apperr.With(apperr.ErrUnavailable, "Object storage is not configured")
)

type CreateInput struct {
	URL   string `json:"url" validate:"required,notblank"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
	Tags  string `json:"tags"`
}

type Service struct {
	repo    Repository
	objects storage.ObjectStore
	now     func() time.Time
}

// NewService builds the service. objects may be nil, in which case Export
// reports ErrExportUnavailable.
func NewService(repo Repository, objects storage.ObjectStore) *Service {
	return &Service{repo: repo, objects: objects, now: time.Now}
}

func (s *Service) List(ctx context.Context, tags string) ([]Bookmark, error) {
	return s.repo.List(ctx, tags)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Bookmark, error) {
	if err := validation.Struct(in); err != nil {
		return nil, validation.AsAppError(err, ErrURLRequired.Message)
	}
	b := Bookmark{
		ID:        store.NewID(),
		URL:       strings.TrimSpace(in.URL),
		Date:      in.Date,
		Notes:     in.Notes,
		Tags:      in.Tags,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) ByTag(ctx context.Context) ([]TagCount, error) {
	return s.repo.CountByTag(ctx)
}

// Export writes every bookmark as CSV to object storage and returns a
// presigned download link.
func (s *Service) Export(ctx context.Context) (*Export, error) {
	if s.objects == nil {
		return nil, ErrExportUnavailable
	}
	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	data, err := encodeCSV(all)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "")
	}
	key := fmt.Sprintf("bookmarks/export-%s-%s.csv", s.now().UTC().Format("20060102T150405Z"), store.NewID())
	if err := s.objects.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "text/csv"); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrUnavailable, "Export upload failed")
	}
	url, err := s.objects.PresignedURL(ctx, key, exportURLTTL)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrUnavailable, "Export link failed")
	}
	return &Export{Key: key, URL: url, Count: len(all)}, nil
}

func encodeCSV(items []Bookmark) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"url", "date", "notes", "tags"}); err != nil {
		return nil, err
	}
	for _, b := range items {
		if err := w.Write([]string{b.URL, b.Date, b.Notes, b.Tags}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
