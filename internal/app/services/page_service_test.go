package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
)

// mockPageContentStore is an in-memory PageContentStore.
type mockPageContentStore struct {
	pages map[string]string
}

var _ PageContentStore = (*mockPageContentStore)(nil)

func (m *mockPageContentStore) Get(ctx context.Context, slug string) (string, error) {
	return m.pages[slug], nil
}

func (m *mockPageContentStore) Upsert(ctx context.Context, slug, html string) error {
	if m.pages == nil {
		m.pages = map[string]string{}
	}
	m.pages[slug] = html
	return nil
}

func TestPageServiceRejectsUnknownSlug(t *testing.T) {
	svc := NewPageService(&mockPageContentStore{})

	if _, err := svc.Get(context.Background(), "about"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Get: expected validation error, got %v", err)
	}
	if err := svc.Set(context.Background(), "about", "<p>x</p>"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Set: expected validation error, got %v", err)
	}
}

func TestPageServiceUnsetSlugIsEmpty(t *testing.T) {
	svc := NewPageService(&mockPageContentStore{})

	html, err := svc.Get(context.Background(), models.PageSlugJournals)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if html != "" {
		t.Errorf("unset page should be empty, got %q", html)
	}
}

func TestPageServiceRoundTripsBenignHTML(t *testing.T) {
	store := &mockPageContentStore{}
	svc := NewPageService(store)

	const content = "<p>Journal access via the library portal.</p>"
	if err := svc.Set(context.Background(), models.PageSlugJournals, content); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	html, err := svc.Get(context.Background(), models.PageSlugJournals)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if html != content {
		t.Errorf("round trip changed benign HTML: %q", html)
	}
}

func TestPageServiceStripsScripts(t *testing.T) {
	store := &mockPageContentStore{}
	svc := NewPageService(store)

	if err := svc.Set(context.Background(), models.PageSlugCareer, `<p>hi</p><script>alert(1)</script>`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	html, _ := svc.Get(context.Background(), models.PageSlugCareer)
	if html != "<p>hi</p>" {
		t.Errorf("script should be stripped on write, got %q", html)
	}
}
