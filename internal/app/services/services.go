package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/repositories"
)

// Service interfaces consumed by the controllers.

// AuthService verifies admin credentials.
type AuthService interface {
	// Login returns the matching user when the credentials verify, or
	// apperrors.ErrInvalidCredentials. Unknown usernames are not
	// distinguished from wrong passwords.
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// ResourceService covers subject listing and the catalog operations.
type ResourceService interface {
	ListSubjects(ctx context.Context, yearID int) ([]models.Subject, error)
	List(ctx context.Context, filter repositories.ResourceFilter) ([]models.Resource, error)
	ListByYear(ctx context.Context, yearID int, resourceType models.ResourceType) ([]models.Resource, error)
	ListAll(ctx context.Context) ([]models.Resource, error)
	Create(ctx context.Context, req *dto.CreateResourceRequest, file, thumbnail *multipart.FileHeader) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// PageService reads and writes the editable content pages.
type PageService interface {
	Get(ctx context.Context, slug string) (string, error)
	Set(ctx context.Context, slug, html string) error
}

// StatsService backs the dashboard overview numbers.
type StatsService interface {
	Overview(ctx context.Context) (*dto.StatsResponse, error)
	// RecordView notes one public catalog read. Best effort: failures are
	// logged, never surfaced.
	RecordView(ctx context.Context)
}

// Narrow store interfaces the services depend on. The pgx repositories
// satisfy them; tests substitute in-memory fakes.

// UserStore is the slice of UserRepository used by AuthService.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SubjectStore is the slice of SubjectRepository used by ResourceService.
type SubjectStore interface {
	GetByYear(ctx context.Context, yearID int) ([]models.Subject, error)
}

// ResourceStore is the slice of ResourceRepository used by ResourceService.
type ResourceStore interface {
	List(ctx context.Context, filter repositories.ResourceFilter) ([]models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) (int64, error)
	Delete(ctx context.Context, id int64) (filePath, thumbnailPath *string, err error)
	CountAll(ctx context.Context) (int64, error)
}

// PageContentStore is the slice of PageContentRepository used by PageService.
type PageContentStore interface {
	Get(ctx context.Context, slug string) (string, error)
	Upsert(ctx context.Context, slug, html string) error
}

// PageViewStore is the slice of PageViewRepository used by StatsService.
type PageViewStore interface {
	Record(ctx context.Context) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
