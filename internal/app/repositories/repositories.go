package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all data access objects
type Repositories struct {
	UserRepository        *UserRepository
	SubjectRepository     *SubjectRepository
	ResourceRepository    *ResourceRepository
	PageContentRepository *PageContentRepository
	PageViewRepository    *PageViewRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		SubjectRepository:     NewSubjectRepository(db),
		ResourceRepository:    NewResourceRepository(db),
		PageContentRepository: NewPageContentRepository(db),
		PageViewRepository:    NewPageViewRepository(db),
	}
}
