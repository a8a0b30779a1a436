// Package seed plants the reference data the site expects on first boot
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/repositories"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/auth"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// defaultSubjects is the Pharm D curriculum by academic year. Seeding is
// idempotent, so the table converges to this set plus any manual additions.
var defaultSubjects = map[int][]string{
	1: {
		"Human Anatomy and Physiology",
		"Medicinal Biochemistry",
		"Pharmaceutical Inorganic Chemistry",
		"Pharmaceutics",
		"Remedial Mathematics / Biology",
	},
	2: {
		"Pathophysiology",
		"Pharmaceutical Microbiology",
		"Pharmaceutical Organic Chemistry",
		"Community Pharmacy",
		"Pharmacognosy",
	},
	3: {
		"Pharmacology",
		"Pharmaceutical Analysis",
		"Medicinal Chemistry",
		"Pharmaceutical Jurisprudence",
	},
	4: {
		"Pharmacotherapeutics",
		"Hospital Pharmacy",
		"Clinical Toxicology",
		"Pharmaceutical Biotechnology",
		"Biostatistics and Research Methodology",
	},
	5: {
		"Clinical Research",
		"Clinical Pharmacy",
		"Pharmacovigilance",
		"Clinical Pharmacokinetics",
		"Pharmacy Practice",
	},
	6: {
		"Internship Project",
		"Clerkship",
	},
}

// Subjects inserts any missing curriculum subjects
func Subjects(ctx context.Context, subjects *repositories.SubjectRepository) error {
	for yearID := 1; yearID <= models.YearCount; yearID++ {
		for _, name := range defaultSubjects[yearID] {
			subject := &models.Subject{Name: name, YearID: yearID}
			if err := subjects.CreateIfAbsent(ctx, subject); err != nil {
				return fmt.Errorf("failed to seed subject %q: %w", name, err)
			}
		}
	}
	return nil
}

// AdminUser creates the admin account from ADMIN_USERNAME / ADMIN_PASSWORD
// when that username does not exist yet. With the variables unset the seed
// is skipped, which is fine once the account exists.
func AdminUser(ctx context.Context, users *repositories.UserRepository) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		logger.Debug().Msg("Admin seed variables unset, skipping admin seed")
		return nil
	}

	exists, err := users.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := users.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		// Lost a race with a concurrent boot; the account exists either way.
		if errors.Is(err, apperrors.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Int64("userID", id).Str("username", username).Msg("Admin account created")
	return nil
}

// Run applies all seed steps
func Run(ctx context.Context, repos *repositories.Repositories) error {
	if err := Subjects(ctx, repos.SubjectRepository); err != nil {
		return err
	}
	return AdminUser(ctx, repos.UserRepository)
}
