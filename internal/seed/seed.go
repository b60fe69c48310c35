package seed

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	appRepos "github.com/coursemart/coursemart-backend/internal/app/repositories"
	"github.com/coursemart/coursemart-backend/internal/config"
)

// CreateDefaultData ensures the configured admin account exists. Without at
// least one admin the moderation routes are unreachable, so this runs on
// every startup; the upsert makes it a no-op when the account is already
// there.
func CreateDefaultData(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" {
		lgr.Debug().Msg("No admin email configured, skipping seed")
		return nil
	}

	if user, err := repos.UserRepository.FindByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		if user.Role != models.RoleAdmin {
			lgr.Warn().Str("email", user.Email).Str("role", string(user.Role)).Msg("Configured admin exists with a different role, leaving it untouched")
		}
		return nil
	}

	fields := bson.M{"role": models.RoleAdmin}
	if cfg.Seed.AdminName != "" {
		fields["name"] = cfg.Seed.AdminName
	}

	if _, err := repos.UserRepository.Upsert(ctx, cfg.Seed.AdminEmail, fields); err != nil {
		return err
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin account created")
	return nil
}
