package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.CountryLookup against the user_profiles
// table maintained by the onboarding collaborator. Read-only to the
// engine, like custodial_wallets.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// CountryOfResidence returns the ISO 3166-1 alpha-2 country for a user.
// An unknown user yields an empty string, not an error, so callers fall
// back to the default withholding rate.
func (r *ProfileRepo) CountryOfResidence(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `SELECT country FROM user_profiles WHERE user_id = $1`

	var country string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get country of residence: %w", err)
	}
	return country, nil
}
