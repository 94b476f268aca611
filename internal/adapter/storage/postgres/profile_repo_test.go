package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_CountryOfResidence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT country FROM user_profiles").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"country"}).AddRow("DE"))

	country, err := repo.CountryOfResidence(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "DE", country)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_CountryOfResidence_UnknownUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT country FROM user_profiles").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"country"}))

	country, err := repo.CountryOfResidence(context.Background(), userID)
	require.NoError(t, err, "unknown user is not an error")
	assert.Empty(t, country)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepo_CountryOfResidence_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT country FROM user_profiles").
		WithArgs(userID).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.CountryOfResidence(context.Background(), userID)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
