package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	mockRepo "sellerhub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is the clock used by services under test.
var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

// expectTx runs the transaction body against a fresh repository factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// requireAppError asserts err carries an AppError and returns it.
func requireAppError(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)

	return appErr
}
