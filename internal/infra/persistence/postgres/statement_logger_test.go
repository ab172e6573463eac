package postgres

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newLoggedTestDB opens a migrated in-memory database whose statements are logged to buf.
func newLoggedTestDB(t *testing.T, buf *bytes.Buffer, debug bool) *gorm.DB {
	t.Helper()

	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	db = withSession(db, base, debug)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	buf.Reset()

	return db
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestStatementLogger_DropsBoundValues(t *testing.T) {
	var buf bytes.Buffer
	db := newLoggedTestDB(t, &buf, true)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "+919876543210")

	reqLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	buf.Reset()
	require.NoError(t, NewOTPRepository(db).Create(ctx, &entity.OTPVerification{
		UserID:  user.ID,
		EmailID: user.Email,
		OTP:     "654321",
	}))

	assert.NotContains(t, buf.String(), "654321")
	assert.NotContains(t, buf.String(), "asha@example.com")

	entries := logEntries(t, &buf)
	require.NotEmpty(t, entries)
	insert := entries[len(entries)-1]
	assert.Equal(t, "SQL statement", insert["msg"])
	assert.Equal(t, "DEBUG", insert["level"])
	assert.Equal(t, "req-42", insert["request_id"])
	assert.True(t, strings.Contains(insert["sql"].(string), "otp_verifications"), insert["sql"])
}

func TestStatementLogger_FailedStatement(t *testing.T) {
	var buf bytes.Buffer
	db := newLoggedTestDB(t, &buf, false)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "+919876543210")
	repo := NewOTPRepository(db)

	require.NoError(t, repo.Create(context.Background(), &entity.OTPVerification{UserID: user.ID, OTP: "111111"}))
	assert.Empty(t, buf.String(), "successful statements are quiet outside debug")

	err := repo.Create(context.Background(), &entity.OTPVerification{UserID: user.ID, OTP: "222222"})
	require.Error(t, err)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "SQL statement failed", entries[0]["msg"])
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.NotEmpty(t, entries[0]["error"])
	assert.NotContains(t, buf.String(), "222222")
}

func TestStatementLogger_RecordNotFoundIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	db := newLoggedTestDB(t, &buf, false)

	_, err := NewUserRepository(db).FindByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
