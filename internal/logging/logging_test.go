package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/database"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "logs.db")))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestJSONHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewJSONHandler(&buf, "warn"))
	logger.Info("hidden")
	logger.Warn("shown", "representative_id", 7)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, float64(7), line["representative_id"])
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var info, errOnly bytes.Buffer
	multi := NewMultiHandler(NewJSONHandler(&info, "info"), NewJSONHandler(&errOnly, "error"))
	logger := slog.New(multi).With("request_id", "r-1")

	logger.Info("hello")
	assert.Contains(t, info.String(), `"request_id":"r-1"`)
	assert.Empty(t, errOnly.String())

	logger.Error("boom")
	assert.Contains(t, errOnly.String(), "boom")
	assert.Contains(t, errOnly.String(), `"request_id":"r-1"`)

	assert.False(t, NewMultiHandler(NewJSONHandler(&info, "error")).Enabled(context.Background(), slog.LevelInfo))
}

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiHandler(failingHandler{}, NewJSONHandler(&buf, "info"))

	err := multi.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still logged", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), "still logged")
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := newLogDB(t)
	h := NewDBHandler(db, time.Hour)
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(h).With("request_id", "req-42")
	logger.Error("redeem failed",
		"representative_id", uint(9),
		"action", "invitation.redeem",
		"error", "db timeout",
		"latency_ms", 12.6,
		"code", "abc",
	)
	h.Flush()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "redeem failed", entry.Message)
	assert.Equal(t, "req-42", entry.RequestID)
	require.NotNil(t, entry.RepresentativeID)
	assert.Equal(t, uint(9), *entry.RepresentativeID)
	assert.Equal(t, "invitation.redeem", entry.Action)
	assert.Equal(t, "db timeout", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)
	assert.JSONEq(t, `{"code":"abc"}`, string(entry.Extra))
}

func TestDBHandlerStopFlushes(t *testing.T) {
	db := newLogDB(t)
	h := NewDBHandler(db, time.Hour)

	slog.New(h).Error("one")
	slog.New(h).Error("two")
	h.Stop()
	h.Stop()

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestPurgeOlderThan(t *testing.T) {
	db := newLogDB(t)
	now := time.Now().UTC()
	old := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"}
	fresh := models.SystemLog{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR", Message: "fresh"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&fresh).Error)

	deleted, err := PurgeOlderThan(context.Background(), db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Message)
}
