package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(&buf)
	l.SetLevel(level)
	return l, &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestGormLoggerTrace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM toppings", 3 }

	testCases := []struct {
		name    string
		begin   time.Time
		err     error
		level   string
		message string
	}{
		{name: "query is traced at debug", begin: time.Now(), level: "debug", message: "Query executed"},
		{name: "failed query is a warning", begin: time.Now(), err: errors.New("no such table: toppings"), level: "warning", message: "Query failed"},
		{name: "slow query is a warning", begin: time.Now().Add(-time.Second), level: "warning", message: "Slow query"},
		{name: "record not found is only traced", begin: time.Now(), err: gorm.ErrRecordNotFound, level: "debug", message: "Query executed"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := captureLogger(logrus.DebugLevel)

			newGormLogger(l).Trace(context.Background(), tt.begin, query, tt.err)

			entries := logEntries(t, buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
			assert.Equal(t, tt.message, entries[0]["msg"])
			assert.Equal(t, "SELECT * FROM toppings", entries[0]["sql"])
			assert.EqualValues(t, 3, entries[0]["rows"])
		})
	}
}

func TestGormLoggerSilentMode(t *testing.T) {
	l, buf := captureLogger(logrus.DebugLevel)
	silent := newGormLogger(l).LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	silent.Error(context.Background(), "failed %s", "migration")

	assert.Empty(t, buf.String())
}

func TestGormConfigTracesThroughLogrus(t *testing.T) {
	l, buf := captureLogger(logrus.DebugLevel)
	previous := log
	log = l
	t.Cleanup(func() { log = previous })

	db, err := InitDatabase(InMemorySQLite(uuid.NewString()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	buf.Reset()
	require.NoError(t, db.Exec("SELECT 1").Error)

	var traced bool
	for _, entry := range logEntries(t, buf) {
		if entry["msg"] == "Query executed" && entry["sql"] == "SELECT 1" {
			traced = true
		}
	}
	assert.True(t, traced, "queries are traced through the package logger")
}
