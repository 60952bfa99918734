package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"lifelink/config"
	deliverycontext "lifelink/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func querySQL() (string, int64) {
	return "SELECT * FROM qr_codes", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failures are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), querySQL, errors.New("no such table"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "no such table")
		assert.Contains(t, buf.String(), "component=gorm")
	})

	t.Run("record not found is not a failure", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), querySQL, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Database.SlowQueryThreshold = time.Millisecond
		l, buf := newBufferedGormLogger(cfg)

		l.Trace(context.Background(), time.Now().Add(-time.Second), querySQL, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries are silent outside debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), querySQL, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("debug traces every query", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf := newBufferedGormLogger(cfg)

		l.Trace(context.Background(), time.Now(), querySQL, nil)

		assert.Contains(t, buf.String(), "SELECT * FROM qr_codes")
	})

	t.Run("request logger wins over the fallback", func(t *testing.T) {
		l, fallback := newBufferedGormLogger(&config.Config{})
		var reqBuf bytes.Buffer
		reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), querySQL, errors.New("boom"))

		assert.Empty(t, fallback.String())
		assert.Contains(t, reqBuf.String(), "request_id=req-1")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(&config.Config{})

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), querySQL, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
