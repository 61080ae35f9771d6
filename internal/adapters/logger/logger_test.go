package logger_test

import (
	"bytes"
	"testing"

	"github.com/packship/packship/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("publishing version 1")
	log.Warn("publish failed")
	log.Error(zerr.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "publishing version 1")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "publish failed")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}
