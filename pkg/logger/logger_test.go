package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	// Test formatting with multiple args doesn't panic
	logger.Info("media %s uploaded by %s", "photo_1000.jpg", "alice")
	logger.Error("failed to process request %d: %s", 404, "not found")
	logger.Warn("warning: %s count is %d", "items", 5)
}
