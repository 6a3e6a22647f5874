package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func captureLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := &Logger{
		info:  log.New(&out, "INFO: ", 0),
		warn:  log.New(&out, "WARN: ", 0),
		error: log.New(&errOut, "ERROR: ", 0),
	}
	return l, &out, &errOut
}

func TestInfo_FormatsMessage(t *testing.T) {
	logger, out, _ := captureLogger()

	logger.Info("User %s subscribed to %s", "user-1", "creator-1")

	assert.Contains(t, out.String(), "INFO: User user-1 subscribed to creator-1")
}

func TestWarn_FormatsMessage(t *testing.T) {
	logger, out, _ := captureLogger()

	logger.Warn("Dropping %s event for slow client %s", "message", "user-1")

	assert.Contains(t, out.String(), "WARN: Dropping message event for slow client user-1")
}

func TestError_GoesToErrorStream(t *testing.T) {
	logger, out, errOut := captureLogger()

	logger.Error("Webhook dispatch failed for event %s: %s", "evt_1", "timeout")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "ERROR: Webhook dispatch failed for event evt_1: timeout")
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger, out, errOut := captureLogger()

	logger.Info("Info %d", 1)
	logger.Warn("Warn %d", 1)
	logger.Error("Error %d", 1)
	logger.Info("Info %d", 2)

	assert.Contains(t, out.String(), "Info 1")
	assert.Contains(t, out.String(), "Warn 1")
	assert.Contains(t, out.String(), "Info 2")
	assert.Contains(t, errOut.String(), "Error 1")
}
