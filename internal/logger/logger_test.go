package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Out: &buf})
	L().Debug("hidden")
	L().Warn("shown", "k", 1)
	restore()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=1")

	buf.Reset()
	restore = Setup(Config{Out: &buf, Debug: true})
	L().Debug("visible")
	restore()
	assert.Contains(t, buf.String(), "logger.initialized")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "source=")
}

func TestSetup_RestoreDiscards(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Out: &buf, Debug: true})
	restore()
	before := buf.Len()

	L().Error("after restore")
	assert.Equal(t, before, buf.Len())

	restore = Setup(Config{})
	L().Error("nil writer is fine")
	restore()
}
