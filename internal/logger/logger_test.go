package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebug_GatedOnVerbose(t *testing.T) {
	buf := captureOutput(t)

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", buf.String())
}

func TestInfo_GatedOnVerbose(t *testing.T) {
	buf := captureOutput(t)

	SetVerbose(false)
	Info("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Info("shown")
	assert.Equal(t, "[INFO] shown\n", buf.String())
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t)

	SetVerbose(false)
	Warn("skipped candidate %q", "x")

	assert.Equal(t, "[WARN] skipped candidate \"x\"\n", buf.String())
}

func TestIsVerbose(t *testing.T) {
	captureOutput(t)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
