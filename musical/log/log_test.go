package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	out, level := Output, Level
	Output = buf
	t.Cleanup(func() {
		Output, Level = out, level
	})
	return buf
}

func TestSetLevel(t *testing.T) {
	capture(t)
	SetLevel(false, false, false)
	assert.Equal(t, LogLevel_Info, Level)
	SetLevel(false, true, false)
	assert.Equal(t, LogLevel_Warn, Level)
	SetLevel(false, true, true)
	assert.Equal(t, LogLevel_None, Level)
	SetLevel(true, true, true)
	assert.Equal(t, LogLevel_Debug, Level)
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	Level = LogLevel_Warn
	Infof("hidden %d", 1)
	Debugf("hidden %d", 2)
	Warnf("shown %d", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARNING] shown 3")
}

func TestDebugIndent(t *testing.T) {
	buf := capture(t)
	Level = LogLevel_Debug
	Enter()
	Debugf("nested")
	Leave()
	Debugf("top")
	assert.Contains(t, buf.String(), "  nested\n")
	assert.Contains(t, buf.String(), "top\n")
}
