package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetStatic restores the process-wide logger state after a test.
func resetStatic(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Static.SetEnabledAll(true)
		Static.SetNewline("\n")
	})
}

func TestStatic_Defaults(t *testing.T) {
	resetStatic(t)

	for _, level := range AllLevels() {
		assert.True(t, Static.IsEnabled(level), "level %v should be enabled by default", level)
	}
	assert.Equal(t, "\n", Static.Newline())
}

func TestStatic_Log_Headers(t *testing.T) {
	resetStatic(t)

	cases := []struct {
		level Level
		want  string
	}{
		{InfoLevel, "[INFO] - msg\n"},
		{WarningLevel, "[WARNING] - msg\n"},
		{ErrorLevel, "[ERROR] - msg\n"},
		// The sink path emits the warning header for fatal messages;
		// this pins the historical behavior on purpose.
		{FatalLevel, "[WARNING] - msg\n"},
	}

	for _, tc := range cases {
		var sb strings.Builder
		require.NoError(t, Static.Log(tc.level, "msg", &sb))
		assert.Equal(t, tc.want, sb.String(), "level %v", tc.level)
	}
}

func TestStatic_LogFile_FatalHeaderDiffersFromSinkPath(t *testing.T) {
	resetStatic(t)
	logPath := filepath.Join(t.TempDir(), "fatal.log")

	var sb strings.Builder
	require.NoError(t, Static.Log(FatalLevel, "boom", &sb))
	require.NoError(t, Static.LogFile(FatalLevel, "boom", logPath, Truncate))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.Equal(t, "[WARNING] - boom\n", sb.String())
	assert.Equal(t, "[FATAL] - boom\n", string(content))
}

func TestStatic_DisabledLevelSkips(t *testing.T) {
	resetStatic(t)
	Static.SetEnabled(ErrorLevel, false)

	var sb strings.Builder
	require.NoError(t, Static.Log(ErrorLevel, "dropped", &sb))
	assert.Empty(t, sb.String())

	logPath := filepath.Join(t.TempDir(), "skip.log")
	require.NoError(t, Static.LogFile(ErrorLevel, "dropped", logPath, Truncate))
	_, statErr := os.Stat(logPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatic_EachLevelChecksOnlyItsOwnFlag(t *testing.T) {
	resetStatic(t)
	Static.SetEnabledAll(false)
	Static.SetEnabled(WarningLevel, true)

	var sb strings.Builder
	require.NoError(t, Static.Log(InfoLevel, "info", &sb))
	require.NoError(t, Static.Log(WarningLevel, "warn", &sb))
	require.NoError(t, Static.Log(ErrorLevel, "err", &sb))
	require.NoError(t, Static.Log(FatalLevel, "fatal", &sb))

	assert.Equal(t, "[WARNING] - warn\n", sb.String())
}

func TestStatic_NewlineSharedAcrossCalls(t *testing.T) {
	resetStatic(t)
	Static.SetNewline("\r\n")

	var sb strings.Builder
	require.NoError(t, Static.Log(InfoLevel, "a", &sb))
	require.NoError(t, Static.Log(ErrorLevel, "b", &sb))

	assert.Equal(t, "[INFO] - a\r\n[ERROR] - b\r\n", sb.String())
}

func TestStatic_LogFile_OpenFailure(t *testing.T) {
	resetStatic(t)
	invalidPath := filepath.Join(t.TempDir(), "missing-dir", "static.log")

	err := Static.LogFile(InfoLevel, "lost", invalidPath, Truncate)
	require.Error(t, err)
}

func TestStatic_LogFile_Append(t *testing.T) {
	resetStatic(t)
	logPath := filepath.Join(t.TempDir(), "static.log")

	require.NoError(t, Static.LogFile(InfoLevel, "one", logPath, Append))
	require.NoError(t, Static.LogFile(WarningLevel, "two", logPath, Append))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] - one\n[WARNING] - two\n", string(content))
}
