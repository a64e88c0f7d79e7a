package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type flags struct {
	dir     string
	preview int
	verbose bool
	level   zapcore.Level
}

func newCommand(t *testing.T, f *flags) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{
		Use:  "flowdump",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	err := BindOptions(NewViper("flowdump"), cmd, []Opt{
		NewOpt(&f.dir, "dir", ".", "dataset directory"),
		NewOpt(&f.preview, "preview", 3, "preview limit"),
		NewOpt(&f.verbose, "verbose", nil, "verbose"),
		NewOpt(&f.level, "log-level", zapcore.InfoLevel, "log level"),
	})
	require.NoError(t, err)
	return cmd
}

func TestBindOptionsDefaults(t *testing.T) {
	var f flags
	cmd := newCommand(t, &f)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, flags{dir: ".", preview: 3, level: zapcore.InfoLevel}, f)
}

func TestBindOptionsEnv(t *testing.T) {
	t.Setenv("FLOWDUMP_DIR", "/data/study")
	t.Setenv("FLOWDUMP_PREVIEW", "5")
	t.Setenv("FLOWDUMP_LOG_LEVEL", "debug")

	var f flags
	cmd := newCommand(t, &f)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "/data/study", f.dir)
	assert.Equal(t, 5, f.preview)
	assert.Equal(t, zapcore.DebugLevel, f.level)
}

func TestBindOptionsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("FLOWDUMP_PREVIEW", "5")

	var f flags
	cmd := newCommand(t, &f)
	cmd.SetArgs([]string{"--preview", "7", "--verbose", "--log-level", "warn"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 7, f.preview)
	assert.True(t, f.verbose)
	assert.Equal(t, zapcore.WarnLevel, f.level)
}

func TestBindOptionsBadLevel(t *testing.T) {
	t.Setenv("FLOWDUMP_LOG_LEVEL", "loud")

	var level zapcore.Level
	err := BindOptions(NewViper("flowdump"), &cobra.Command{Use: "x"}, []Opt{
		NewOpt(&level, "log-level", zapcore.InfoLevel, "log level"),
	})
	require.Error(t, err)
}

func TestBindOptionsBadEnvValue(t *testing.T) {
	tests := []struct {
		name, env, value string
	}{
		{"non-numeric preview", "FLOWDUMP_PREVIEW", "abc"},
		{"fractional preview", "FLOWDUMP_PREVIEW", "2.5"},
		{"non-boolean verbose", "FLOWDUMP_VERBOSE", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			var f flags
			err := BindOptions(NewViper("flowdump"), &cobra.Command{Use: "x"}, []Opt{
				NewOpt(&f.preview, "preview", 3, "preview limit"),
				NewOpt(&f.verbose, "verbose", nil, "verbose"),
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}

func TestBindOptionsUnknownType(t *testing.T) {
	var f float32
	err := BindOptions(NewViper("x"), &cobra.Command{Use: "x"}, []Opt{NewOpt(&f, "ratio", nil, "")})
	require.Error(t, err)
}
