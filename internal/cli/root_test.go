package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/state"
)

// setup writes a config with logging disabled so no test touches the
// user's directories.
func setup(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	content := "[logging]\nlevel = \"disabled\"\n" + extra
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	return cfg
}

func runOptions(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"options"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func optionLine(out, name string) []string {
	for line := range strings.SplitSeq(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 3 && fields[0] == name {
			return fields
		}
	}
	return nil
}

func TestOptionsCmd_Defaults(t *testing.T) {
	cfg := setup(t, "")

	out, err := runOptions(t, "--config", cfg, "--no-state")
	require.NoError(t, err)

	assert.Contains(t, out, "deck android (14 cards)")
	assert.Equal(t, []string{carousel.OptHeight, "7", "config"}, optionLine(out, carousel.OptHeight))
	assert.Equal(t, []string{carousel.OptAnimationDuration, "1s", "config"}, optionLine(out, carousel.OptAnimationDuration))
}

func TestOptionsCmd_ConfigAndFlags(t *testing.T) {
	cfg := setup(t, "[carousel]\nheight = 9\ntouch_distance = 6\n")

	out, err := runOptions(t, "--config", cfg, "--no-state", "--height", "5", "--no-transitions")
	require.NoError(t, err)

	assert.Equal(t, []string{carousel.OptHeight, "5", "flag"}, optionLine(out, carousel.OptHeight))
	assert.Equal(t, []string{carousel.OptNoTransitions, "true", "flag"}, optionLine(out, carousel.OptNoTransitions))
	assert.Equal(t, []string{carousel.OptTouchDistance, "6", "config"}, optionLine(out, carousel.OptTouchDistance))
}

func TestOptionsCmd_SavedOptions(t *testing.T) {
	cfg := setup(t, "")
	dbPath := filepath.Join(t.TempDir(), "state.db")

	mgr, err := state.OpenPath(dbPath)
	require.NoError(t, err)
	require.NoError(t, mgr.SaveOptions("builtin:android", map[string]string{
		carousel.OptHideNavigation: "true",
		carousel.OptHeight:         "11",
	}))
	require.NoError(t, mgr.Close())

	out, err := runOptions(t, "--config", cfg, "--state-file", dbPath, "--height", "4")
	require.NoError(t, err)

	assert.Equal(t, []string{carousel.OptHideNavigation, "true", "saved"}, optionLine(out, carousel.OptHideNavigation))
	assert.Equal(t, []string{carousel.OptHeight, "4", "flag"}, optionLine(out, carousel.OptHeight))
}

func TestOptionsCmd_Deck(t *testing.T) {
	cfg := setup(t, "")
	deckPath := filepath.Join(t.TempDir(), "fruit.txt")
	require.NoError(t, os.WriteFile(deckPath, []byte("Apple\nBanana\nCherry\n"), 0o600))

	out, err := runOptions(t, "--config", cfg, "--no-state", "--deck", deckPath)
	require.NoError(t, err)
	assert.Contains(t, out, "deck fruit (3 cards)")
}

func TestOptionsCmd_Errors(t *testing.T) {
	cfg := setup(t, "")

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid height flag",
			args:    []string{"--config", cfg, "--no-state", "--height", "0"},
			wantErr: carousel.ErrInvalidOption,
			wantMsg: "--height",
		},
		{
			name:    "missing config",
			args:    []string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "--no-state"},
			wantErr: os.ErrNotExist,
			wantMsg: "load configuration",
		},
		{
			name:    "missing deck",
			args:    []string{"--config", cfg, "--no-state", "--deck", filepath.Join(t.TempDir(), "nope.txt")},
			wantErr: os.ErrNotExist,
			wantMsg: "load deck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runOptions(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd("1.2.3")
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, of := range optionFlags {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(of.flag), of.flag)
		assert.Contains(t, carousel.OptionNames, of.option)
	}

	stateFlag := cmd.PersistentFlags().Lookup(flagStateFile)
	require.NotNil(t, stateFlag)
	assert.True(t, stateFlag.Hidden)
}
