package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := newRootCmd(&logs)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestSetVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "plan", "variants"})

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestVariantsCommand(t *testing.T) {
	out, _, err := execute(t, "variants")
	require.NoError(t, err)

	assert.Contains(t, out, "fadeInUp")
	assert.Contains(t, out, "fadeIn")
	assert.Contains(t, out, "staggerContainer")
	assert.Contains(t, out, "0.20s")
	assert.Contains(t, out, "opacity 0, y 60")
}

func TestPlanCommand(t *testing.T) {
	out, _, err := execute(t, "plan", "--duration", "3s", "--fps", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "Reveal timeline")
	assert.Contains(t, out, "story")
	assert.Contains(t, out, "gallery")
	assert.Contains(t, out, "every block revealed")
}

func TestPlanCommandVerboseLogs(t *testing.T) {
	_, logs, err := execute(t, "plan", "-v", "--duration", "1s", "--fps", "20")
	require.NoError(t, err)
	assert.Contains(t, logs, "simulation finished")
}

func TestPlanCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sections]
gallery = false
`), 0o644))

	out, _, err := execute(t, "plan", "--config", path, "--duration", "2s")
	require.NoError(t, err)
	assert.Contains(t, out, "story")
	assert.NotContains(t, out, "gallery")
}

func TestPlanCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sections]
rsvp = true
`), 0o644))

	_, _, err := execute(t, "plan", "--config", path)
	assert.Error(t, err)
}
