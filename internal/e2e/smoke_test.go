package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runNova(t, binaryPath, home, "", "features", "install", "device", "control")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "installed control_device")

	stdout, stderr, err = runNova(t, binaryPath, home, "", "features", "run", "control_device", "light", "on")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "light on successfully\n", stdout)

	stdout, stderr, err = runNova(t, binaryPath, home, "menu\nremind me to water plants at 23:59\nexit\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Installed features: control_device.")
	assert.Contains(t, stdout, "Farewell!")

	logData, err := os.ReadFile(filepath.Join(home, ".config", "nova", "nova_log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"msg":"scheduled reminder"`)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "nova-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/nova")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build nova binary: %s", string(output))
	return binaryPath
}

func runNova(t *testing.T, binaryPath, home, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
