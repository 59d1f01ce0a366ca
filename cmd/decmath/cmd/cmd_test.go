package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath/internal/config"
)

// run executes a fresh decmath command tree with args and returns its
// standard and error outputs.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPrecision, "")
	t.Setenv(config.EnvRounding, "")
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-p", "20", "eval", "pi"}, "3.1415926535897932385\n"},
		{[]string{"eval", "-p", "10", "sin", "1"}, "0.8414709848\n"},
		{[]string{"--prec=20", "eval", "atan2", "-1", "-1"}, "-2.3561944901923449288\n"},
		{[]string{"-p", "5", "--rounding", "down", "eval", "pi"}, "3.1415\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCeval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-p", "16", "ceval", "div", "3+4i", "1+2i"}, "(2.2-0.4i)\n"},
		{[]string{"ceval", "sqrt", "-4"}, "(0+2i)\n"},
		{[]string{"-p", "10", "ceval", "exp", "i"}, "(0.5403023059+0.8414709848i)\n"},
		{[]string{"ceval", "conj", "(1-2i)"}, "(1+2i)\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"eval", "cbrt", "8"},
		{"eval", "sin"},
		{"eval", "asin", "2"},
		{"ceval", "log", "0"},
		{"ceval", "div", "1", "0"},
		{"--rounding", "sideways", "eval", "pi"},
		{"-p", "5000", "eval", "pi"},
		{"--config", "does-not-exist.toml", "eval", "pi"},
		{"eval"},
	} {
		_, errOut, err := run(t, args...)
		assert.Error(t, err, args)
		assert.Contains(t, errOut, "Error:", args)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decmath.toml")
	require.NoError(t, os.WriteFile(path, []byte("precision = 12\nrounding = \"up\"\n"), 0o600))

	out, _, err := run(t, "--config", path, "eval", "pi")
	require.NoError(t, err)
	assert.Equal(t, "3.14159265359\n", out)

	// flags take precedence over the file
	out, _, err = run(t, "--config", path, "-p", "3", "eval", "pi")
	require.NoError(t, err)
	assert.Equal(t, "3.15\n", out)
}

func TestVerbose(t *testing.T) {
	_, errOut, err := run(t, "-v", "eval", "e")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration")
	assert.Contains(t, errOut, "func=e")

	_, errOut, err = run(t, "eval", "e")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestSmoke(t *testing.T) {
	for _, prec := range []string{"20", "32", "60"} {
		out, errOut, err := run(t, "-p", prec, "smoke")
		require.NoError(t, err, errOut)
		assert.NotContains(t, out, "FAIL")
		assert.Contains(t, out, "(3+4i) / (1+2i): (2.2-0.4i)  ok")
		assert.Equal(t, len(smokeSteps), strings.Count(out, "\n"))
	}
}

func TestSmokeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decmath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 10\nrel_tol: 1e-30\n"), 0o600))

	out, _, err := run(t, "--config", path, "smoke")
	assert.Error(t, err)
	assert.Contains(t, out, "FAIL")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "decmath "+Version+" "), out)
}
