package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/miretskiy/dtypes/dtype"
	"github.com/miretskiy/dtypes/internal/log"
)

// run executes the inspector with args in an isolated HOME and returns
// stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(log.Reset)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_Text(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	for _, d := range dtype.Values() {
		require.Contains(t, out, d.String())
	}
	require.Contains(t, out, "0x00040005")
	require.Contains(t, out, "16-bit brain floating point")
}

func TestList_JSON(t *testing.T) {
	out, _, err := run(t, "list", "--format", "json")
	require.NoError(t, err)

	var recs []record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, len(dtype.Values()))
	require.Equal(t, dtype.BOOL, recs[0].DType)
	require.False(t, recs[0].Int)
	require.False(t, recs[0].Float)
}

func TestList_FamilyFilter(t *testing.T) {
	out, _, err := run(t, "list", "--family", "hybrid_float", "-f", "yaml")
	require.NoError(t, err)

	var recs []record
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	require.Equal(t, dtype.HF4, recs[0].DType)
	require.Equal(t, dtype.HF8, recs[1].DType)
	require.True(t, recs[1].Float)
	require.Equal(t, 8, recs[1].Bits)

	_, _, err = run(t, "list", "--family", "complex")
	require.ErrorIs(t, err, dtype.ErrUnknownFamily)
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "INT4", "UINT8", "--format", "json")
	require.NoError(t, err)

	var recs []record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	require.Equal(t, 4, recs[0].Bits)
	require.True(t, recs[0].SignedInt)
	require.True(t, recs[1].UnsignedInt)
	require.True(t, recs[1].Int)
	require.Equal(t, "unsigned_int", recs[1].Family)

	_, _, err = run(t, "inspect", "int4")
	require.ErrorIs(t, err, dtype.ErrUnknownName)

	_, _, err = run(t, "inspect")
	require.Error(t, err)
}

func TestSize(t *testing.T) {
	out, _, err := run(t, "size", "INT4", "3")
	require.NoError(t, err)
	require.Equal(t, "3 x INT4 (4 bits) = 2 bytes\n", out)

	out, _, err = run(t, "size", "FP32", "10", "--format", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"dtype":"FP32","count":10,"bits":32,"bytes":40}`, out)

	_, _, err = run(t, "size", "FP32", "--", "-1")
	require.ErrorIs(t, err, dtype.ErrNegativeCount)

	_, _, err = run(t, "size", "FP32", "lots")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	out, _, err := run(t, "--config", path, "size", "BOOL", "2")
	require.NoError(t, err)
	require.JSONEq(t, `{"dtype":"BOOL","count":2,"bits":8,"bytes":2}`, out)

	// Flags win over the file.
	out, _, err = run(t, "--config", path, "--format", "text", "size", "BOOL", "2")
	require.NoError(t, err)
	require.Equal(t, "2 x BOOL (8 bits) = 2 bytes\n", out)
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("DTYPES_FORMAT", "yaml")
	out, _, err := run(t, "size", "HF4", "5")
	require.NoError(t, err)
	require.Contains(t, out, "dtype: HF4")
	require.Contains(t, out, "bytes: 3")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "--format", "xml", "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	_, _, err := run(t, "--debug", "--log-file", logPath, "inspect", "BF16")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [registry] Lookup name=BF16")

	_, stderr, err := run(t, "--debug", "list")
	require.NoError(t, err)
	require.Contains(t, stderr, "[DEBUG] [config] Configuration loaded")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dtypes", "config.yaml")
	out, _, err := run(t, "config-init", path)
	require.NoError(t, err)
	require.Equal(t, "wrote "+path+"\n", out)

	out, _, err = run(t, "--config", path, "size", "UINT4", "4")
	require.NoError(t, err)
	require.Equal(t, "4 x UINT4 (4 bits) = 2 bytes\n", out)
}

func TestConfigInitHonorsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	_, stderr, err := run(t, "--debug", "config-init", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "[DEBUG] [config] Writing default config")
	require.Contains(t, stderr, "[INFO] [config] Created default config")

	// Overwriting is allowed but logged.
	_, stderr, err = run(t, "--debug", "config-init", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "[WARN] [config] Overwriting existing config")

	t.Setenv("DTYPES_DEBUG", "true")
	logPath := filepath.Join(t.TempDir(), "debug.log")
	_, _, err = run(t, "--log-file", logPath, "config-init", filepath.Join(t.TempDir(), "d.yaml"))
	require.NoError(t, err)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "Writing default config")
	require.Contains(t, string(data), "[DEBUG] [cli] Command finished command=config-init")
}
