package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey-austin/showcase/internal/core"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	buf := &bytes.Buffer{}
	root := newRootCommand(buf)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return buf.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := run(t, "--quiet", "print", "10", "20.24", "text")
	require.NoError(t, err)
	assert.Equal(t, "size of args3\n10\n20.24\ntext\n10 20.24 text \n", out)
}

func TestPrintCommandNoValues(t *testing.T) {
	out, err := run(t, "-q", "print")
	require.NoError(t, err)
	assert.Equal(t, "size of args0\n \n", out)
}

func TestPrintCommandRaw(t *testing.T) {
	out, err := run(t, "-q", "print", "--raw", "007", "1e3")
	require.NoError(t, err)
	assert.Equal(t, "size of args2\n007\n1e3\n007 1e3 \n", out)
}

func TestPrintCommandNegativeValuesAfterDoubleDash(t *testing.T) {
	out, err := run(t, "-q", "print", "--", "-5", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "size of args2\n-5\n2.5\n-5 2.5 \n", out)
}

func TestPrintCommandNegativeValueWithoutDoubleDashIsUsageError(t *testing.T) {
	_, err := run(t, "-q", "print", "-5")
	require.Error(t, err)
	assert.Equal(t, core.ExitUsage, core.ExitCode(err))
}

func TestPrintCommandDigits(t *testing.T) {
	out, err := run(t, "-q", "--digits", "2", "print", "3.14159")
	require.NoError(t, err)
	assert.Equal(t, "size of args1\n3.1\n3.1 \n", out)
}

func TestVariadicCommandWithHeading(t *testing.T) {
	out, err := run(t, "--no-color", "variadic")
	require.NoError(t, err)
	assert.Equal(t, "variadic\n────────\n11\n110.189\nmaa\nsize of args3\n10\n20.24\ntext\n10 20.24 text \n", out)
}

func TestDispatchCommandJSON(t *testing.T) {
	out, err := run(t, "--json", "dispatch")
	require.NoError(t, err)

	var result core.DemoResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, core.DemoDispatch, result.Name)
	assert.Contains(t, result.Lines, "Override.Dynamic")
	assert.Contains(t, result.Lines, "Shadow.Static 0")
}

func TestThreadsCommandFlags(t *testing.T) {
	out, err := run(t, "-q", "threads", "--id", "7", "--name", "Ada", "--series", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: 7\nName: Ada\n")
	assert.Contains(t, out, "vec2:2\nvec2:4\n")
}

func TestThreadsCommandRejectsBadSeries(t *testing.T) {
	_, err := run(t, "threads", "--series", "1,x")
	require.Error(t, err)
	assert.Equal(t, core.ExitUsage, core.ExitCode(err))
}

func TestAllCommandParallelJSON(t *testing.T) {
	out, err := run(t, "-j", "all", "--parallel")
	require.NoError(t, err)

	var result core.AllResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Demos, 3)
	assert.Equal(t, core.DemoThreads, result.Demos[2].Name)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[threads]\nrecord_name = \"Grace\"\nseries = [3.0]\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := run(t, "-q", "--config", path, "threads")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: Grace\n")
	assert.Contains(t, out, "vec2:6\n")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := run(t, "print", "--bogus")
	require.Error(t, err)
	assert.Equal(t, core.ExitUsage, core.ExitCode(err))
}

func TestBadLogFormat(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "dispatch")
	require.Error(t, err)
	assert.Equal(t, core.ExitUsage, core.ExitCode(err))
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "dispatch")
	require.Error(t, err)
	assert.Equal(t, core.ExitConfig, core.ExitCode(err))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"10", int64(10)},
		{"-3", int64(-3)},
		{"20.24", 20.24},
		{"1e3", 1000.0},
		{"true", true},
		{"false", false},
		{"t", "t"},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"text", "text"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in, false), tt.in)
	}
	assert.Equal(t, "10", parseValue("10", true))
	assert.Equal(t, []any{}, parseValues(nil, false))
}
