package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/inoxlang/arrcompat/internal/config"
	"github.com/inoxlang/arrcompat/internal/probe"
	"github.com/inoxlang/arrcompat/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup isolates the command from the environment and returns the path of a configuration file.
func setup(t *testing.T, configContent string) string {
	t.Setenv(config.LOG_LEVEL_ENV_VARNAME, "")
	t.Setenv(config.NO_COLOR_ENV_VARNAME, "")
	t.Setenv(config.FORCE_COLOR_ENV_VARNAME, "")

	path := filepath.Join(t.TempDir(), config.CONFIG_FILE_NAME)
	require.NoError(t, os.WriteFile(path, []byte(configContent), 0o600))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(args ...string) (statusCode int, out string, errOut string) {
	outW := bytes.NewBuffer(nil)
	errW := bytes.NewBuffer(nil)
	statusCode = _main(append([]string{COMMAND_NAME}, args...), outW, errW)
	return statusCode, outW.String(), errW.String()
}

func TestMatrixCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		configPath := setup(t, "log_level: info\n")

		statusCode, out, errOut := run(MATRIX_SUBCMD, "--color", COLOR_NEVER, "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		assert.Equal(t, 108, strings.Count(out, probe.ROW_HEADER+"\n"))
		assert.Equal(t, 108, strings.Count(out, probe.ROW_FOOTER+"\n"))
		assert.Contains(t, out, "array(0) {\n}\nbool(true)\nT T T T T T T F F\n")
		assert.Contains(t, out, "NULL\nNULL\nF F F F F F F F F\n")
		assert.NotContains(t, out, "\x1b[")

		assert.Contains(t, errOut, "matrix run")
		assert.Contains(t, errOut, probe.COMPARE_FIXTURE_MATRIX_NAME)
	})

	t.Run("coloured output", func(t *testing.T) {
		configPath := setup(t, "log_level: error\n")

		statusCode, out, errOut := run(MATRIX_SUBCMD, "--color", COLOR_ALWAYS, "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, utils.StripANSISequences(out), "NULL\nNULL\nF F F F F F F F F\n")
		assert.NotContains(t, errOut, "matrix run")
	})

	t.Run("JSON report", func(t *testing.T) {
		configPath := setup(t, "log_level: error\n")

		statusCode, out, errOut := run(MATRIX_SUBCMD, "--json", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		var report probe.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, probe.COMPARE_FIXTURE_MATRIX_NAME, report.Matrix)
		assert.Len(t, report.Rows, 108)
		assert.Len(t, report.RunID, 26)
		assert.Positive(t, report.Fired)
	})

	t.Run("notices switched off", func(t *testing.T) {
		configPath := setup(t, "hack_arr_compat_notices: false\nlog_level: error\n")

		statusCode, out, errOut := run(MATRIX_SUBCMD, "--json", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		var report probe.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Zero(t, report.Fired)
	})

	t.Run("notices are logged at the debug level", func(t *testing.T) {
		configPath := setup(t, "check_compare_non_any_array: false\n")

		statusCode, _, errOut := run(MATRIX_SUBCMD, "--color", COLOR_NEVER, "--log-level", "debug", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		assert.Contains(t, errOut, "Comparing PHP array with Hack array")
		assert.NotContains(t, errOut, "Comparing PHP array with non any-array")
	})

	t.Run("invalid colour mode", func(t *testing.T) {
		configPath := setup(t, "")

		statusCode, _, errOut := run(MATRIX_SUBCMD, "--color", "sometimes", "--config", configPath)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errOut, "invalid --color value")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		configPath := setup(t, "unknown_field: 1\n")

		statusCode, _, errOut := run(MATRIX_SUBCMD, "--config", configPath)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errOut, config.ErrInvalidConfig.Error())
	})
}

func TestProbeCommand(t *testing.T) {
	configPath := setup(t, "log_level: error\n")

	fixturePath := writeFile(t, "probes.yaml", `
values:
  legacy:
    - !array []
  modern:
    - !vec []
probes:
  - left: legacy
    right: modern
    both_orders: true
`)

	t.Run("text output", func(t *testing.T) {
		statusCode, out, errOut := run(PROBE_SUBCMD, fixturePath, "--color", COLOR_NEVER, "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		expected := probe.ROW_HEADER + "\n" +
			"array(0) {\n}\n" +
			"vec(0) {\n}\n" +
			"T T T T T T T F F\n" +
			probe.ROW_FOOTER + "\n" +
			probe.ROW_HEADER + "\n" +
			"vec(0) {\n}\n" +
			"array(0) {\n}\n" +
			"T T T T T T T F F\n" +
			probe.ROW_FOOTER + "\n"
		assert.Equal(t, expected, out)
	})

	t.Run("the matrix is named after the file", func(t *testing.T) {
		statusCode, out, errOut := run(PROBE_SUBCMD, fixturePath, "--json", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		var report probe.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "probes", report.Matrix)
		assert.Equal(t, 2, report.Fired)
	})

	t.Run("missing argument", func(t *testing.T) {
		statusCode, _, _ := run(PROBE_SUBCMD, "--config", configPath)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
	})

	t.Run("invalid fixture", func(t *testing.T) {
		invalidPath := writeFile(t, "invalid.yaml", "name: x\n")

		statusCode, _, errOut := run(PROBE_SUBCMD, invalidPath, "--config", configPath)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errOut, "invalid fixture")
	})
}

func TestSortCommand(t *testing.T) {
	configPath := setup(t, "log_level: error\n")

	valuesPath := writeFile(t, "values.yaml", `
values:
  b:
    - !array {x: 2, y: 1}
    - not an array
  a:
    - !array [img10, img2]
`)

	t.Run("by value", func(t *testing.T) {
		statusCode, out, errOut := run(SORT_SUBCMD, valuesPath, "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)

		expected := "# a\n" +
			"array(2) {\n" +
			"  [0]=>\n" +
			"  string(5) \"img10\"\n" +
			"  [1]=>\n" +
			"  string(4) \"img2\"\n" +
			"}\n" +
			"# b\n" +
			"array(2) {\n" +
			"  [\"y\"]=>\n" +
			"  int(1)\n" +
			"  [\"x\"]=>\n" +
			"  int(2)\n" +
			"}\n"
		assert.Equal(t, expected, out)
	})

	t.Run("natural flag", func(t *testing.T) {
		statusCode, out, errOut := run(SORT_SUBCMD, valuesPath, "--flag", "natural", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)
		assert.Contains(t, out, "# a\narray(2) {\n  [1]=>\n  string(4) \"img2\"\n  [0]=>\n  string(5) \"img10\"\n}\n")
	})

	t.Run("by key in reverse order", func(t *testing.T) {
		statusCode, out, errOut := run(SORT_SUBCMD, valuesPath, "--by-key", "--reverse", "--config", configPath)
		require.Equal(t, 0, statusCode, errOut)
		assert.Contains(t, out, "# b\narray(2) {\n  [\"y\"]=>\n  int(1)\n  [\"x\"]=>\n  int(2)\n}\n")
		assert.Contains(t, out, "# a\narray(2) {\n  [1]=>\n")
	})

	t.Run("unknown flag value", func(t *testing.T) {
		statusCode, _, errOut := run(SORT_SUBCMD, valuesPath, "--flag", "locale", "--config", configPath)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errOut, "unknown sort flag")
	})
}

func TestUnknownCommand(t *testing.T) {
	statusCode, out, errOut := run("frobnicate")
	assert.Equal(t, ERROR_STATUS_CODE, statusCode)
	assert.Empty(t, out)
	assert.Equal(t, "unknown command 'frobnicate'\n", errOut)
}
