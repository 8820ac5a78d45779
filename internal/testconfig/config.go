package testconfig

import (
	"os"
	"testing"
)

const (
	PARALLEL_TESTS_ENV_VARNAME = "ARRCOMPAT_PARALLEL_TESTS"
)

var (
	PARALLELIZE_SAME_PKG_TESTS = os.Getenv(PARALLEL_TESTS_ENV_VARNAME) == "1"
)

// AllowParallelization marks t as parallel if ARRCOMPAT_PARALLEL_TESTS is set to 1.
// Tests using the process-wide latches should not call it.
func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
