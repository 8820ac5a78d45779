package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	MATRIX_SUBCMD                = "matrix"
	PROBE_SUBCMD                 = "probe"
	SORT_SUBCMD                  = "sort"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"

	JSON_FLAG      = "json"
	CONFIG_FLAG    = "config"
	COLOR_FLAG     = "color"
	LOG_LEVEL_FLAG = "log-level"
	SORT_FLAG_FLAG = "flag"
	BY_KEY_FLAG    = "by-key"
	REVERSE_FLAG   = "reverse"

	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)

var (
	SUBCOMMANDS = []string{
		MATRIX_SUBCMD, PROBE_SUBCMD, SORT_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	COLOR_MODES = []string{COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER}
	LOG_LEVELS  = []string{"trace", "debug", "info", "warn", "error", "disabled"}

	commonFlags = map[string]complete.Predictor{
		JSON_FLAG:      predict.Nothing,
		CONFIG_FLAG:    predict.Files("*.yaml"),
		COLOR_FLAG:     predict.Set(COLOR_MODES),
		LOG_LEVEL_FLAG: predict.Set(LOG_LEVELS),
	}

	completionCmd = &complete.Command{
		Sub: map[string]*complete.Command{
			MATRIX_SUBCMD: {
				Flags: commonFlags,
			},
			PROBE_SUBCMD: {
				Flags: commonFlags,
				Args:  predict.Files("*.yaml"),
			},
			SORT_SUBCMD: {
				Flags: map[string]complete.Predictor{
					CONFIG_FLAG:    predict.Files("*.yaml"),
					LOG_LEVEL_FLAG: predict.Set(LOG_LEVELS),
					SORT_FLAG_FLAG: predict.Set{"regular", "numeric", "string", "natural"},
					BY_KEY_FLAG:    predict.Nothing,
					REVERSE_FLAG:   predict.Nothing,
				},
				Args: predict.Files("*.yaml"),
			},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {},
		},
	}
)
