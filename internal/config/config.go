package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/utils"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "arrcompat"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	LOG_LEVEL_ENV_VARNAME   = "ARRCOMPAT_LOG_LEVEL"
	NO_COLOR_ENV_VARNAME    = "NO_COLOR"
	FORCE_COLOR_ENV_VARNAME = "FORCE_COLOR"

	DEFAULT_LOG_LEVEL = zerolog.InfoLevel
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")

	FORCE_COLOR           bool
	NO_COLOR              bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	SHOULD_COLORIZE       bool
)

func init() {
	targetSpecificInit()
}

// Options are the runtime switches of the compatibility notices and the settings of the CLI.
type Options struct {
	// master switch, no notice is raised if false.
	HackArrCompatNotices bool `yaml:"hack_arr_compat_notices"`

	// notices for comparisons between legacy arrays and modern containers.
	CheckCompare bool `yaml:"check_compare"`

	// notices for comparisons between containers and non-container values.
	CheckCompareNonAnyArray bool `yaml:"check_compare_non_any_array"`

	LogLevel string `yaml:"log_level"`

	// nil means auto-detection (SHOULD_COLORIZE).
	Color *bool `yaml:"color"`
}

func Default() Options {
	return Options{
		HackArrCompatNotices:    true,
		CheckCompare:            true,
		CheckCompareNonAnyArray: true,
		LogLevel:                DEFAULT_LOG_LEVEL.String(),
	}
}

// Load reads the configuration file at path, if path is empty the file is searched in the XDG
// configuration directories and the defaults are returned if there is none. Environment variables
// override the file.
func Load(path string) (Options, error) {
	opts := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
		if err == nil {
			path = found
		}
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Options{}, err
		}
		if err := yaml.UnmarshalWithOptions(content, &opts, yaml.Strict()); err != nil {
			return Options{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	opts.ApplyEnv(os.LookupEnv)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ApplyEnv overrides the log level and the colour setting with the environment variables.
func (o *Options) ApplyEnv(lookup func(string) (string, bool)) {
	if level, ok := lookup(LOG_LEVEL_ENV_VARNAME); ok && level != "" {
		o.LogLevel = level
	}

	if s, ok := lookup(FORCE_COLOR_ENV_VARNAME); ok && isTruthyEnvValue(s) {
		color := true
		o.Color = &color
	}

	//NO_COLOR wins over FORCE_COLOR
	if s, ok := lookup(NO_COLOR_ENV_VARNAME); ok && isTruthyEnvValue(s) {
		color := false
		o.Color = &color
	}
}

func isTruthyEnvValue(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}

func (o Options) Validate() error {
	var errs []error

	if _, err := o.ZerologLevel(); err != nil {
		errs = append(errs, err)
	}

	return utils.CombineErrorsWithPrefixMessage(ErrInvalidConfig.Error(), errs...)
}

func (o Options) ZerologLevel() (zerolog.Level, error) {
	if o.LogLevel == "" {
		return DEFAULT_LOG_LEVEL, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(o.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", o.LogLevel)
	}
	return level, nil
}

// EnabledVariants returns the variants whose notices are switched on.
func (o Options) EnabledVariants() []diag.Variant {
	enabled := []diag.Variant{}
	if !o.HackArrCompatNotices {
		return enabled
	}
	if o.CheckCompare {
		enabled = append(enabled, diag.HackArrayBoundary)
	}
	if o.CheckCompareNonAnyArray {
		enabled = append(enabled, diag.NonAnyArrayBoundary)
	}
	return enabled
}

// Gate returns a gate forwarding the events of the enabled variants to next.
func (o Options) Gate(next diag.Sink) *diag.Gate {
	gate := diag.NewGate(next)
	enabled := o.EnabledVariants()

	for _, variant := range diag.Variants {
		isEnabled := false
		for _, v := range enabled {
			if v == variant {
				isEnabled = true
			}
		}
		if !isEnabled {
			gate.Disable(variant)
		}
	}
	return gate
}

func (o Options) Colorize() bool {
	if o.Color != nil {
		return *o.Color
	}
	return SHOULD_COLORIZE
}
