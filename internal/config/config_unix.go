//go:build unix

package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	UNIX = true
)

var (
	// set if SHOULD_COLORIZE
	COLOR_PROFILE = termenv.Ascii
)

func targetSpecificInit() {
	// FORCE COLOR

	if s, ok := os.LookupEnv(FORCE_COLOR_ENV_VARNAME); ok {
		FORCE_COLOR = isTruthyEnvValue(s)
	}

	//TERMCOLOR

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"

	//NO_COLOR

	if s, ok := os.LookupEnv(NO_COLOR_ENV_VARNAME); ok {
		NO_COLOR = isTruthyEnvValue(s)
	}

	//TERM

	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") {
		TERM_256COLOR_CAPABLE = true
	}

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)

	if SHOULD_COLORIZE {
		COLOR_PROFILE = termenv.EnvColorProfile()
		if COLOR_PROFILE == termenv.Ascii {
			COLOR_PROFILE = termenv.ANSI
		}
	}
}

// ColorProfile returns the profile to use for coloured output, termenv.Ascii disables colours.
func (o Options) ColorProfile() termenv.Profile {
	if !o.Colorize() {
		return termenv.Ascii
	}
	if COLOR_PROFILE == termenv.Ascii {
		return termenv.ANSI
	}
	return COLOR_PROFILE
}
