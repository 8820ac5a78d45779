package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/inoxlang/arrcompat/internal/arrsort"
	"github.com/inoxlang/arrcompat/internal/compare"
	"github.com/inoxlang/arrcompat/internal/config"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/dump"
	"github.com/inoxlang/arrcompat/internal/fixture"
	"github.com/inoxlang/arrcompat/internal/probe"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/muesli/termenv"
	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	NOTICE_LOG_LEVEL = zerolog.DebugLevel
)

// cliFlags are the persistent flags of the root command.
type cliFlags struct {
	json       bool
	configPath string
	color      string
	logLevel   string
}

// session is the state shared by the commands once the configuration is loaded.
type session struct {
	opts    config.Options
	logger  zerolog.Logger
	profile termenv.Profile
}

func newSession(flags *cliFlags, errW io.Writer) (*session, error) {
	opts, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		opts.LogLevel = flags.logLevel
	}

	switch flags.color {
	case COLOR_ALWAYS, COLOR_NEVER:
		color := flags.color == COLOR_ALWAYS
		opts.Color = &color
	case COLOR_AUTO, "":
	default:
		return nil, fmt.Errorf("invalid --%s value %q, expected one of %v", COLOR_FLAG, flags.color, COLOR_MODES)
	}

	level, err := opts.ZerologLevel()
	if err != nil {
		return nil, err
	}

	return &session{
		opts:    opts,
		logger:  diag.NewLogger(errW, level, true, opts.Colorize()),
		profile: opts.ColorProfile(),
	}, nil
}

// noticeSink logs the boundary crossings of the enabled variants.
func (s *session) noticeSink() diag.Sink {
	return s.opts.Gate(diag.NewLogSink(s.logger, NOTICE_LOG_LEVEL))
}

func newRootCommand(outW, errW io.Writer) *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           COMMAND_NAME,
		Short:         "replay legacy array / modern container comparison probes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(outW)
	root.SetErr(errW)

	persistent := root.PersistentFlags()
	persistent.BoolVar(&flags.json, JSON_FLAG, false, "write a JSON report instead of the text output")
	persistent.StringVar(&flags.configPath, CONFIG_FLAG, "", "path of the configuration file")
	persistent.StringVar(&flags.color, COLOR_FLAG, COLOR_AUTO, "colour mode: auto, always or never")
	persistent.StringVar(&flags.logLevel, LOG_LEVEL_FLAG, "", "log level (trace, debug, info, warn, error, disabled)")

	root.AddCommand(
		newMatrixCommand(flags, outW, errW),
		newProbeCommand(flags, outW, errW),
		newSortCommand(flags, outW, errW),
		newInstallCompletionsCommand(outW),
		newUninstallCompletionsCommand(outW),
	)
	return root
}

func newMatrixCommand(flags *cliFlags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   MATRIX_SUBCMD,
		Short: "run the built-in comparison matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, errW)
			if err != nil {
				return err
			}
			return s.runMatrix(probe.CompareFixtureMatrix(), flags.json, outW)
		},
	}
}

func newProbeCommand(flags *cliFlags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   PROBE_SUBCMD + " <file.yaml>",
		Short: "run the comparison matrix described by a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, errW)
			if err != nil {
				return err
			}
			matrix, err := fixture.LoadFile(args[0], s.logger)
			if err != nil {
				return err
			}
			return s.runMatrix(matrix, flags.json, outW)
		},
	}
}

func (s *session) runMatrix(matrix probe.Matrix, jsonOutput bool, outW io.Writer) error {
	harness := probe.NewHarness(probe.Options{
		Latches: diag.NewLatches(),
		Sinks:   []diag.Sink{diag.NewLogSink(s.logger, NOTICE_LOG_LEVEL)},
		Enabled: s.opts.EnabledVariants(),
	})

	rows := harness.Run(matrix)
	report := probe.NewReport(matrix.Name, rows)

	s.logger.Info().
		Str("matrix", matrix.Name).
		Str("run", report.RunID).
		Int("cases", len(rows)).
		Int("fired", report.Fired).
		Msg("matrix run")

	if jsonOutput {
		return report.WriteJSON(outW)
	}
	return probe.RenderWith(outW, rows, flagFormatter(s.profile))
}

// flagFormatter colours the fired flags in green and the others in red, nothing is coloured with the Ascii profile.
func flagFormatter(profile termenv.Profile) probe.FlagFormatter {
	if profile == termenv.Ascii {
		return probe.PlainFlag
	}
	firedStyle := termenv.String("T").Foreground(profile.Color("2"))
	notFiredStyle := termenv.String("F").Foreground(profile.Color("1"))

	return func(fired bool) string {
		if fired {
			return firedStyle.String()
		}
		return notFiredStyle.String()
	}
}

func newSortCommand(flags *cliFlags, outW, errW io.Writer) *cobra.Command {
	var (
		sortFlag string
		byKey    bool
		reverse  bool
	)

	cmd := &cobra.Command{
		Use:   SORT_SUBCMD + " <file.yaml>",
		Short: "sort the legacy arrays of the value groups of a YAML file and dump them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flag, err := arrsort.ParseFlag(sortFlag)
			if err != nil {
				return err
			}

			s, err := newSession(flags, errW)
			if err != nil {
				return err
			}

			groups, err := fixture.LoadValueGroupsFile(args[0], s.logger)
			if err != nil {
				return err
			}

			sorter := arrsort.NewSorter(compare.New(s.noticeSink()))

			names := make([]string, 0, len(groups))
			for name := range groups {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				fmt.Fprintf(outW, "# %s\n", name)

				for _, v := range groups[name] {
					arr, ok := v.(*value.LegacyArray)
					if !ok {
						continue
					}
					var sorted *value.LegacyArray
					switch {
					case byKey && reverse:
						sorted = sorter.KRSort(arr, flag)
					case byKey:
						sorted = sorter.KSort(arr, flag)
					case reverse:
						sorted = sorter.ARSort(arr, flag)
					default:
						sorted = sorter.ASort(arr, flag)
					}
					if err := dump.Dump(outW, sorted); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, SORT_FLAG_FLAG, "regular", "sort flag: regular, numeric, string or natural")
	cmd.Flags().BoolVar(&byKey, BY_KEY_FLAG, false, "sort by key")
	cmd.Flags().BoolVar(&reverse, REVERSE_FLAG, false, "sort in reverse order")
	return cmd
}

func newInstallCompletionsCommand(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   INSTALL_COMPLETIONS_SUBCMD,
		Short: "install CLI completions by adding the completion command to the detected rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := install.Install(COMMAND_NAME); err != nil {
				return err
			}
			fmt.Fprintln(outW, "installed")
			return nil
		},
	}
}

func newUninstallCompletionsCommand(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   UNINSTALL_COMPLETIONS_SUBCMD,
		Short: "uninstall CLI completions by removing the completion command from the detected rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := install.Uninstall(COMMAND_NAME); err != nil {
				return err
			}
			fmt.Fprintln(outW, "uninstalled")
			return nil
		},
	}
}
