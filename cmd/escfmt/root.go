package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pkt.systems/escfmt/ansi"
)

// newRootCmd builds the escfmt command. Environment variables read through
// lookup seed the flag defaults.
func newRootCmd(lookup lookupFunc) *cobra.Command {
	cfg := configFromEnv(defaultEnvPrefix, lookup)
	var listPalettes bool

	root := &cobra.Command{
		Use:   "escfmt [flags] [file ...]",
		Short: "escfmt - print bytes as printable ASCII with backslash escapes",
		Long: `escfmt writes its input with every non-printable byte escaped:
tab, carriage return and line feed become \t, \r and \n, backslash and quotes
are backslashed, and any other byte outside 0x20-0x7e becomes \xHH.

Input is read from the named files, or from standard input when no file or
"-" is given. With --string the arguments themselves are escaped.

Environment: ESCFMT_COLOR, ESCFMT_NEWLINE, ESCFMT_PALETTE, ESCFMT_LINES,
ESCFMT_OUTPUT and ESCFMT_LOG_LEVEL set flag defaults; NO_COLOR disables
automatic colour.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if listPalettes {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ansi.AvailablePaletteNames(), "\n"))
				return nil
			}
			out, err := resolveOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				log.Error().Err(err).Msg("escfmt.output.failed")
				return err
			}
			runErr := run(cmd, cfg, args, out, log)
			if closeErr := closeOutput(out); closeErr != nil && runErr == nil {
				runErr = fmt.Errorf("close output: %w", closeErr)
			}
			if runErr != nil {
				log.Error().Err(runErr).Msg("escfmt.failed")
			}
			return runErr
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&cfg.Literal, "string", "s", cfg.Literal, "escape the arguments themselves instead of reading files")
	flags.BoolVarP(&cfg.Lines, "lines", "l", cfg.Lines, "keep line feeds as real line breaks")
	flags.VarP(&cfg.Color, "color", "c", "highlight escape sequences (auto: when stdout is a terminal)")
	flags.VarP(&cfg.Newline, "newline", "n", "append a line feed after each input (auto: when stdout is a terminal)")
	flags.StringVarP(&cfg.Palette, "palette", "p", cfg.Palette, "highlight palette name")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "stdout, stderr, a file path, or stdout+<path> to tee")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level (trace, debug, info, warn, error, disabled)")
	flags.BoolVar(&listPalettes, "list-palettes", false, "list highlight palettes and exit")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		flagLog := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		flagLog.Error().Err(err).Msg("escfmt.flags.invalid")
		return err
	})
	return root
}

func run(cmd *cobra.Command, cfg config, args []string, out io.Writer, log zerolog.Logger) error {
	e, err := newEscaper(cfg, out, isTerminal(out), log)
	if err != nil {
		return err
	}
	if cfg.Literal {
		return e.escapeLiteral(args)
	}
	return e.escapeFiles(args, cmd.InOrStdin())
}
