// Command battleship runs a two-player hotseat Battleship game in the terminal.
//
// It supports three commands:
//  1. "play" (default) – places both fleets and plays the match on stdin/stdout
//  2. "layouts" – lists the fleet presets found in the layout directory
//  3. "validate" – checks layout files and exits non-zero if any is invalid
//
// Flags and environment variables (optionally loaded from .env) control the
// layout directory and logging.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/battleship-game/game/config"
	"github.com/wricardo/battleship-game/game/console"
	"github.com/wricardo/battleship-game/game/session"
	"github.com/wricardo/battleship-game/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "battleship"
)

var errInvalidLayouts = errors.New("some layouts have errors")

// main loads .env, wires signal handling and runs the CLI.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nGame interrupted")
			os.Exit(130)
		}
		log.Error().Err(err).Msg("battleship failed")
		os.Exit(1)
	}
}

// newApp builds the command tree reading from in and writing to out
func newApp(in io.Reader, out io.Writer) *cli.Command {
	play := &cli.Command{
		Name:  "play",
		Usage: "play a hotseat match in the terminal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPlay(ctx, cmd, in, out)
		},
	}

	return &cli.Command{
		Name:    AppName,
		Usage:   "two-player Battleship on a 10x10 grid",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout-dir",
				Value:   "layouts",
				Usage:   "directory containing fleet layout presets",
				Sources: cli.EnvVars("LAYOUT_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "p1-layout",
				Usage: "preset name or .json file used for Player 1's fleet",
			},
			&cli.StringFlag{
				Name:  "p2-layout",
				Usage: "preset name or .json file used for Player 2's fleet",
			},
		},
		Commands: []*cli.Command{
			play,
			{
				Name:  "layouts",
				Usage: "list the available fleet presets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runLayouts(cmd, out)
				},
			},
			{
				Name:      "validate",
				Usage:     "validate layout files (default: every file in the layout directory)",
				ArgsUsage: "[files...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidate(cmd, out)
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPlay(ctx, cmd, in, out)
		},
	}
}

// setupLogging configures the global zerolog logger from the flags
func setupLogging(cmd *cli.Command) {
	level, err := zerolog.ParseLevel(cmd.String("log-level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	if cmd.Bool("debug") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()

	if err != nil {
		log.Warn().Str("level", cmd.String("log-level")).Msg("unknown log level, using warn")
	}
}

func runPlay(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	setupLogging(cmd)

	opts := console.Options{Layouts: map[session.PlayerID]*config.Layout{}}
	refs := map[session.PlayerID]string{
		session.PlayerOne: cmd.String("p1-layout"),
		session.PlayerTwo: cmd.String("p2-layout"),
	}

	var manager *config.Manager
	for _, p := range session.Players {
		ref := refs[p]
		if ref == "" {
			continue
		}

		if manager == nil && !isLayoutFile(ref) {
			m, err := config.NewManager(cmd.String("layout-dir"))
			if err != nil {
				return fmt.Errorf("failed to open layout directory: %w", err)
			}
			manager = m
		}

		layout, err := resolveLayout(manager, ref)
		if err != nil {
			return fmt.Errorf("%s layout: %w", p, err)
		}
		opts.Layouts[p] = layout
	}

	match := session.NewMatch(log.Logger)
	log.Info().Str("match", match.ID()).Msg("match started")

	return console.New(in, out, match, opts).Run(ctx)
}

func isLayoutFile(ref string) bool {
	if !strings.HasSuffix(ref, ".json") {
		return false
	}
	_, err := os.Stat(ref)
	return err == nil
}

// resolveLayout loads ref as a file path when it names an existing .json file
// and as a preset name otherwise
func resolveLayout(manager *config.Manager, ref string) (*config.Layout, error) {
	if isLayoutFile(ref) {
		return config.LoadLayoutFile(ref)
	}
	return manager.LoadLayout(ref)
}

func runLayouts(cmd *cli.Command, out io.Writer) error {
	setupLogging(cmd)

	manager, err := config.NewManager(cmd.String("layout-dir"))
	if err != nil {
		return err
	}

	layouts, err := manager.ListLayouts()
	if err != nil {
		return err
	}

	if len(layouts) == 0 {
		fmt.Fprintf(out, "No layouts found in %s\n", manager.Dir())
		return nil
	}

	for _, info := range layouts {
		fmt.Fprintf(out, "%-12s %-20s %s\n", info.LayoutID, info.Name, info.Description)
	}
	return nil
}

func runValidate(cmd *cli.Command, out io.Writer) error {
	setupLogging(cmd)

	var results []validate.Result
	if files := cmd.Args().Slice(); len(files) > 0 {
		for _, file := range files {
			results = append(results, validate.ValidateFile(file))
		}
	} else {
		dirResults, err := validate.ValidateDir(cmd.String("layout-dir"))
		if err != nil {
			return err
		}
		results = dirResults
	}

	if !validate.Report(out, results) {
		return errInvalidLayouts
	}
	return nil
}
