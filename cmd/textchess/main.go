// textchess plays chess in the terminal between humans and computer players.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/textchess-go/internal/computer"
	"github.com/lgbarn/textchess-go/internal/config"
	"github.com/lgbarn/textchess-go/internal/game"
	"github.com/lgbarn/textchess-go/internal/render"
	"github.com/lgbarn/textchess-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("textchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration saved to %s\n", path)
		os.Exit(0)
	}

	setupLogFile(cfg)

	s := resolveSeed(cfg.Game.Seed)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "seed %d\n", s)
	}

	if cfg.SelfPlay.Games > 0 {
		err = runSelfPlay(cfg, s, *startFEN)
	} else if *useScreen {
		err = runScreen(cfg, os.Stdin, s)
	} else {
		err = runInteractive(cfg, os.Stdin, s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path when given, otherwise the XDG config file if one
// exists, on top of the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.InitConfig()
	}
	cfg := config.NewConfig()
	if err := config.Load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// resolveSeed returns seed, or a clock-based seed when it is 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// runInteractive runs the command controller with the board printed as
// text after every change.
func runInteractive(cfg *config.Config, in io.Reader, seed int64) error {
	ctrl := game.NewController(cfg, in, rand.New(rand.NewSource(seed))) //nolint:gosec // G404: game play, not security
	ctrl.Attach(render.NewTextObserver(cfg.OutputFile, cfg.Theme))
	return ctrl.Run()
}

// runScreen runs the command controller with the board drawn on a tcell
// screen. Commands still come from in, so this mode is meant for piped
// input. The controller's text output is held back and printed once the
// screen is closed.
func runScreen(cfg *config.Config, in io.Reader, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	out := cfg.OutputFile
	var transcript bytes.Buffer
	cfg.SetOutput(&transcript)

	ctrl := game.NewController(cfg, in, rand.New(rand.NewSource(seed))) //nolint:gosec // G404: game play, not security
	ctrl.Attach(render.NewScreenObserver(screen, cfg.Theme))
	runErr := ctrl.Run()

	waitForKey(screen)
	screen.Fini()

	cfg.SetOutput(out)
	if _, err := io.Copy(out, &transcript); err != nil {
		return err
	}
	return runErr
}

// waitForKey blocks until a key is pressed or the screen is closed.
func waitForKey(screen tcell.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// runSelfPlay plays the configured batch of computer matches and prints
// each result followed by the totals.
func runSelfPlay(cfg *config.Config, seed int64, fen string) error {
	base := game.MatchOptions{
		White:    computer.Level(cfg.SelfPlay.WhiteLevel),
		Black:    computer.Level(cfg.SelfPlay.BlackLevel),
		Seed:     seed,
		MaxPlies: cfg.SelfPlay.MaxPlies,
		FEN:      fen,
	}
	matches := worker.Matches(cfg.SelfPlay.Games, base)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "playing %d matches, %s (white) vs %s (black), %d workers\n",
			len(matches), base.White, base.Black, cfg.SelfPlay.Workers)
	}

	batch := worker.RunBatch(matches, cfg.SelfPlay.Workers, func(res worker.ProcessResult) {
		if res.Error != nil || cfg.Verbosity < 2 {
			return
		}
		mark := ""
		if res.Duplicate {
			mark = " (duplicate)"
		}
		fmt.Fprintf(cfg.LogFile, "game %s: %s by %s after %d plies%s\n",
			res.Result.GameID, res.Result.Outcome, res.Result.Reason, res.Result.Plies, mark)
	})

	var summary game.Summary
	var firstErr error
	for _, res := range batch.Results {
		if res.Error != nil {
			fmt.Fprintf(cfg.LogFile, "match %d: %v\n", res.Index+1, res.Error)
			if firstErr == nil {
				firstErr = fmt.Errorf("match %d could not be played: %w", res.Index+1, res.Error)
			}
			continue
		}
		summary.Add(res.Result)
		fmt.Fprintf(cfg.OutputFile, "Game %d: %s (%s, %d plies)\n",
			res.Index+1, res.Result.Outcome, res.Result.Reason, res.Result.Plies)
	}

	reportSummary(cfg.OutputFile, &summary, batch.Unique)
	if firstErr != nil {
		if skipped := batch.Skipped(len(matches)); skipped > 0 {
			fmt.Fprintf(cfg.LogFile, "%d matches skipped\n", skipped)
		}
		return firstErr
	}
	return nil
}

// reportSummary prints the totals of a self-play batch.
// distinct is the number of different final positions.
func reportSummary(w io.Writer, s *game.Summary, distinct int) {
	if s.Games == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d games (%d distinct): %d white wins, %d black wins, %d draws, %.1f plies on average\n",
		s.Games, distinct, s.Outcomes[game.WhiteWins], s.Outcomes[game.BlackWins], s.Outcomes[game.Draw],
		float64(s.Plies)/float64(s.Games))
	fmt.Fprintf(w, "Final Score:\nWhite: %g\nBlack: %g\n", s.WhiteScore, s.BlackScore)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: textchess [options] < commands\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess from commands read on standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  game <white> <black>    start a game; players are human or computer[1-4]\n")
	fmt.Fprintf(os.Stderr, "  move <from> <to> [p]    move a piece, promoting to p (q, r, b, n)\n")
	fmt.Fprintf(os.Stderr, "  resign                  concede the current game\n")
	fmt.Fprintf(os.Stderr, "  setup                   edit the starting position:\n")
	fmt.Fprintf(os.Stderr, "    + <piece> <square>    place a piece (K Q R B N P, lower case for black)\n")
	fmt.Fprintf(os.Stderr, "    - <square>            clear a square\n")
	fmt.Fprintf(os.Stderr, "    = white|black         choose who moves first\n")
	fmt.Fprintf(os.Stderr, "    fen <placement> [w|b] load a position\n")
	fmt.Fprintf(os.Stderr, "    done                  leave setup if the position is valid\n")
}
