// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/textchess-go/internal/config"
)

var (
	// Configuration file
	configFile = flag.String("config", "", "Read configuration from this file instead of the XDG config path")
	saveConfig = flag.Bool("save-config", false, "Write the effective configuration to the XDG config path and exit")

	// Game options
	seed         = flag.Int64("seed", 0, "Seed for computer players (0 = config value, or the clock)")
	defaultLevel = flag.Int("level", 0, "Level for a bare \"computer\" player, 1-4 (0 = config value)")
	maxPlies     = flag.Int("maxplies", -1, "Draw a game after this many plies (0 = no limit, -1 = config value)")

	// Display
	useScreen = flag.Bool("screen", false, "Draw the board on a full-screen terminal display")
	letters   = flag.Bool("letters", false, "Draw pieces as letters instead of figurines on the screen display")

	// Self-play
	selfPlay   = flag.Int("selfplay", 0, "Play N computer matches and report the results")
	whiteLevel = flag.Int("white", 0, "White's level in self-play, 1-4 (0 = config value)")
	blackLevel = flag.Int("black", 0, "Black's level in self-play, 1-4 (0 = config value)")
	startFEN   = flag.String("fen", "", "Starting position for self-play matches")
	workers    = flag.Int("workers", 0, "Number of matches played in parallel (0 = config value)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", -1, "Diagnostic level: 0=none, 1=results, 2=every move (-1 = config value)")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration values with any flags that were given.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applySelfPlayFlags(cfg)

	if *letters {
		cfg.Theme.Figurines = false
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyGameFlags configures interactive game settings.
func applyGameFlags(cfg *config.Config) {
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *defaultLevel != 0 {
		cfg.Game.DefaultLevel = *defaultLevel
	}
	if *maxPlies >= 0 {
		cfg.Game.MaxPlies = *maxPlies
	}
}

// applySelfPlayFlags configures the self-play batch. A -maxplies limit
// applies to self-play matches too.
func applySelfPlayFlags(cfg *config.Config) {
	if *selfPlay != 0 {
		cfg.SelfPlay.Games = *selfPlay
	}
	if *whiteLevel != 0 {
		cfg.SelfPlay.WhiteLevel = *whiteLevel
	}
	if *blackLevel != 0 {
		cfg.SelfPlay.BlackLevel = *blackLevel
	}
	if *workers != 0 {
		cfg.SelfPlay.Workers = *workers
	}
	if *maxPlies > 0 {
		cfg.SelfPlay.MaxPlies = *maxPlies
	}
}
