// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling-fix server and CLI [DBG] application.

SpellServe analyzes misspelled tokens against a reference word list and
proposes likely corrections. It can operate as a MessagePack IPC server for
integration with editors and analyzers, or as a CLI application for testing
and debugging.

The engine builds position-indexed character maps over the corpus and uses
set-intersection scans to find near-neighbors of a misspelled word under
single edits, transpositions, and compound splits. Indexes are built lazily
on first query and are read-only afterwards, so any number of concurrent
queries can share one corpus snapshot.

# Usage

Start the server with default settings:

	spellserve

Use a custom word list and enable debug mode:

	spellserve -data /path/to/words.txt -d

Run in CLI mode for interactive testing:

	spellserve -c -limit 10

The word list is newline-delimited UTF-8 text, one word per line; blank lines
and lines starting with '#' are ignored. The fix list stores learned
corrections as misspelling=correction pairs, one per line.

# Configuration

Runtime configuration is managed through a TOML file covering server limits,
word list paths, and the engine thresholds:

	[server]
	max_limit = 24
	max_word_len = 60
	enable_filter = true

	[spell]
	min_fuzzy_len = 4
	min_split_len = 6
	swap_limit_short = 2
	swap_limit_long = 3

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in fix
responses.

Ask for corrections:

	{"id": "req1", "cmd": "fix", "w": "recieve", "l": 8}

Receive ranked candidates:

	{"id": "req1", "s": [{"w": "receive", "k": "swap", "r": 1}], "c": 1, "t": 45}

learn and ignore commands record accepted corrections and session-local
accepted words; save persists both lists back to their files.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/spell"
)

const (
	Version = "0.4.0"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	wordsFile := flag.String("data", defaults.Dict.WordsFile, "Path to the word list file")
	fixesFile := flag.String("fixes", defaults.Dict.FixesFile, "Path to the learned fix list file")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	configRenew := flag.Bool("config-renew", false, "Rewrite the default config.toml with builtin defaults and exit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.Server.MaxLimit, "Number of fix candidates to return")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - checks raw tokens (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		vlog := logger.New("")

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ SpellServe ] Suggests fixes for misspelled words!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *configRenew {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rewrite config: %v", err)
		}
		log.Printf("Rewrote default config at ( %s )", config.GetActiveConfigPath(""))
		os.Exit(0)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}
	if *wordsFile != "" {
		appConfig.Dict.WordsFile = *wordsFile
	}
	if *fixesFile != "" {
		appConfig.Dict.FixesFile = *fixesFile
	}

	log.Debugf("Loading word list from: %s", appConfig.Dict.WordsFile)
	list, err := dictionary.LoadWordListFile(appConfig.Dict.WordsFile, appConfig.Dict.CaseSensitive)
	if err != nil {
		log.Warnf("Failed to load word list: %v. Running with empty corpus...", err)
		list = dictionary.NewWordList()
	}

	data := spell.NewData(list).WithOptions(appConfig.Options())

	if pairs, err := dictionary.LoadFixFile(appConfig.Dict.FixesFile); err == nil {
		data = data.WithFixes(spell.FixListFromPairs(pairs))
		log.Debugf("Loaded %d learned fixes", len(pairs))
	} else {
		log.Debugf("No fix list loaded: %v", err)
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(data, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(data, appConfig)

	showStartupInfo(appConfig.Dict.WordsFile, list.Len(), activePath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process on a
// dedicated info-level logger, so the global level stays untouched.
func showStartupInfo(wordsFile string, wordCount int, configPath string) {
	info := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	info.Infof("word list: ( %s )", wordsFile)
	info.Infof("corpus size: %d words", wordCount)
	info.Info("status: ready")
}
