package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/gofish/internal/config"
	"github.com/fadedpez/gofish/internal/logging"
	"github.com/fadedpez/gofish/internal/types"
	"github.com/fadedpez/gofish/pkg/repositories/game"
	"github.com/fadedpez/gofish/pkg/services/gofish"
	"github.com/fadedpez/gofish/pkg/services/statistics"
	"github.com/fadedpez/gofish/pkg/terminal"
	"github.com/peterh/liner"
)

func main() {
	players := flag.Int("players", 0, "Number of seats including the dealer (2-5); asked for when 0")
	name := flag.String("name", "", "Your name; asked for when empty")
	seed := flag.Int64("seed", 0, "Shuffle seed; overrides SHUFFLE_SEED, 0 uses the clock")
	auto := flag.Bool("auto", false, "Let the computer play your seat too")
	reveal := flag.Bool("reveal", false, "Show every hand; overrides REVEAL_HANDS when set")
	leaderboard := flag.Bool("leaderboard", false, "Print the stored leaderboard and exit")
	top := flag.Int("top", 10, "Rows of the leaderboard to print")
	recent := flag.Int("recent", 5, "Recent matches to list with -leaderboard")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.ShuffleSeed = *seed
	}
	if *reveal {
		cfg.RevealHands = true
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.WARN
	}
	logger := logging.NewLogger(level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	opts := options{
		players:     *players,
		name:        *name,
		auto:        *auto,
		leaderboard: *leaderboard,
		top:         *top,
		recent:      *recent,
	}
	if err := run(ctx, cfg, logger, opts); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
}

type options struct {
	players     int
	name        string
	auto        bool
	leaderboard bool
	top         int
	recent      int
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts options) error {
	repo := openRepository(ctx, cfg, logger)
	defer repo.Close()
	stats := statistics.NewService(repo)

	display := terminal.NewDisplay(os.Stdout, cfg.RevealHands)
	if opts.leaderboard {
		return showLeaderboard(ctx, stats, display, opts)
	}
	display.Banner()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	prompter := terminal.NewPrompter(line, os.Stdout)

	table, err := seatTable(ctx, prompter, opts)
	if errors.Is(err, terminal.ErrQuit) {
		terminal.C.Info.Println("Goodbye!")
		return nil
	}
	if err != nil {
		return err
	}

	matchOpts := []gofish.Option{
		gofish.WithPrompter(prompter),
		gofish.WithObserver(display),
		gofish.WithLogger(logger),
		gofish.WithMaxTurns(cfg.MaxTurns),
	}
	if cfg.ShuffleSeed != 0 {
		matchOpts = append(matchOpts, gofish.WithSeed(cfg.ShuffleSeed))
	}

	match := gofish.NewMatch(table, matchOpts...)
	logger.Info("starting match %s with %v", match.ID, table.Names())

	result, err := match.Run(ctx)
	if errors.Is(err, terminal.ErrQuit) {
		terminal.C.Info.Println("Goodbye!")
		return nil
	}
	if err != nil {
		return err
	}

	if err := stats.RecordMatch(ctx, result); err != nil {
		logger.Warn("could not record match %s: %v", result.ID, err)
	}

	board, err := stats.GetLeaderboard(ctx, 1, opts.top)
	if err != nil {
		logger.Warn("could not build leaderboard: %v", err)
		return nil
	}
	display.PrintLeaderboard(board)

	summary, err := stats.PlayerSummary(ctx, table.Human().Name)
	if err != nil {
		logger.Warn("could not load statistics for %s: %v", table.Human().Name, err)
		return nil
	}
	display.PrintPlayerSummary(summary)
	return nil
}

// showLeaderboard prints what is already stored without playing a match
func showLeaderboard(ctx context.Context, stats *statistics.Service, display *terminal.Display, opts options) error {
	board, err := stats.GetLeaderboard(ctx, 1, opts.top)
	if err != nil {
		return err
	}
	display.PrintLeaderboard(board)

	if opts.name != "" {
		summary, err := stats.PlayerSummary(ctx, opts.name)
		if err != nil {
			return err
		}
		display.PrintPlayerSummary(summary)
	}

	if opts.recent > 0 {
		results, err := stats.RecentMatches(ctx, opts.recent)
		if err != nil {
			return err
		}
		display.PrintRecentMatches(results)
	}
	return nil
}

// seatTable asks for whatever the flags left open and builds the table
func seatTable(ctx context.Context, prompter *terminal.Prompter, opts options) (*gofish.Table, error) {
	players := opts.players
	if players == 0 {
		if opts.auto {
			players = gofish.MaxPlayers
		} else {
			n, err := prompter.RequestInt(ctx, fmt.Sprintf("How many players, dealer included? (%d-%d): ", gofish.MinPlayers, gofish.MaxPlayers), gofish.MinPlayers, gofish.MaxPlayers)
			if err != nil {
				return nil, err
			}
			players = n
		}
	}
	if players < gofish.MinPlayers || players > gofish.MaxPlayers {
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("-players must be between %d and %d, got %d", gofish.MinPlayers, gofish.MaxPlayers, players))
	}

	for {
		name := opts.name
		if name == "" {
			if opts.auto {
				name = "You"
			} else {
				answer, err := prompter.RequestString(ctx, "What is your name? ", "You")
				if err != nil {
					return nil, err
				}
				name = answer
			}
		}

		table, err := gofish.NewTable(name, players)
		if err != nil {
			nameProblem := types.IsGameError(err, types.ErrDuplicatePlayer) || types.IsGameError(err, types.ErrInvalidArgument)
			if opts.name != "" || opts.auto || !nameProblem {
				return nil, err
			}
			terminal.C.Warn.Printf("%v\n", err)
			continue
		}

		if opts.auto {
			table.Human().Automated = true
		}
		return table, nil
	}
}

// openRepository picks the results store, falling back to memory when SQLite
// or the results file can't be opened, and mirrors to Elasticsearch when configured
func openRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) game.Repository {
	var repo game.Repository = game.NewMemoryRepository()

	if cfg.UsesSQLite() {
		logger.Info("Initializing SQLite repository at %s", cfg.DBPath)
		sqliteRepo, err := game.NewSQLiteRepository(ctx, cfg.DBPath)
		if err != nil {
			logger.Warn("Failed to initialize SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository")
		} else {
			repo = sqliteRepo
		}
	} else if cfg.StorageType == config.StorageFile {
		logger.Info("Storing match results in %s", cfg.ResultsPath)
		fileRepo, err := game.NewFileRepository(cfg.ResultsPath)
		if err != nil {
			logger.Warn("Failed to load results file: %v", err)
			logger.Warn("Falling back to in-memory repository")
		} else {
			repo = fileRepo
		}
	} else {
		logger.Info("Using in-memory repository for match results (results are lost on exit)")
	}

	if cfg.UsesElasticsearch() {
		esRepo, err := game.NewElasticsearchRepository(ctx, repo, &game.ElasticsearchConfig{
			URL:         cfg.ElasticsearchURL,
			Username:    cfg.ElasticsearchUsername,
			Password:    cfg.ElasticsearchPassword,
			IndexPrefix: cfg.ElasticsearchIndexPrefix,
		}, logger)
		if err != nil {
			logger.Warn("Elasticsearch unavailable, results will not be indexed: %v", err)
		} else {
			repo = esRepo
		}
	}

	return repo
}
