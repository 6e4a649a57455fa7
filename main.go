package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/singe/internal/config"
	"github.com/robalobadob/singe/internal/console"
	"github.com/robalobadob/singe/internal/game"
	"github.com/robalobadob/singe/internal/robot"
	"github.com/robalobadob/singe/internal/store"
	"github.com/robalobadob/singe/internal/words"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run plays one game and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("singe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: singe [flags] <players>   e.g. singe HRR")
		fs.PrintDefaults()
	}
	cfg, rest, err := config.Load(fs, args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}
	setupLogging(cfg.LogLevel, stderr)

	var token string
	if len(rest) > 0 {
		token = rest[0]
	}
	players, err := game.ParsePlayers(token)
	switch {
	case errors.Is(err, game.ErrTooFewPlayers):
		fmt.Fprintln(stdout, "Nombre insuffisant de joueurs")
		return exitUsage
	case errors.Is(err, game.ErrUnknownKind):
		fmt.Fprintln(stdout, "Seul les joueurs humains et robots sont acceptés")
		return exitUsage
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Msg("random source seeded")

	dict := words.LoadOrEmpty(cfg.Dictionary)

	journal, err := openJournal(ctx, cfg.History)
	if err != nil {
		log.Error().Err(err).Str("history", cfg.History).Msg("open round journal")
		return exitRuntime
	}
	defer journal.Close()

	eng := game.New(players, game.Deps{
		Dict:    dict,
		Robot:   robot.New(dict, rand.New(rand.NewSource(seed))),
		Input:   console.NewReader(stdin),
		Out:     stdout,
		Journal: journal,
	})
	if err := eng.Run(ctx); err != nil {
		log.Error().Err(err).Str("game", eng.ID()).Msg("game aborted")
		return exitRuntime
	}
	return exitOK
}

// setupLogging routes the global logger to w in console format.
func setupLogging(level string, w io.Writer) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level, keeping the default")
	}
}

func openJournal(ctx context.Context, backend string) (store.Store, error) {
	if backend == config.HistorySQLite {
		return store.NewSQLiteStore(ctx)
	}
	return store.NewMemoryStore(), nil
}
