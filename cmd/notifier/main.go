package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-notify/domain"
	"chat-notify/domain/event"
	"chat-notify/infrastructure/push"
	"chat-notify/internal"
	"chat-notify/repositories"
	"chat-notify/runtime"
	"chat-notify/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Notifier terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the worker lifecycle, and
// centralizes error reporting. Returning instead of calling os.Exit keeps
// the deferred cleanup (database close) running on every path.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Pipeline wiring
	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewDispatchHandler(logger, counter),
		event.NewPrunedHandler(logger, counter),
	}

	profileRepository := repositories.NewProfileRepository(db)
	credentials := push.NewCredentials(config.PushServiceKey, config.PushTokenTTL)
	pusher := push.NewGatewayClient(
		config.PushGatewayURL,
		&http.Client{Timeout: config.SendTimeout},
		credentials,
		logger,
	)
	policy := domain.DisplayNamePolicy{
		PrivilegedName: config.PrivilegedDisplayName,
		DefaultName:    config.DefaultSenderName,
	}
	notifier := services.NewNotifierService(logger, profileRepository, pusher, policy, handlers...)
	feed := runtime.NewChangeFeed(db, notifier, logger)

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		internal.StartDebugServer(db, config.DebugPort, endpoint, ProfileMapper, func() map[string]any {
			stats := make(map[string]any)
			for t, n := range counter.Snapshot() {
				stats[string(t)] = n
			}
			return stats
		})
	}

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the change feed under supervision
	supervisor := runtime.NewSupervisor(logger, event.NewWorkerRestartedAfterPanicHandler(logger, counter))
	supervisor.Add(feed)

	logger.Info("Notifier started, watching for created message records")
	supervisor.Run(ctx)

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

// ProfileMapper renders "user:{id}" rows in the inspector; anything else
// falls back to the default key layout.
func ProfileMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	if !strings.HasPrefix(key, "user:") {
		return row
	}

	var profile repositories.Profile
	if err := json.Unmarshal(val, &profile); err != nil {
		return row
	}

	row.Type = "PROFILE"
	row.EntityID = profile.ID
	row.Detail = fmt.Sprintf("%s | privileged=%t | tokens=%d",
		profile.FullName, profile.Privileged, len(profile.Tokens))
	return row
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
