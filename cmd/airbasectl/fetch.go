package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leaguedesk/airbase-client/internal/auth"
	"github.com/leaguedesk/airbase-client/internal/output"
	"github.com/leaguedesk/airbase-client/pkg/client"
	"github.com/leaguedesk/airbase-client/pkg/config"
	"github.com/leaguedesk/airbase-client/pkg/fetch"
	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/leaguedesk/airbase-client/pkg/session"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <kind>",
		Short: "Fetch every page of a collection and render it",
		Long: `Fetch retrieves all pages of records for a model kind and renders the
full collection as a table. Interrupting the command detaches the
requester: an in-flight fetch is cancelled and its result discarded.

Examples:
  # Fetch the overall scorer ranking
  airbasectl fetch scorer

  # Fetch with a defensive page bound
  airbasectl fetch team-week-scorer --max-pages 10

  # Partition the cache by a verified session token
  airbasectl fetch scorer --token "$SESSION_TOKEN"`,
		Args: cobra.ExactArgs(1),
		RunE: runFetchCmd,
	}

	cmd.Flags().Int("max-pages", 0, "Override the page bound for this fetch")
	cmd.Flags().String("session", "local", "Session identity for cache partitioning")
	cmd.Flags().String("token", "", "Signed session token (requires AUTH_JWT_SECRET)")

	return cmd
}

func runFetchCmd(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maxPages, _ := cmd.Flags().GetInt("max-pages")
	if maxPages <= 0 {
		maxPages = cfg.MaxPages
	}

	identity, err := resolveIdentity(cmd, cfg)
	if err != nil {
		return err
	}

	cache, cleanup, err := buildCache(cfg, maxPages)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handle := session.NewHandle(ctx)
	results := make(chan session.FetchResult, 1)

	go func() {
		collection, err := cache.FetchCached(handle.Context(), kind, identity)
		results <- session.FetchResult{Collection: collection, Err: err}
	}()

	var fetchErr error
	delivered := false

	select {
	case res := <-results:
		delivered = session.DeliverIfLive(handle, res, func(r session.FetchResult) {
			if r.Err != nil {
				fetchErr = r.Err
				return
			}
			output.CollectionTable(os.Stdout, kind, r.Collection).Render()
			fmt.Fprintf(os.Stderr, "%d records\n", len(r.Collection))
		})
	case <-ctx.Done():
		handle.Detach()
	}

	if fetchErr != nil {
		return fetchErr
	}
	if !delivered {
		fmt.Fprintln(os.Stderr, "fetch cancelled")
	}
	return nil
}

// resolveIdentity picks the cache partition key: a verified token claim
// when --token is given, the --session flag otherwise.
func resolveIdentity(cmd *cobra.Command, cfg config.Config) (string, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		identity, _ := cmd.Flags().GetString("session")
		return identity, nil
	}

	verifier, err := auth.NewVerifier(cfg.AuthSecret)
	if err != nil {
		return "", err
	}
	return verifier.Identity(token)
}

// buildCache assembles the fetch pipeline behind a session cache, backed
// by Redis when REDIS_ADDR is set and process memory otherwise.
func buildCache(cfg config.Config, maxPages int) (*session.Cache, func(), error) {
	airbase, err := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		BaseID:    cfg.BaseID,
		APIKey:    cfg.APIKey,
		UserAgent: "airbasectl/0.1.0",
		Timeout:   cfg.RequestTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	fetcher := fetch.New(airbase, fetch.Config{
		MaxPages: maxPages,
		Tables:   cfg.TableOverrides(),
	})

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	return session.NewCache(store, fetcher.FetchAll), cleanup, nil
}

func buildStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return session.NewRedisStore(redisClient, cfg.CacheTTL), func() { redisClient.Close() }, nil
}
