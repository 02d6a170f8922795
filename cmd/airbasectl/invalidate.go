package main

import (
	"fmt"

	"github.com/leaguedesk/airbase-client/internal/auth"
	"github.com/spf13/cobra"
)

// NewInvalidateCmd creates the invalidate command.
func NewInvalidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Drop every cached collection for a session",
		Long: `Invalidate removes all cached collections for one session identity.
Run it from the same logout flow that clears the session's local state.
Only meaningful with the shared Redis cache (REDIS_ADDR); the in-memory
cache dies with the process that owns it.`,
		Args: cobra.NoArgs,
		RunE: runInvalidateCmd,
	}

	cmd.Flags().String("session", "", "Session identity to invalidate")
	cmd.Flags().String("token", "", "Signed session token (requires AUTH_JWT_SECRET)")

	return cmd
}

func runInvalidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	identity, _ := cmd.Flags().GetString("session")
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		verifier, err := auth.NewVerifier(cfg.AuthSecret)
		if err != nil {
			return err
		}
		if identity, err = verifier.Identity(token); err != nil {
			return err
		}
	}
	if identity == "" {
		return fmt.Errorf("either --session or --token is required")
	}

	if cfg.RedisAddr == "" {
		return fmt.Errorf("invalidate requires the shared Redis cache (set REDIS_ADDR)")
	}

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.DeleteSession(cmd.Context(), identity); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "session cache invalidated")
	return nil
}
