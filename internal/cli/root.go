// Package cli implements pfctl, a maintenance tool for the dashboard store.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/seed"
	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/spf13/cobra"
)

type App struct {
	cfg    *config.Config
	Pretty bool
}

func NewRootCmd() *cobra.Command {
	app := &App{cfg: config.Load()}

	cmd := &cobra.Command{
		Use:          "pfctl",
		Short:        "Inspect and reset the ProjectFlow store",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # List stored keys
  pfctl keys

  # Dump the project list
  pfctl get projects --pretty

  # Sign everyone out and restore default settings
  pfctl reset auth_user app_settings
`),
	}

	cmd.PersistentFlags().StringVar(&app.cfg.StoreBackend, "backend", app.cfg.StoreBackend, "Store backend (memory|sqlite|redis|postgres)")
	cmd.PersistentFlags().StringVar(&app.cfg.SQLitePath, "sqlite-path", app.cfg.SQLitePath, "SQLite database file")
	cmd.PersistentFlags().StringVar(&app.cfg.RedisURL, "redis-url", app.cfg.RedisURL, "Redis URL")
	cmd.PersistentFlags().StringVar(&app.cfg.DatabaseURL, "database-url", app.cfg.DatabaseURL, "Postgres URL")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newKeysCmd(app))
	cmd.AddCommand(newGetCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	return cmd
}

// withStore opens the configured backend for the duration of fn.
func (app *App) withStore(cmd *cobra.Command, fn func(ctx context.Context, s store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := store.Open(ctx, app.cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}

func newKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List keys present in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withStore(cmd, func(ctx context.Context, s store.Store) error {
				keys, err := s.Keys(ctx)
				if err != nil {
					return err
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			})
		},
	}
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the JSON value stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withStore(cmd, func(ctx context.Context, s store.Store) error {
				value, found, err := s.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("key %q not set", args[0])
				}
				if app.Pretty {
					var buf bytes.Buffer
					if err := json.Indent(&buf, value, "", "  "); err == nil {
						value = buf.Bytes()
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(value))
				return nil
			})
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [KEY...]",
		Short: "Delete keys so they fall back to defaults (all keys when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := args
			if len(keys) == 0 {
				keys = store.AllKeys
			}
			for _, k := range keys {
				if !isKnownKey(k) {
					return fmt.Errorf("unknown key %q (known: %s)", k, strings.Join(store.AllKeys, ", "))
				}
			}

			return app.withStore(cmd, func(ctx context.Context, s store.Store) error {
				for _, k := range keys {
					if err := s.Delete(ctx, k); err != nil {
						return fmt.Errorf("failed to delete %s: %w", k, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", k)
				}
				return nil
			})
		},
	}
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withStore(cmd, func(ctx context.Context, s store.Store) error {
				if err := store.EnsureSchema(ctx, s); err != nil {
					return err
				}
				seeded, err := seed.SeedData(ctx, repository.NewRepositories(s), time.Now().In(app.cfg.Location()))
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "seeded demo data")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "store already has users; nothing to do")
				}
				return nil
			})
		},
	}
}

func isKnownKey(k string) bool {
	for _, known := range store.AllKeys {
		if k == known {
			return true
		}
	}
	return false
}
