package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bloodbank-api/internal/bootstrap"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/bloodbank-api/pkg/config"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

func newRootCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Datos demo del banco de sangre",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.Storage.Driver, "driver", cfg.Storage.Driver, "memory | file | redis | postgres")
	root.PersistentFlags().StringVar(&cfg.Storage.Dir, "dir", cfg.Storage.Dir, "directorio del driver file")

	root.AddCommand(newRunCmd(cfg, log), newInspectCmd(cfg, log))
	return root
}

func newRunCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Carga datos demo en las colecciones vacías",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), cfg, log, func(store repository.KeyValueStore) error {
				return runSeed(cmd.Context(), store, log, cmd.OutOrStdout())
			})
		},
	}
}

func newInspectCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Muestra cuántos registros tiene cada colección",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), cfg, log, func(store repository.KeyValueStore) error {
				return inspect(cmd.Context(), store, cmd.OutOrStdout())
			})
		},
	}
}

func withStore(ctx context.Context, cfg *config.Config, log *logger.Logger, fn func(repository.KeyValueStore) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

func runSeed(ctx context.Context, store repository.KeyValueStore, log *logger.Logger, out io.Writer) error {
	c := bootstrap.Build(store, bootstrap.Options{Log: log})
	report, err := c.Seeder.Run(ctx)
	if err != nil {
		return err
	}
	if len(report.Seeded) == 0 {
		fmt.Fprintln(out, "sin cambios: todas las colecciones tienen datos")
		return nil
	}
	fmt.Fprintf(out, "colecciones pobladas: %s\n", strings.Join(report.Seeded, ", "))
	return nil
}

func inspect(ctx context.Context, store repository.KeyValueStore, out io.Writer) error {
	c := bootstrap.Build(store, bootstrap.Options{})
	r := c.Repos
	counts := []struct {
		key   string
		count func(context.Context) (int, error)
	}{
		{recordstore.KeyUsers, countOf(r.Users.List)},
		{recordstore.KeyAdmins, countOf(r.Admins.List)},
		{recordstore.KeyDonations, countOf(r.Donations.List)},
		{recordstore.KeyRequests, countOf(r.Requests.List)},
		{recordstore.KeyStock, countOf(r.Stock.List)},
		{recordstore.KeySupplies, countOf(r.Supplies.List)},
		{recordstore.KeyNotifications, countOf(r.Notifications.List)},
	}
	for _, entry := range counts {
		n, err := entry.count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-32s %d\n", entry.key, n)
	}
	session, err := r.Sessions.Get(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		fmt.Fprintf(out, "%-32s -\n", recordstore.KeyAuth)
	} else {
		fmt.Fprintf(out, "%-32s %s %s\n", recordstore.KeyAuth, session.Role, session.Subject)
	}
	return nil
}

func countOf[T any](list func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := list(ctx)
		return len(items), err
	}
}
