// cmd/addtrainer/main.go
// Creates trainers in the database. The HTTP API has no trainer routes, so
// members and workout sessions reference ids created here.
//
// Usage:
//
//	go run ./cmd/addtrainer --name "Sam Reid"
//	go run ./cmd/addtrainer --list
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
	"github.com/padraicbc/gymapi/repo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		name string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "addtrainer",
		Short: "Create or list gym trainers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !list && strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name or --list is required")
			}

			ctx := cmd.Context()
			cfg := config.Load()
			db, err := bundb.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := bundb.CreateTables(ctx, db); err != nil {
				return err
			}
			return run(ctx, db, cmd.OutOrStdout(), name, list)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "trainer name")
	cmd.Flags().BoolVar(&list, "list", false, "list existing trainers")
	return cmd
}

func run(ctx context.Context, db bun.IDB, out io.Writer, name string, list bool) error {
	if name = strings.TrimSpace(name); name != "" {
		t, err := repo.CreateTrainer(ctx, db, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "trainer %q saved with id %d\n", t.Name, t.ID)
	}

	if list {
		trainers, err := repo.ListTrainers(ctx, db)
		if err != nil {
			return err
		}
		for _, t := range trainers {
			fmt.Fprintf(out, "%d\t%s\n", t.ID, t.Name)
		}
	}
	return nil
}
