package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emilianohg/appart/internal/config"
	"github.com/emilianohg/appart/internal/db"
	"github.com/emilianohg/appart/internal/format"
	"github.com/emilianohg/appart/internal/logging"
	"github.com/emilianohg/appart/internal/repository"
	"github.com/emilianohg/appart/internal/store"
	"github.com/emilianohg/appart/internal/tui"
)

// env is everything a command needs, built once per invocation.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sql.DB
	store  *store.Store
	fmt    *format.Formatter
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logPath, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	f, err := format.New(cfg.Language, cfg.Currency, cfg.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("invalid locale settings: %w", err)
	}

	database, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Fresh databases are migrated without asking; later schema changes go
	// through `appart migrate`.
	status, _ := db.GetMigrationStatus(database)
	if status != nil && status.CurrentVersion == 0 {
		if err := db.RunMigrations(database); err != nil {
			database.Close()
			return nil, fmt.Errorf("running initial migrations: %w", err)
		}
	}

	s, err := store.Open(repository.NewStateRepo(database), store.WithLogger(logger))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	return &env{cfg: cfg, logger: logger, db: database, store: s, fmt: f}, nil
}

func (e *env) Close() {
	_ = e.logger.Sync()
	e.db.Close()
}

func mustSetup() *env {
	e, err := setup()
	if err != nil {
		fail(err)
	}
	return e
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// resolveProject returns the project named by --project, or the current
// project. Unique id prefixes are accepted.
func resolveProject(e *env, cmd *cobra.Command) (string, error) {
	ref, _ := cmd.Flags().GetString("project")
	if ref == "" {
		if id := e.store.CurrentProjectID(); id != "" {
			return id, nil
		}
		return "", errors.New("no current project (use --project or `appart project use`)")
	}
	return matchID(ref, projectIDs(e.store))
}

func projectIDs(s *store.Store) []string {
	var ids []string
	for _, p := range s.Projects() {
		ids = append(ids, p.ID)
	}
	return ids
}

func matchID(ref string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", store.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous id %q matches %d entries", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var rootCmd = &cobra.Command{
	Use:   "appart",
	Short: "Property purchase tracker",
	Long:  `Appart follows your property purchases from search to key handover: stages, documents, contacts, tasks and financing.`,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		if err := tui.Run(e.store, e.fmt); err != nil {
			fail(err)
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending storage migrations",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		status, err := db.GetMigrationStatus(e.db)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Schema version: %d (latest %d)\n", status.CurrentVersion, status.LatestVersion)
		if status.Dirty {
			fail(errors.New("database is in a dirty migration state"))
		}
		if !status.Pending {
			fmt.Println("Nothing to migrate.")
			return
		}
		if err := db.RunMigrations(e.db); err != nil {
			fail(err)
		}
		fmt.Println("Migrations applied.")
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("project", "p", "", "Project id or id prefix (default: current project)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(financingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
