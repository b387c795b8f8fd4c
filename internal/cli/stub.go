package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/pizza-manager/internal/database"
	"github.com/franciscosanchezn/pizza-manager/internal/middleware"
	"github.com/franciscosanchezn/pizza-manager/internal/stubapi"
)

// StubCmd returns the command serving the development backend
func StubCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a local pizza backend for development",
		Long: `Serve the /api/toppings and /api/pizzas contract from a local database.

SQLite is used by default (DB_PATH); set DB_DRIVER=postgres and the DB_*
variables to use PostgreSQL instead. An empty database is seeded with a
starter catalog unless --no-seed is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")
			noSeed, _ := cmd.Flags().GetBool("no-seed")

			db, err := database.InitDatabase(stubDatabaseConfig(o))
			if err != nil {
				return fmt.Errorf("failed to open stub database: %w", err)
			}
			if err := stubapi.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate stub database: %w", err)
			}
			if !noSeed {
				if _, err := stubapi.Seed(db); err != nil {
					return fmt.Errorf("failed to seed stub database: %w", err)
				}
			}

			srv := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", host, port),
				Handler: stubapi.NewRouter(db, middleware.RequestID(), middleware.AccessLog(log)),
			}
			return runServer(cmd.Context(), srv, func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			})
		},
	}

	cmd.Flags().String("host", o.conf.StubHost, "Interface the stub listens on")
	cmd.Flags().Int("port", o.conf.StubPort, "Port the stub listens on")
	cmd.Flags().Bool("no-seed", false, "Do not seed an empty database")

	return cmd
}

func stubDatabaseConfig(o *options) database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   o.conf.DBDriver,
		Host:     o.conf.DBHost,
		Port:     o.conf.DBPort,
		User:     o.conf.DBUser,
		Password: o.conf.DBPassword,
		Name:     o.conf.DBName,
		SSLMode:  o.conf.DBSSLMode,
		Path:     o.conf.DBPath,
	}
}
