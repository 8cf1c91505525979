package main

import (
	"fmt"
	"os"

	"tasksync/internal/config"
	"tasksync/internal/repository/sqlite"
	"tasksync/internal/server"
)

// tasksyncd serves the remote store API backed by its own SQLite database.
func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.GetServerDatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	srv := server.New(repo)
	fmt.Printf("tasksyncd listening on %s\n", cfg.Server.Addr)
	if err := srv.Run(cfg.Server.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		os.Exit(1)
	}
}
