package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"tasksync/internal/api"
	"tasksync/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasksync",
		Short: "An offline-first command-line task list",
		Long: `Task Sync (tasksync) is a command-line task list that keeps working without
a network connection and reconciles with a remote store when one returns.

FEATURES:
  • Add, complete, and delete tasks while online or offline
  • Offline changes are queued locally and pushed when connectivity returns
  • Merged view of local and remote tasks, grouped by due date
  • Past-due tasks collapsed into a single leading group
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  tasksync add "Buy groceries" 2026-09-01        # Add a task due on a date
  tasksync add "Team standup" 2026-09-01T09:30   # Add a task with a time
  tasksync list                                  # Show the grouped task view
  tasksync done 1756291413000                    # Mark a task completed
  tasksync rm 1756291413000                      # Delete a task
  tasksync sync                                  # Force a reconciliation pass
  tasksync status                                # Show connectivity and pending changes

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TS_DB_DIR                              Database directory (default: ~/.tasksync)
    TS_DB_FILENAME                         Database filename (default: tasks.db)
    TS_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)

  Remote Configuration:
    TS_REMOTE_URL                          Remote store base URL (default: http://localhost:3000)
    TS_REMOTE_TIMEOUT                      Remote request timeout (default: 10s)
    TS_REMOTE_PROBE_INTERVAL               Connectivity probe interval (default: 30s)

  Display Configuration:
    TS_DISPLAY_TIME_FORMAT                 Time format (default: 15:04)
    TS_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TS_DISPLAY_PAST_LABEL                  Label for the past-due group (default: past)

  Validation Configuration:
    TS_VALIDATION_TITLE_MIN                Min task title length (default: 1)
    TS_VALIDATION_TITLE_MAX                Max task title length (default: 255)

  Application Configuration:
    TS_APP_TIMEOUT                         Application timeout (default: 60s)
    TS_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tasksync [command] --help                # Get help for any specific command
  tasksync completion bash                 # Generate bash completion script
  tasksync completion zsh                  # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TS_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TS_DB_QUERY_TIMEOUT)")

	// Remote configuration
	flags.String("remote-url", "", "Remote store base URL (overrides TS_REMOTE_URL)")
	flags.Duration("remote-timeout", 0, "Remote request timeout (overrides TS_REMOTE_TIMEOUT)")
	flags.Duration("probe-interval", 0, "Connectivity probe interval (overrides TS_REMOTE_PROBE_INTERVAL)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides TS_DISPLAY_TIME_FORMAT)")
	flags.String("date-format", "", "Date display format (overrides TS_DISPLAY_DATE_FORMAT)")
	flags.String("past-label", "", "Label for the past-due group (overrides TS_DISPLAY_PAST_LABEL)")

	// Validation configuration
	flags.Int("title-min-length", 0, "Minimum task title length (overrides TS_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum task title length (overrides TS_VALIDATION_TITLE_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [title] [due date]",
		Short: "Add a new task",
		Long: `Add a new task with a title and due date.

The due date accepts these forms:
  2026-09-01            # Date only (due at midnight)
  2026-09-01T09:30      # Date and time
  "2026-09-01 09:30"    # Date and time, space separated

If the remote store is unreachable the task is saved locally and pushed
on the next reconciliation pass after connectivity returns.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			addHandler := NewAddCommand(NewApp(r.api, r.config))
			return addHandler.Execute(ctx, args)
		},
	}

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done [task-id]",
		Short: "Mark a task completed",
		Long: `Mark a task completed by its ID.

Completion is permanent; a completed task never reverts to incomplete.
If the remote store is unreachable the completion is recorded locally
and pushed on the next reconciliation pass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			doneHandler := NewDoneCommand(NewApp(r.api, r.config))
			return doneHandler.Execute(ctx, args)
		},
	}

	// Remove command
	rmCmd := &cobra.Command{
		Use:   "rm [task-id]",
		Short: "Delete a task",
		Long: `Delete a task by its ID.

If the remote store is unreachable the deletion is recorded locally and
propagated on the next reconciliation pass so the task does not reappear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			rmHandler := NewRemoveCommand(NewApp(r.api, r.config))
			return rmHandler.Execute(ctx, args)
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by due date",
		Long: `List all tasks, merged from the local and remote stores when online.

Tasks are grouped by calendar day in ascending order. Tasks due before
today are collapsed into a single leading group. Tasks not yet pushed to
the remote store are marked "(not synced)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			listHandler := NewListCommand(NewApp(r.api, r.config))
			return listHandler.Execute(ctx, args)
		},
	}

	// Sync command
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a reconciliation pass",
		Long: `Run a reconciliation pass against the remote store.

Pushes any local tasks the remote store does not have, propagates
pending deletions, and pulls tasks created elsewhere. When the remote
store is unreachable the pass degrades to the local view and pending
changes are kept for the next attempt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			syncHandler := NewSyncCommand(NewApp(r.api, r.config))
			return syncHandler.Execute(ctx, args)
		},
	}

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show connectivity and pending changes",
		Long:  "Show whether the remote store is reachable and how many local changes are waiting to be pushed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			statusHandler := NewStatusCommand(NewApp(r.api, r.config))
			return statusHandler.Execute(ctx, args)
		},
	}

	// Add all subcommands to root
	r.cmd.AddCommand(
		addCmd,
		doneCmd,
		rmCmd,
		listCmd,
		syncCmd,
		statusCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}

	// Remote configuration
	if remoteURL, _ := flags.GetString("remote-url"); remoteURL != "" {
		r.config.Remote.BaseURL = remoteURL
	}
	if remoteTimeout, _ := flags.GetDuration("remote-timeout"); remoteTimeout > 0 {
		r.config.Remote.Timeout = remoteTimeout
	}
	if probeInterval, _ := flags.GetDuration("probe-interval"); probeInterval > 0 {
		r.config.Remote.ProbeInterval = probeInterval
	}

	// Display configuration
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Display.DateFormat = dateFormat
	}
	if pastLabel, _ := flags.GetString("past-label"); pastLabel != "" {
		r.config.Display.PastLabel = pastLabel
	}

	// Validation configuration
	if titleMinLength, _ := flags.GetInt("title-min-length"); titleMinLength > 0 {
		r.config.Validation.TitleMinLength = titleMinLength
	}
	if titleMaxLength, _ := flags.GetInt("title-max-length"); titleMaxLength > 0 {
		r.config.Validation.TitleMaxLength = titleMaxLength
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

// PreRun sets up configuration overrides from flags before running commands
func (r *RootCommand) PreRun() error {
	return r.getConfigFromFlags()
}
