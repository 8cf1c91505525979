package main

import (
	"context"
	"fmt"
	"os"

	"tasksync/internal/api"
	"tasksync/internal/cli"
	"tasksync/internal/config"
	"tasksync/internal/connectivity"
	"tasksync/internal/notify"
	"tasksync/internal/remote"
	"tasksync/internal/store"
	"tasksync/internal/sync"
)

func main() {
	// Load configuration from defaults, .env, and environment variables
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the local store
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating local store: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()
	local := store.NewLocal(repo)

	// Create the remote store client and probe connectivity once at startup
	client := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	probeCtx, cancelProbe := context.WithTimeout(context.Background(), cfg.Remote.Timeout)
	online := client.Ping(probeCtx) == nil
	cancelProbe()

	monitor := connectivity.NewMonitor(online)
	notifier := notify.NewLogNotifier()

	// Create the reconciler and wire connectivity transitions into it
	reconciler := sync.NewReconciler(local, client, monitor, notifier)
	monitor.Subscribe(func(online bool) {
		if online {
			notifier.Notify(notify.KindOnline, "Back online", "Synchronizing tasks with the remote store")
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
			defer cancel()
			reconciler.RequestSync(ctx)
		} else {
			notifier.Notify(notify.KindOffline, "Offline", "Changes will be saved locally and synced later")
		}
	})

	// Keep probing in the background so long-running commands observe
	// connectivity transitions
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go monitor.Run(runCtx, client, cfg.Remote.ProbeInterval)

	// Create the API facade and hand it to the CLI
	apiInstance := api.New(reconciler, local, monitor, cfg)
	root := cli.NewRootCommand(apiInstance, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
