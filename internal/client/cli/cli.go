// Package cli implements the possync terminal commands. Commands are
// wired against the storage and transport interfaces so tests can script
// a full terminal session with mocks.
package cli

import (
	"fmt"
	"log/slog"

	httpClient "github.com/RachelleMaina/stocka-sync/internal/client/api"
	"github.com/RachelleMaina/stocka-sync/internal/client/iocli"
	"github.com/RachelleMaina/stocka-sync/internal/client/pull"
	"github.com/RachelleMaina/stocka-sync/internal/client/status"
	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/client/sync"
	"github.com/RachelleMaina/stocka-sync/internal/client/trigger"
)

type Cli struct {
	io        iocli.IO
	client    httpClient.ClientAPI
	queue     storage.OperationQueue
	snapshots storage.SnapshotStore
	devices   storage.DeviceStore
	worker    *sync.Worker
	puller    *pull.Orchestrator
	triggers  *trigger.Source
	bus       *status.Bus
	logger    *slog.Logger
}

func New(
	io iocli.IO,
	client httpClient.ClientAPI,
	queue storage.OperationQueue,
	snapshots storage.SnapshotStore,
	devices storage.DeviceStore,
	worker *sync.Worker,
	puller *pull.Orchestrator,
	triggers *trigger.Source,
	bus *status.Bus,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:        io,
		client:    client,
		queue:     queue,
		snapshots: snapshots,
		devices:   devices,
		worker:    worker,
		puller:    puller,
		triggers:  triggers,
		bus:       bus,
		logger:    logger,
	}
}

func PrintUsage() {
	fmt.Println("Stocka POS Sync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  possync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Backoffice URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: possync.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register           Pair this device with the backoffice")
	fmt.Println("  pull [--force]     Refresh the local reference snapshot")
	fmt.Println("  sell [--sync]      Record a sale (works offline)")
	fmt.Println("  pending            List sales waiting to be synchronized")
	fmt.Println("  abandoned          List sales that gave up syncing, for review")
	fmt.Println("  purge <id>         Remove one reviewed abandoned sale")
	fmt.Println("  sync               Push pending sales to the backoffice now")
	fmt.Println("  status             Show device, snapshot and queue state")
	fmt.Println("  watch              Run the background sync loop in the foreground")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  possync register")
	fmt.Println("  possync pull")
	fmt.Println("  possync sell")
	fmt.Println("  possync sell --sync")
	fmt.Println("  possync sync")
	fmt.Println("  possync pull --force     # after the device moved to another store")
	fmt.Println("  possync --server https://backoffice.example.com watch")
}
