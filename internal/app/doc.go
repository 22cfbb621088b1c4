// Package app is shelf's composition root.
//
// # Overview
//
// Run wires configuration, logging, the catalog client, the render store, the
// controller and the Bubble Tea UI, then blocks until the user quits or the
// context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        file + SHELF_* environment
//	       ├─────> newLogger()          zap JSON to log_file
//	       ├─────> catalog.NewClient()  REST client
//	       ├─────> state.Store{}        render target
//	       ├─────> shelf.New()          controller over client + store
//	       ├─────> Poller.Run()         optional, refresh_every > 0
//	       └─────> ui.Run()             TUI (blocks)
//
// The poller and the UI run in one errgroup. When the UI returns, the shared
// context is cancelled and the poller stops.
//
// # Auto Refresh
//
// The poller calls the controller's List on a timer, so its results and
// failures land in the same list region the user sees. After a failure the
// wait doubles, up to 30 seconds (or the configured interval if longer), and
// resets on the next success.
//
// # Logging
//
// Logs are JSON with ISO8601 timestamps written to the configured file. The
// Activity view in the UI reads the same file back through package logtail.
package app
