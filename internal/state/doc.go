// Package state holds what the screen shows.
//
// # Overview
//
// Store is the render target of the shelf controller. Controller actions run
// on their own goroutines and push whole regions into the Store; the Bubble
// Tea model reads a Snapshot after every action completes and on each tick.
//
//	Controller goroutines:          UI:
//	┌──────────────────────┐       ┌──────────────────┐
//	│ SetResults/SetShelf  │       │                  │
//	│ SetForm/Alert/...    │──────→│ store.Snapshot() │
//	└──────────────────────┘ mutex │      ↓           │
//	                                │   View()         │
//	                                └──────────────────┘
//
// # Regions
//
// Every setter replaces its region wholesale. Two regions are driven by
// revisions instead of content: ClearQuery and SetForm bump QueryRevision and
// FormRevision so the UI can tell when to overwrite what the user is typing.
//
// Alerts are kept as a short, sequence-numbered history. The UI remembers the
// last sequence it displayed and shows anything newer.
//
// # Offline Detection
//
// SetShelf counts consecutive list errors. IsOffline reports true after two in
// a row so the header can flag an unreachable backend during auto-refresh.
//
// # Copying
//
// Card and alert slices are copied on the way in and on the way out, so a
// Snapshot never aliases storage the controller may replace later.
//
// The zero Store is ready to use.
package state
