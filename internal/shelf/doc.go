// Package shelf is the reading-list controller.
//
// It sits between two ports: a Backend that speaks to the book service and a
// View that draws what the user sees. Every user action (search, select,
// save, list, mark read, delete) is a Controller method that validates input,
// makes at most one backend call for the action itself, and then pushes
// complete region contents into the View. Regions are always replaced, never
// patched, so a View can be as simple as a set of fields behind a mutex.
//
// # Input handling
//
// Empty queries and incomplete save forms are rejected locally with a
// *ValidationError and the View shows the message inline; nothing is sent.
// Values that pass validation are forwarded exactly as typed.
//
// # Ordering
//
// Search and list responses are tagged with a generation number. A response
// that arrives after a newer request of the same kind is dropped, so slow
// requests cannot overwrite fresher output.
//
// # Rendering
//
// RenderResults and RenderShelf build display models from backend records.
// All backend text goes through Sanitize before it reaches a card so escape
// sequences embedded in titles or authors cannot drive the terminal.
package shelf
