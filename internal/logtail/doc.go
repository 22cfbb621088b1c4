// Package logtail reads the tail of shelf's own log file for the Activity
// view.
//
// # Overview
//
// shelf logs with zap's JSON encoder to a file because the terminal belongs
// to the TUI. This package turns the end of that file back into something a
// person can scan:
//
//  1. Read: extract the last N lines of a file
//  2. Parse: decode one zap JSON line into an Entry
//  3. Tail: Read followed by Parse
//
// # Ring Buffer
//
// Read keeps a circular buffer of maxLines strings and scans the file once,
// so memory is bounded by the requested line count rather than the file
// size. Lines are returned oldest first.
//
// # Entries
//
// Parse recognises the standard zap keys (ts, level, logger, msg, caller,
// stacktrace). Everything else lands in Entry.Fields, so request_id, method,
// path, status and elapsed from the catalog client are available for
// display. Summary renders an entry on a single line with fields sorted by
// key:
//
//	14:32:15 DEBUG shelf.catalog: request completed elapsed=12ms method=GET path=/books request_id=... status=200
//
// Lines that are not JSON (a panic trace, a hand edit) are kept, with the
// whole line as the message.
//
// # Error Handling
//
// A missing log file is not an error: Read and Tail return nothing. Other
// I/O errors are wrapped and returned.
package logtail
