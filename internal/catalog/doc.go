// Package catalog provides an HTTP client for the book catalogue REST API.
//
// # Overview
//
// The backend exposes a small REST surface under a configurable root (by
// default http://localhost:8000/api). This package wraps it in a typed client
// so the rest of shelf never builds URLs or decodes JSON by hand.
//
// # Endpoints
//
//   - GET    /books/search?query=<q>  search the external book source
//   - POST   /books/save              persist {isbn,title,author,publication_year}
//   - GET    /books                   list the saved collection
//   - PUT    /books/{id}              mark a book as Read (no body)
//   - DELETE /books/{id}              delete a book
//
// # Usage
//
//	client, err := catalog.NewClient("http://localhost:8000/api",
//		catalog.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	results, err := client.Search(ctx, "dune")
//
// # Request Handling
//
// Every request:
//   - Uses the caller's context for cancellation
//   - Sets Accept: application/json and User-Agent: shelf/0.1
//   - Carries a fresh X-Request-Id, also attached to the debug log line
//   - Has no timeout unless WithTimeout is supplied
//
// # Errors
//
// Any status outside 2xx yields an *APIError carrying the reason phrase and
// the backend's "detail" text when one was sent. FastAPI validation errors,
// where detail is a list of objects, are flattened into "msg; msg".
// Transport and decode failures are wrapped with "execute request" and
// "decode response" respectively. Use AsAPIError to tell them apart.
package catalog
