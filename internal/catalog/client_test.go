package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url = %q, want http://example.com:1234", u.String())
	}
	if u.Path != "/api" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http:///api"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_CallsEndpoints(t *testing.T) {
	t.Parallel()

	type seen struct {
		method    string
		path      string
		rawQuery  string
		body      string
		userAgent string
		requestID string
	}
	var calls []seen

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		calls = append(calls, seen{
			method:    r.Method,
			path:      r.URL.Path,
			rawQuery:  r.URL.RawQuery,
			body:      string(raw),
			userAgent: r.Header.Get("User-Agent"),
			requestID: r.Header.Get(requestIDHeader),
		})
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/books/search":
			_ = json.NewEncoder(w).Encode([]Book{{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, ISBN: "9780441013593"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/books/save":
			_ = json.NewEncoder(w).Encode(Book{ID: 1, Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Status: StatusPending})
		case r.Method == http.MethodGet && r.URL.Path == "/api/books":
			_ = json.NewEncoder(w).Encode([]Book{{ID: 1, Title: "Dune", Status: StatusRead}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/books/7":
			_ = json.NewEncoder(w).Encode(Book{ID: 7, Status: StatusRead})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/books/7":
			_ = json.NewEncoder(w).Encode(DeleteResponse{Message: "Book deleted successfully"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	results, err := c.Search(ctx, "dune & messiah")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Dune" || results[0].Saved() {
		t.Fatalf("Search results = %#v, want one unsaved Dune", results)
	}

	saved, err := c.Save(ctx, SaveRequest{ISBN: "9780441013593", Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID != 1 || saved.Status != StatusPending {
		t.Fatalf("Save = %#v, want id=1 status=Pending", saved)
	}

	books, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(books) != 1 || !books[0].Status.IsRead() {
		t.Fatalf("List = %#v, want one read book", books)
	}

	updated, err := c.MarkRead(ctx, 7)
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if updated.ID != 7 {
		t.Fatalf("MarkRead = %#v, want id=7", updated)
	}

	if err := c.Delete(ctx, 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if len(calls) != 5 {
		t.Fatalf("server saw %d calls, want 5", len(calls))
	}
	if calls[0].rawQuery != "query=dune+%26+messiah" {
		t.Fatalf("search query = %q, want encoded query", calls[0].rawQuery)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(calls[1].body), &body); err != nil {
		t.Fatalf("save body not JSON: %v", err)
	}
	if len(body) != 4 || body["isbn"] != "9780441013593" || body["title"] != "Dune" ||
		body["author"] != "Frank Herbert" || body["publication_year"] != float64(1965) {
		t.Fatalf("save body = %v, want exactly isbn,title,author,publication_year", body)
	}
	if calls[3].body != "" {
		t.Fatalf("mark read body = %q, want empty", calls[3].body)
	}

	ids := map[string]bool{}
	for _, call := range calls {
		if !strings.HasPrefix(call.userAgent, "shelf/") {
			t.Fatalf("User-Agent = %q, want shelf/*", call.userAgent)
		}
		if _, err := uuid.Parse(call.requestID); err != nil {
			t.Fatalf("request id %q is not a uuid: %v", call.requestID, err)
		}
		ids[call.requestID] = true
	}
	if len(ids) != len(calls) {
		t.Fatalf("request ids reused across calls: %v", ids)
	}
}

func TestClient_APIErrorCarriesDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/books/7":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"not found"}`))
		case "/books/save":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":[{"loc":["body","title"],"msg":"field required"},{"msg":"value too large"}]}`))
		case "/books":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`oops`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.Delete(context.Background(), 7)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("Delete error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Detail != "not found" || apiErr.StatusText != "Not Found" {
		t.Fatalf("APIError = %#v, want 404 Not Found detail=not found", apiErr)
	}

	_, err = c.Save(context.Background(), SaveRequest{})
	apiErr, ok = AsAPIError(err)
	if !ok || apiErr.Detail != "field required; value too large" {
		t.Fatalf("Save error = %#v, want flattened validation detail", err)
	}

	_, err = c.List(context.Background())
	apiErr, ok = AsAPIError(err)
	if !ok || apiErr.Detail != "" || apiErr.StatusText != "Internal Server Error" {
		t.Fatalf("List error = %#v, want 500 without detail", err)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("List error = %q, want status in message", err.Error())
	}
}

func TestClient_DecodeAndTransportErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("List error = %v, want decode response error", err)
	}

	server.Close()
	_, err = c.Search(context.Background(), "dune")
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Search error = %v, want execute request error", err)
	}
	if _, ok := AsAPIError(err); ok {
		t.Fatalf("transport error should not be an APIError")
	}
}

func TestClient_RejectsInvalidIDs(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.MarkRead(context.Background(), 0); err == nil {
		t.Fatalf("MarkRead(0) returned nil error, want error")
	}
	if err := c.Delete(context.Background(), -1); err == nil {
		t.Fatalf("Delete(-1) returned nil error, want error")
	}
}

func TestParseDetail(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty", ``, ""},
		{"not json", `boom`, ""},
		{"no detail", `{"message":"x"}`, ""},
		{"null detail", `{"detail":null}`, ""},
		{"string", `{"detail":" Book not found "}`, "Book not found"},
		{"list", `{"detail":[{"msg":"a"},{"msg":""},{"msg":"b"}]}`, "a; b"},
		{"object", `{"detail":{"code":1}}`, `{"code":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseDetail([]byte(tc.body)); got != tc.want {
				t.Fatalf("parseDetail(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestStatusIsRead(t *testing.T) {
	if !Status(" read ").IsRead() || !StatusRead.IsRead() {
		t.Fatalf("IsRead should ignore case and padding")
	}
	if StatusPending.IsRead() || StatusUnread.IsRead() {
		t.Fatalf("unread statuses reported as read")
	}
}

func TestClient_WithUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, WithUserAgent("shelf/1.2.3"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if got != "shelf/1.2.3" {
		t.Fatalf("User-Agent = %q, want %q", got, "shelf/1.2.3")
	}
}

func TestClient_SaveOmitsMissingISBN(t *testing.T) {
	t.Parallel()

	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Book{ID: 3, Title: "Dune", Status: StatusPending})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	var result Book
	if err := json.Unmarshal([]byte(`{"isbn":null,"title":"Dune","author":"Frank Herbert","publication_year":1965}`), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	req := SaveRequest{ISBN: result.ISBN, Title: result.Title, Author: result.Author, PublicationYear: result.PublicationYear}
	if _, err := c.Save(context.Background(), req); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, ok := body["isbn"]; ok {
		t.Fatalf("save body = %v, want no isbn for a result without one", body)
	}
	if body["title"] != "Dune" || body["author"] != "Frank Herbert" || body["publication_year"] != float64(1965) {
		t.Fatalf("save body = %v", body)
	}
}
