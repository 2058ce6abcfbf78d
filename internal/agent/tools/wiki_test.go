package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWikiSummarySuccess(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{
			"extract": "First sentence. Second sentence! Third sentence? Fourth sentence.",
		})
	}))
	defer ts.Close()

	c := NewWikiClient(ts.URL, 5*time.Second)
	res := c.Summary(context.Background(), "What if the printing press was never invented?", 3)

	if !res.OK {
		t.Fatalf("expected ok result, got %+v", res)
	}
	if gotPath != "/the_printing_press_was_never_invented" {
		t.Fatalf("unexpected topic path %q", gotPath)
	}
	if res.Summary != "First sentence. Second sentence! Third sentence?" {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
}

func TestWikiSummarySentenceFloor(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"extract": "One. Two. Three."})
	}))
	defer ts.Close()

	c := NewWikiClient(ts.URL, 5*time.Second)
	res := c.Summary(context.Background(), "topic", 0)
	if res.Summary != "One." {
		t.Fatalf("expected sentence count floored to 1, got %q", res.Summary)
	}
}

func TestWikiSummaryNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewWikiClient(ts.URL, 5*time.Second)
	res := c.Summary(context.Background(), "nonexistent topic", 3)

	if res.OK {
		t.Fatal("expected ok=false on 404")
	}
	if res.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", res.Status)
	}
	if res.Summary != "" {
		t.Fatalf("expected empty summary, got %q", res.Summary)
	}
	if !strings.Contains(res.Source, "/nonexistent_topic") {
		t.Fatalf("expected attempted source URL, got %q", res.Source)
	}
}

func TestWikiSummaryNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	c := NewWikiClient(ts.URL, time.Second)
	res := c.Summary(context.Background(), "topic", 3)

	if res.OK {
		t.Fatal("expected ok=false on network failure")
	}
	if res.Error == "" {
		t.Fatal("expected error description")
	}
}

func TestWikiSummaryMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := NewWikiClient(ts.URL, time.Second)
	res := c.Summary(context.Background(), "topic", 3)
	if res.OK || res.Error == "" {
		t.Fatalf("expected degraded result on malformed body, got %+v", res)
	}
}
