package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestDispatcher(t *testing.T, wikiURL string) *Dispatcher {
	t.Helper()
	return NewDispatcher(NewWikiClient(wikiURL, time.Second))
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher(t, "http://127.0.0.1:0")

	out := d.Dispatch(context.Background(), "unknown_tool", "{}")

	var res map[string]string
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("dispatch output is not JSON: %v", err)
	}
	if res["error"] == "" {
		t.Fatalf("expected error field, got %q", out)
	}
}

func TestDispatchMalformedArguments(t *testing.T) {
	d := newTestDispatcher(t, "http://127.0.0.1:0")

	out := d.Dispatch(context.Background(), NameTimelineAnchors, "not json")

	var res AnchorResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("dispatch output is not JSON: %v", err)
	}
	// empty argument set: horizon defaults to 50 years
	if res.HorizonYears != 50 {
		t.Fatalf("expected default horizon 50, got %d", res.HorizonYears)
	}
}

func TestDispatchTimelineAnchors(t *testing.T) {
	d := newTestDispatcher(t, "http://127.0.0.1:0")

	out := d.Dispatch(context.Background(), NameTimelineAnchors, `{"start_year":2025,"horizon":"5y"}`)

	var res AnchorResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("dispatch output is not JSON: %v", err)
	}
	if res.StartYear != 2025 || res.HorizonYears != 5 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.Anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(res.Anchors))
	}
}

func TestDispatchWikiSummaryDefaultSentences(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"extract": "A. B. C. D. E."})
	}))
	defer ts.Close()
	d := newTestDispatcher(t, ts.URL)

	out := d.Dispatch(context.Background(), NameWikiSummary, `{"topic":"printing press"}`)

	var res SummaryResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("dispatch output is not JSON: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected ok result, got %+v", res)
	}
	if res.Summary != "A. B. C." {
		t.Fatalf("expected default of 3 sentences, got %q", res.Summary)
	}
}

func TestDispatchWikiSummaryDegradedNeverErrors(t *testing.T) {
	d := newTestDispatcher(t, "http://127.0.0.1:0")

	out := d.Dispatch(context.Background(), NameWikiSummary, `{"topic":"anything"}`)

	var res SummaryResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("dispatch output is not JSON: %v", err)
	}
	if res.OK {
		t.Fatal("expected ok=false when the fetch cannot succeed")
	}
}
