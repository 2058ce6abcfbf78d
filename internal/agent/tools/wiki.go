package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// SummaryResult is the outcome of a background fact fetch. Failures are
// carried in the result (OK=false) instead of an error so the
// conversation can continue with a degraded tool output.
type SummaryResult struct {
	Topic   string `json:"topic"`
	OK      bool   `json:"ok"`
	Summary string `json:"summary"`
	Source  string `json:"source,omitempty"`
	Status  int    `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WikiClient fetches short neutral background summaries from the
// Wikipedia REST summary API (or a compatible endpoint).
type WikiClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWikiClient creates a wiki summary client with a bounded timeout.
func NewWikiClient(baseURL string, timeout time.Duration) *WikiClient {
	return &WikiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var whatIfPrefix = regexp.MustCompile(`(?i)^what if\s+`)

// sentence boundary: whitespace following terminal punctuation
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// Summary fetches a short background summary for a topic. One outbound
// call, no retries. Never returns a Go error: any failure degrades to
// an OK=false result.
func (c *WikiClient) Summary(ctx context.Context, topic string, sentences int) SummaryResult {
	t := strings.TrimSpace(topic)
	t = strings.Trim(t, "?")
	t = whatIfPrefix.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, " ", "_")
	source := c.baseURL + "/" + url.PathEscape(t)

	req, err := http.NewRequestWithContext(ctx, "GET", source, nil)
	if err != nil {
		return SummaryResult{Topic: topic, OK: false, Error: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SummaryResult{Topic: topic, OK: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SummaryResult{Topic: topic, OK: false, Source: source, Status: resp.StatusCode}
	}

	var data struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return SummaryResult{Topic: topic, OK: false, Error: fmt.Sprintf("decode: %v", err)}
	}

	return SummaryResult{
		Topic:   topic,
		OK:      true,
		Summary: firstSentences(data.Extract, sentences),
		Source:  source,
	}
}

// firstSentences joins the first max(1, n) sentences of text.
func firstSentences(text string, n int) string {
	if n < 1 {
		n = 1
	}
	parts := sentenceBoundary.Split(text, -1)
	marks := sentenceBoundary.FindAllStringSubmatch(text, -1)
	if len(parts) <= n {
		return text
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(parts[i])
		if i < len(marks) {
			b.WriteString(marks[i][1])
		}
	}
	return b.String()
}
