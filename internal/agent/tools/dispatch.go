package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool names as advertised to the model.
const (
	NameTimelineAnchors = "make_timeline_anchors"
	NameWikiSummary     = "wiki_summary"
)

const defaultSentences = 3

// Dispatcher bridges model-requested tool calls to the two tool
// implementations. It is total: malformed arguments become empty
// argument sets and unknown names become JSON error objects, so a
// dispatch can never abort the surrounding loop.
type Dispatcher struct {
	wiki *WikiClient
}

// NewDispatcher creates a dispatcher over the given wiki client.
func NewDispatcher(wiki *WikiClient) *Dispatcher {
	return &Dispatcher{wiki: wiki}
}

type anchorArgs struct {
	StartYear int    `json:"start_year"`
	Horizon   string `json:"horizon"`
	Intervals []int  `json:"intervals"`
}

type wikiArgs struct {
	Topic     string `json:"topic"`
	Sentences int    `json:"sentences"`
}

// Dispatch executes the named tool with JSON-encoded arguments and
// returns the JSON-encoded result.
func (d *Dispatcher) Dispatch(ctx context.Context, name, argumentsJSON string) string {
	switch name {
	case NameTimelineAnchors:
		var args anchorArgs
		decodeArgs(argumentsJSON, &args)
		return mustJSON(TimelineAnchors(args.StartYear, args.Horizon, args.Intervals))
	case NameWikiSummary:
		args := wikiArgs{Sentences: defaultSentences}
		decodeArgs(argumentsJSON, &args)
		return mustJSON(d.wiki.Summary(ctx, args.Topic, args.Sentences))
	}
	return mustJSON(map[string]string{"error": fmt.Sprintf("Unknown tool %s", name)})
}

// decodeArgs tolerates malformed or empty JSON: the target keeps its
// zero (or pre-set default) values.
func decodeArgs(argumentsJSON string, target interface{}) {
	if argumentsJSON == "" {
		return
	}
	_ = json.Unmarshal([]byte(argumentsJSON), target)
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}
