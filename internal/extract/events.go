package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Event is one localized segment of a video with its time range in
// seconds.
type Event struct {
	Start       float64 `json:"start_seconds"`
	End         float64 `json:"end_seconds"`
	Description string  `json:"description"`
}

var timeRangePattern = regexp.MustCompile(`(\d{1,2}(?::\d{2}){1,2})\s*-\s*(\d{1,2}(?::\d{2}){1,2})`)

// TimeRange parses a "mm:ss-mm:ss" (or "h:mm:ss-h:mm:ss") range into
// start and end seconds.
func TimeRange(s string) (start, end float64, err error) {
	m := timeRangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[0] != strings.TrimSpace(s) {
		return 0, 0, fmt.Errorf("not a time range: %q", s)
	}

	start, err = timestampSeconds(m[1])
	if err != nil {
		return 0, 0, err
	}
	end, err = timestampSeconds(m[2])
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("time range %q ends before it starts", s)
	}
	return start, end, nil
}

func timestampSeconds(ts string) (float64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}

	var total float64
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("malformed timestamp %q", ts)
		}
		total = total*60 + float64(n)
	}
	return total, nil
}

type rawEvent struct {
	Time        string `json:"time"`
	Timestamp   string `json:"timestamp"`
	TimeRange   string `json:"time_range"`
	Event       string `json:"event"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Events collects localized events from model output. JSON event lists
// are preferred; free-text lines with leading time ranges are the
// fallback. Entries with malformed timestamps are dropped with a
// warning rather than failing the result.
func Events(text string, logger *slog.Logger) []Event {
	if logger == nil {
		logger = slog.Default()
	}

	if raw, err := JSON(text); err == nil {
		var entries []rawEvent
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			return eventsFromJSON(entries, logger)
		}
	}
	return eventsFromText(text, logger)
}

func eventsFromJSON(entries []rawEvent, logger *slog.Logger) []Event {
	events := make([]Event, 0, len(entries))
	for _, e := range entries {
		span := e.Time
		if span == "" {
			span = e.Timestamp
		}
		if span == "" {
			span = e.TimeRange
		}

		start, end, err := TimeRange(span)
		if err != nil {
			logger.Warn("dropping event with malformed timestamp", "timestamp", span, "error", err)
			continue
		}

		desc := e.Event
		if desc == "" {
			desc = e.Description
		}
		if desc == "" {
			desc = e.Content
		}
		events = append(events, Event{Start: start, End: end, Description: desc})
	}
	return events
}

func eventsFromText(text string, logger *slog.Logger) []Event {
	events := []Event{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line == "" {
			continue
		}

		loc := timeRangePattern.FindStringIndex(line)
		if loc == nil || loc[0] != 0 {
			continue
		}

		start, end, err := TimeRange(line[loc[0]:loc[1]])
		if err != nil {
			logger.Warn("dropping event with malformed timestamp", "line", line, "error", err)
			continue
		}

		desc := strings.TrimLeft(line[loc[1]:], " :-–")
		events = append(events, Event{Start: start, End: end, Description: desc})
	}
	return events
}
