package artifact

import (
	"encoding/json"
	"time"
)

// TimestampLayout matches ISO-8601 with millisecond precision in UTC, e.g. 2025-01-02T03:04:05.678Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a creation instant serialized as an ISO-8601 string.
// Unreadable values decode to the zero time instead of failing the whole
// collection, and are written back exactly as they were read.
type Timestamp struct {
	time.Time
	// raw is the JSON of a value that could not be parsed.
	raw string
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() && t.raw != "" {
		return []byte(t.raw), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.raw = string(data)
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.raw = string(data)
		return nil
	}
	t.Time = parsed
	return nil
}
