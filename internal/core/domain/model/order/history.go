package order

import "time"

// snippetLimit caps the content snippet stored in a history entry; full
// message bodies do not belong in the audit trail.
const snippetLimit = 100

// HistoryEntry is an immutable, timestamped audit record of an action taken on
// an order. Entries are only ever appended, never edited or removed, so the
// message history reads as a complete ordered narrative of what the system
// attempted.
type HistoryEntry struct {
	Timestamp      time.Time
	Action         string
	ContentSnippet string
	Actor          string
}

// CourierEvent is a single status report from the courier feed for a tracking
// number. The courier status history is append-only: events are recorded in
// the order the feed produced them and never rewritten.
type CourierEvent struct {
	Timestamp  time.Time
	StatusText string
}

// IsEqual compares two courier events by timestamp and status text. The
// courier status source uses this to locate the successor of the last-seen
// event in a tracking number's authoritative sequence.
func (e CourierEvent) IsEqual(other CourierEvent) bool {
	return e.Timestamp.Equal(other.Timestamp) && e.StatusText == other.StatusText
}

// truncateSnippet trims s to the snippet limit, marking the cut with an
// ellipsis.
func truncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLimit {
		return s
	}
	return string(runes[:snippetLimit]) + "..."
}
