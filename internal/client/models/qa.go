package models

import "time"

// ChatTurn is one prior conversation turn sent along with a new question.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIAnswer is the payload of POST /api/ai/analyze. Context, when present,
// carries the CSV evidence the answer was grounded on.
type AIAnswer struct {
	Answer  string `json:"answer"`
	Context string `json:"context,omitempty"`
}

// QAEntry is one question/answer pair in the local conversation history.
// Storage order is chronological; display order is a presentation concern.
// JSON field names mirror the persisted snapshot shape.
type QAEntry struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"q"`
	Answer   string `json:"a"`
	Evidence string `json:"evidence,omitempty"`
	AskedAt  int64  `json:"ts"`
}

// Asked returns the entry timestamp as a time.Time.
func (e QAEntry) Asked() time.Time {
	return time.UnixMilli(e.AskedAt)
}
