package events

import "time"

type CatalogLoadedEvent struct {
	Source    string    `json:"source"`
	Cars      int       `json:"cars"`
	Columns   int       `json:"columns"`
	Timestamp time.Time `json:"timestamp"`
}

type RecommendationServedEvent struct {
	RequestID  string    `json:"request_id"`
	Candidates int       `json:"candidates"`
	Shown      int       `json:"shown"`
	TopScore   float64   `json:"top_score,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
