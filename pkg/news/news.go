// Package news caches externally fetched news items per source with a TTL.
// Items older than the TTL are invisible to readers and swept out of the
// store by a background cleaner.
package news

import "time"

// Item is one cached news entry.
type Item struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	FetchedAt   time.Time `json:"fetchedAt"`
}
