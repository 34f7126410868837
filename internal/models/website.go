package models

import "time"

// Website represents a site registered for change monitoring along with its
// alert contacts. Phone is stored for the planned SMS channel; only the email
// contact is used for alerts today.
type Website struct {
	URL   string `json:"url"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewWebsite creates a new Website instance with the provided values
func NewWebsite(url, email, phone string) Website {
	return Website{
		URL:   url,
		Email: email,
		Phone: phone,
	}
}

// SnapshotSummary is the API shape for a stored scrape. The full scraped text
// can be large, so the body is truncated to an excerpt and the original
// length is reported separately.
type SnapshotSummary struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	ContentLength int       `json:"contentLength"`
	Excerpt       string    `json:"excerpt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SnapshotExcerptLength caps the amount of scraped text returned by the API.
const SnapshotExcerptLength = 500

// NewSnapshotSummary creates a SnapshotSummary, truncating content to the excerpt length
func NewSnapshotSummary(id int64, url, content string, createdAt time.Time) SnapshotSummary {
	excerpt := content
	if len(excerpt) > SnapshotExcerptLength {
		excerpt = excerpt[:SnapshotExcerptLength]
	}

	return SnapshotSummary{
		ID:            id,
		URL:           url,
		ContentLength: len(content),
		Excerpt:       excerpt,
		CreatedAt:     createdAt,
	}
}
