package monitordb

import "time"

// Website is a row in the websites table: a monitored URL and its alert contacts.
type Website struct {
	URL   string `db:"url"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}

// Snapshot is a row in the website_snapshots table: the text content captured
// by one successful scrape.
type Snapshot struct {
	ID             int64     `db:"id"`
	URL            string    `db:"url"`
	ScrapedContent string    `db:"scraped_content"`
	CreatedAt      time.Time `db:"created_at"`
}
