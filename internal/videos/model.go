package videos

import "time"

// StoredVideo describes one uploaded clip in the education bucket.
type StoredVideo struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	SizeBytes int64     `json:"size_bytes"`
	Updated   time.Time `json:"updated"`
}
