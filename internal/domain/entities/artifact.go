package entities

import "time"

// Artifact references a stored rendered document.
type Artifact struct {
	URL        string    `json:"url"`
	ObjectName string    `json:"object_name"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}
