package submission

import (
	"time"

	"github.com/google/uuid"
)

// Submission is an accepted artist submission. Held in memory only; the
// storefront acknowledges submissions, it does not manage them.
type Submission struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Description string      `json:"description"`
	Images      []ImageInfo `json:"images"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// ImageInfo is the verified metadata of one submitted artwork image.
type ImageInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// File is one uploaded artwork file, already read into memory.
type File struct {
	Filename string
	Content  []byte
}
