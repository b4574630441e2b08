package domain

import "time"

// Document is an uploaded study document. ExtractedText is produced by the
// upload pipeline; Summary doubles as the cached generated summary and is
// empty until one has been generated.
type Document struct {
	ID            string
	UserID        string
	Filename      string
	OriginalName  string
	FileSize      int64
	ExtractedText string
	Summary       string
	UploadDate    time.Time
}
