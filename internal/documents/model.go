package documents

import "time"

// Document represents an uploaded legal document owned by a firm or guest.
type Document struct {
	ID              string
	OwnerID         string
	FileName        string
	MimeType        string
	SizeBytes       int64
	StorageProvider string
	StorageKey      string
	DocumentType    string
	CreatedAt       time.Time
}
