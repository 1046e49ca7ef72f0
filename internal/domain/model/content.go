package model

import "time"

// Document is a schemaless JSON document as stored for site settings and
// page content. Writes merge top-level keys into the existing document.
type Document map[string]any

// Page couples a page identifier with its stored content.
type Page struct {
	ID      string
	Content Document
}

// Image is an uploaded asset kept alongside the page content. The data
// field holds the original base64 payload as submitted by the admin UI.
type Image struct {
	ID         string
	FileName   string
	Data       string
	UploadedAt time.Time
	UploadedBy string
}
