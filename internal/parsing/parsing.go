// Package parsing implements document text extraction and counterparty code
// table parsing. Plain text passes through directly, PDFs are extracted with
// pdfcpu validation and a plain-text reader, and Word documents degrade to a
// placeholder note since no extraction backend is wired for them.
package parsing

import "io"

// File pairs an uploaded file's name with its content.
type File struct {
	Name string
	Body io.Reader
}

// SupportedFormats lists the file extensions Parse accepts.
func SupportedFormats() []string {
	return []string{".pdf", ".docx", ".doc", ".txt", ".csv", ".tsv"}
}
