// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CanonicalDocumentName is the fixed name every loaded document is stored
// under. Loading a new document replaces the previous one.
const CanonicalDocumentName = "doc.pdf"

// DocumentExtension is the only file extension the file dialog offers.
const DocumentExtension = ".pdf"

// LoadDocumentMessage is the marker the backend checks before it indexes the
// stored document.
const LoadDocumentMessage = "File copied successfully"

// Document describes a document copied into the documents directory.
type Document struct {
	// OriginalName is the base name of the file the user selected.
	OriginalName string
	// Name is the canonical name the copy was stored under.
	Name string
	// Path is the full destination path of the copy.
	Path string
}

// LoadDocumentRequest is the body of the notification sent after a document
// has been copied.
type LoadDocumentRequest struct {
	Message         string `json:"message"`
	OriginalName    string `json:"original_name"`
	NewName         string `json:"new_name"`
	DestinationPath string `json:"destination_path"`
}

// NewLoadDocumentRequest builds the notification body for doc.
func NewLoadDocumentRequest(doc Document) LoadDocumentRequest {
	return LoadDocumentRequest{
		Message:         LoadDocumentMessage,
		OriginalName:    doc.OriginalName,
		NewName:         doc.Name,
		DestinationPath: doc.Path,
	}
}
