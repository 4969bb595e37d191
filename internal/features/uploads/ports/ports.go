// Package ports defines the boundary of the uploads feature.
package ports

import "context"

// Asset is one file to upload: its name and raw content.
type Asset struct {
	// Filename is the original name, used for the multipart part.
	Filename string
	// Content is the raw file bytes.
	Content []byte
}

// Uploader pushes a single asset to the media host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, asset Asset) (string, error)
}
