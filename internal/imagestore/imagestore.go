// Package imagestore provides storage for product images.
package imagestore

import "context"

// Image is a stored image: its public URL and the opaque handle used to delete it.
type Image struct {
	URL string
	ID  string
}

// ImageStore uploads and deletes image blobs.
// Replacing an image is an upload followed by a delete of the previous handle, orchestrated by the caller.
type ImageStore interface {
	// Upload stores the image and returns its URL and handle.
	Upload(ctx context.Context, data []byte, fileName string) (Image, error)

	// Delete removes the image identified by id.
	Delete(ctx context.Context, id string) error
}
