package filestorage

import (
	"mime/multipart"
)

// Subdirectories used under the storage root.
const (
	SubdirResources  = "resources"
	SubdirThumbnails = "thumbnails"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores a file in a subdirectory under the storage
	// root and returns its accessible path
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
