package file

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrNoThumbnail = errors.New("thumbnail not available for this file")
)

// File is an uploaded blob, typically a mall photo. MallID is set when the
// upload is attached to a mall's gallery.
type File struct {
	ID            string
	UserID        string
	MallID        *int64
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for downloading the file.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public path for the file's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
