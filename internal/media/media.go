// Package media lists and stores the images admins can pick for the property and rooms.
package media

import (
	"context"
	"errors"
	"io"
)

var ErrUploadUnsupported = errors.New("image upload not configured")

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Gallery interface {
	// List returns public image URLs in a stable order.
	List(ctx context.Context) ([]string, error)
	// Upload stores an image and returns its public URL.
	Upload(ctx context.Context, u Upload) (string, error)
}

// StaticGallery serves a fixed list of bundled images.
type StaticGallery struct {
	Images []string
}

func (g StaticGallery) List(context.Context) ([]string, error) {
	return append([]string(nil), g.Images...), nil
}

func (StaticGallery) Upload(context.Context, Upload) (string, error) {
	return "", ErrUploadUnsupported
}
