package ui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	fynestorage "fyne.io/fyne/v2/storage"
)

// decodeImageURI reads a dropped file and decodes it as a field background.
func decodeImageURI(uri fyne.URI) (image.Image, error) {
	reader, err := fynestorage.Reader(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri.Name(), err)
	}
	defer reader.Close()
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", uri.Name(), err)
	}
	return img, nil
}
