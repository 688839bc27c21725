package fakedata

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// PictureName is the file name the upload shows in the confirmation modal
const PictureName = "image.png"

//go:embed assets/image.png
var picture []byte

// WritePicture - writes the bundled picture into dir and returns its path
func WritePicture(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create assets directory: %w", err)
	}
	path := filepath.Join(dir, PictureName)
	if err := os.WriteFile(path, picture, 0644); err != nil {
		return "", fmt.Errorf("failed to write picture: %w", err)
	}
	return path, nil
}
