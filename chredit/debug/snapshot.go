package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-chredit/chredit/character"
	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/render"
)

// TakeSnapshot handles F12 snapshot logic for backends: the composed scene
// at window resolution and the raw render buffer of the character.
func TakeSnapshot(scene *render.Scene, buf *character.Buffer) {
	if scene == nil {
		slog.Warn("No scene available for snapshot")
		return
	}

	if _, err := SaveScenePNGToDir(scene, "chredit_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
	if buf != nil {
		if _, err := SaveImagePNGToDir(buf.RenderImage(), "chredit_character", ""); err != nil {
			slog.Error("Failed to save character snapshot", "error", err)
		}
	}
}

// SaveScenePNGToDir rasterizes the scene at the default window size and saves
// it as PNG with a timestamp to a specific directory.
func SaveScenePNGToDir(scene *render.Scene, baseName, directory string) (string, error) {
	img := scene.Rasterize(display.DefaultWindowWidth, display.DefaultWindowHeight)
	return SaveImagePNGToDir(img, baseName, directory)
}

// SaveImagePNGToDir saves an image as PNG with timestamp to a specific
// directory, the working directory if empty. It returns the written path.
func SaveImagePNGToDir(img image.Image, baseName, directory string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)

	// Determine output directory
	var outputDir string
	if directory != "" {
		outputDir = directory
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %v", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %v", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %v", err)
	}

	bounds := img.Bounds()
	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()), "format", "PNG")
	return filePath, nil
}
