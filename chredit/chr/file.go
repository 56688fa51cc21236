package chr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/go-chredit/chredit/character"
)

// FileName is the fixed name of the CHR file.
const FileName = "data.chr"

// ErrFileUnavailable is returned when the CHR file cannot be opened or read.
var ErrFileUnavailable = errors.New("file unavailable")

// ReadFile reads up to FileSize bytes of a CHR file.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, ErrFileUnavailable, err)
	}
	defer file.Close()

	data := make([]byte, FileSize)
	n, err := io.ReadFull(file, data)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read %s: %w: %v", path, ErrFileUnavailable, err)
	}
	if n < FileSize {
		slog.Warn("CHR file is truncated, missing tiles read as blank", "path", path, "size", n, "expected", FileSize)
	}

	return data[:n], nil
}

// Load decodes the CHR file at path into buf. A missing or unreadable file
// leaves buf untouched and is not an error.
func Load(path string, buf *character.Buffer) error {
	data, err := ReadFile(path)
	if errors.Is(err, ErrFileUnavailable) {
		slog.Info("No character to load", "path", path, "reason", err)
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("Reading character from file", "path", path)
	if err := buf.Load(Decode(data)); err != nil {
		return fmt.Errorf("failed to load character: %w", err)
	}
	slog.Info("Finished reading character file", "path", path, "bytes", len(data))

	return nil
}

// Save encodes buf and writes it to path, replacing any existing file.
func Save(path string, buf *character.Buffer) error {
	data, err := Encode(buf.Export())
	if err != nil {
		return err
	}

	slog.Info("Writing character to file", "path", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w: %v", path, ErrFileUnavailable, err)
	}
	slog.Info("Finished writing character file", "path", path, "bytes", len(data))

	return nil
}
