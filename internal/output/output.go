// Package output serialises rendered frames.
package output

import "github.com/AnyUserName/textart-cli/internal/art"

// Writer serialises a frame in one format.
type Writer interface {
	// Format returns the format name (e.g. "txt", "ans").
	Format() string

	// Encode converts the frame to bytes.
	Encode(f *art.Frame) ([]byte, error)

	// Extension returns the file extension without dot.
	Extension() string
}
