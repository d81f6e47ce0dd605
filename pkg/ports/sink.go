package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveManifestJSON saves the container manifest (header and frame sizes) as JSON.
	SaveManifestJSON(data []byte) error

	// SaveFramePreview saves a decoded frame as an image.
	SaveFramePreview(index int, img image.Image) error
}
