package pipeline

import (
	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/rgb565"
)

// DefaultArtifactExt is the file extension of per-frame artifacts.
const DefaultArtifactExt = ".c"

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput contains parameters for producing per-frame artifacts.
type ConvertInput struct {
	Count  int    // Number of frames, named 1..Count
	OutDir string // Directory the artifacts are written to
}

// ConvertResult lists the produced artifacts in frame order.
type ConvertResult struct {
	Artifacts []string // Artifacts[i] belongs to frame i+1
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for reading frame artifacts.
type ExtractInput struct {
	Count int    // Number of frames, named 1..Count
	Dir   string // Directory holding <index><Ext> artifacts
	Ext   string // Artifact extension (default: ".c")

	// Expected, when set, is the resolution every frame must declare. It is
	// required when Count is zero.
	Expected *container.Resolution
}

// ExtractResult contains the validated frames.
type ExtractResult struct {
	Resolution container.Resolution
	Frames     []container.FrameRecord // ascending Index, 1..Count
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frames to pack into a container.
type EncodeInput struct {
	Resolution container.Resolution
	Frames     []container.FrameRecord
	OutputPath string
}

// EncodeResult describes the written container.
type EncodeResult struct {
	Header     container.Header
	OutputPath string
	FileSize   int64
}

// =============================================================================
// Inspect Stage Types
// =============================================================================

// InspectInput contains parameters for reading back a container.
type InspectInput struct {
	Path string // Container to inspect

	// SheetPath, when set, receives a PNG contact sheet of the selected frames.
	SheetPath string
	Frames    []int // 1-based frames to preview (default: the first MaxSheetFrames)
	Columns   int   // Contact sheet columns (default: 4)
	Scale     int   // Pixel scale of each preview (default: 1)
	Order     rgb565.ByteOrder
}

// MaxSheetFrames is the number of frames previewed when none are selected.
const MaxSheetFrames = 16

// FrameInfo describes one frame found in a container.
type FrameInfo struct {
	Index  int    `json:"index"`
	Offset int64  `json:"offset"` // Byte offset of the frame marker
	CRC32  uint32 `json:"crc32"`  // Checksum of the payload
}

// InspectResult describes a decoded container.
type InspectResult struct {
	Header       container.Header `json:"-"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	FrameCount   int              `json:"frame_count"`
	FileSize     int64            `json:"file_size"`
	ExpectedSize int64            `json:"expected_size"`
	Frames       []FrameInfo      `json:"frames"`
	SheetPath    string           `json:"sheet_path,omitempty"`
}
