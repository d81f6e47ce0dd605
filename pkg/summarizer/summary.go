// Package summarizer provides summary generation for container builds.
package summarizer

import "time"

// Summary contains all data collected during a build.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	Elapsed     time.Duration

	// Where the frames came from
	Input InputInfo

	// Build settings
	Settings Settings

	// Container output details
	Container ContainerInfo
}

// InputInfo describes the frame sources.
type InputInfo struct {
	SourceDir   string // empty when artifacts were not converted
	ArtifactDir string
	Converted   int // frames produced by the converter
}

// Settings contains the build configuration.
type Settings struct {
	Converter        string
	ByteOrder        string
	Workers          int
	StrictResolution bool
	CleanArtifacts   bool
}

// ContainerInfo contains information about the written container.
type ContainerInfo struct {
	Path         string
	Width        int
	Height       int
	FrameCount   int
	FileSize     int64
	ExpectedSize int64
}

// FrameSize returns the payload size of one frame in bytes.
func (c ContainerInfo) FrameSize() int {
	return c.Width * c.Height * 2
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets the frame source information.
func (b *Builder) WithInput(sourceDir, artifactDir string, converted int) *Builder {
	b.summary.Input = InputInfo{
		SourceDir:   sourceDir,
		ArtifactDir: artifactDir,
		Converted:   converted,
	}
	return b
}

// WithSettings sets build settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithContainer sets container output information.
func (b *Builder) WithContainer(info ContainerInfo) *Builder {
	b.summary.Container = info
	return b
}

// WithElapsed sets the build duration.
func (b *Builder) WithElapsed(d time.Duration) *Builder {
	b.summary.Elapsed = d
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
