package ports

import (
	"context"
	"errors"
)

// ArtifactProducer turns the source image of one frame into a C array
// artifact that the extract stage can parse.
type ArtifactProducer interface {
	// Produce converts frame index (1-based) and writes its artifact into
	// outDir. It returns the path of the written artifact.
	Produce(ctx context.Context, index int, outDir string) (string, error)
}

// ArtifactProducerFunc is a function adapter for ArtifactProducer.
type ArtifactProducerFunc func(ctx context.Context, index int, outDir string) (string, error)

// Produce implements ArtifactProducer.
func (f ArtifactProducerFunc) Produce(ctx context.Context, index int, outDir string) (string, error) {
	return f(ctx, index, outDir)
}

// ErrConvertFailed is wrapped by producers when a frame could not be converted.
var ErrConvertFailed = errors.New("convert: artifact producer failed")
