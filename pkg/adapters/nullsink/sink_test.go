package nullsink

import (
	"image"
	"testing"
)

func TestSink(t *testing.T) {
	sink := New()

	if sink.Enabled() {
		t.Error("expected Enabled to return false")
	}
	if err := sink.SaveManifestJSON([]byte("{}")); err != nil {
		t.Errorf("SaveManifestJSON: %v", err)
	}
	if err := sink.SaveFramePreview(1, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Errorf("SaveFramePreview: %v", err)
	}
}
