package encode

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/user/vidbin/pkg/adapters/logger"
	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/mocks"
	"github.com/user/vidbin/pkg/pipeline"
)

const outPath = "/out/video.bin"

func frames(res container.Resolution, n int) []container.FrameRecord {
	out := make([]container.FrameRecord, n)
	for i := range out {
		out[i] = container.FrameRecord{
			Index:   i + 1,
			Payload: bytes.Repeat([]byte{byte(i + 1)}, res.FrameSize()),
		}
	}
	return out
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 4, Height: 4}

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: res,
		Frames:     frames(res, 3),
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedSize := container.Size(res, 3)
	if result.FileSize != expectedSize {
		t.Errorf("expected file size %d, got %d", expectedSize, result.FileSize)
	}
	if result.Header.FrameCount != 3 {
		t.Errorf("expected frame count 3, got %d", result.Header.FrameCount)
	}

	data, ok := fs.GetFile(outPath)
	if !ok {
		t.Fatal("expected container at output path")
	}
	if int64(len(data)) != expectedSize {
		t.Errorf("expected %d bytes on disk, got %d", expectedSize, len(data))
	}
	if _, ok := fs.GetFile(outPath + TempSuffix); ok {
		t.Error("expected temporary file to be renamed away")
	}

	decoded, err := container.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, payload := range decoded.Frames {
		if payload[0] != byte(i+1) {
			t.Errorf("frame %d: expected fill %d, got %d", i+1, i+1, payload[0])
		}
	}
}

func TestStage_Execute_SingleWrite(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 2, Height: 2}

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: res,
		Frames:     frames(res, 5),
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fs.Writes) != 1 || fs.Writes[0] != outPath+TempSuffix {
		t.Errorf("expected one write to the temp path, got %v", fs.Writes)
	}
	if len(fs.Renames) != 1 || fs.Renames[0] != [2]string{outPath + TempSuffix, outPath} {
		t.Errorf("expected one rename into place, got %v", fs.Renames)
	}
}

func TestStage_Execute_Empty(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: container.Resolution{Width: 128, Height: 160},
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile(outPath)
	expected := []byte{0x00, 0x80, 0x00, 0xA0, 0x00, 0x00}
	if !bytes.Equal(data, expected) {
		t.Errorf("expected % x, got % x", expected, data)
	}
	if result.FileSize != 6 {
		t.Errorf("expected 6 bytes, got %d", result.FileSize)
	}
}

func TestStage_Execute_PayloadLength(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 2, Height: 2}

	input := frames(res, 3)
	input[1].Payload = input[1].Payload[:3]

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: res,
		Frames:     input,
		OutputPath: outPath,
	})
	if !errors.Is(err, container.ErrPayloadLength) {
		t.Fatalf("expected ErrPayloadLength, got %v", err)
	}
	if len(fs.Writes) != 0 {
		t.Errorf("expected nothing to be written, got %v", fs.Writes)
	}
}

func TestStage_Execute_OutOfOrder(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 1, Height: 1}

	input := frames(res, 3)
	input[0], input[1] = input[1], input[0]

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: res,
		Frames:     input,
		OutputPath: outPath,
	})
	var fe *container.FrameError
	if !errors.As(err, &fe) || fe.Field != "index" {
		t.Errorf("expected index error, got %v", err)
	}
}

func TestStage_Execute_RenameFailureRemovesTemp(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.RenameFunc = func(oldPath, newPath string) error {
		return errors.New("disk full")
	}
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 1, Height: 1}

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: res,
		Frames:     frames(res, 1),
		OutputPath: outPath,
	})
	if !errors.Is(err, container.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}

	if _, ok := fs.GetFile(outPath); ok {
		t.Error("expected no file at output path")
	}
	if _, ok := fs.GetFile(outPath + TempSuffix); ok {
		t.Error("expected temporary file to be removed")
	}
}

func TestStage_Execute_WriteFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only file system")
	}
	stage := NewStage(fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Resolution: container.Resolution{Width: 1, Height: 1},
		OutputPath: outPath,
	})
	if !errors.Is(err, container.ErrIOFailure) {
		t.Errorf("expected ErrIOFailure, got %v", err)
	}
	if len(fs.Renames) != 0 {
		t.Error("expected no rename after a failed write")
	}
}

func TestStage_Execute_NoOutputPath(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{})
	if !errors.Is(err, container.ErrIOFailure) {
		t.Errorf("expected ErrIOFailure, got %v", err)
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(fs, logger.NewNoop())
	res := container.Resolution{Width: 1, Height: 1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.EncodeInput{
		Resolution: res,
		Frames:     frames(res, 2),
		OutputPath: outPath,
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
	if len(fs.Writes) != 0 {
		t.Error("expected nothing to be written")
	}
}
