package artifact

import (
	"bytes"
	"fmt"

	"github.com/user/vidbin/pkg/container"
)

const bytesPerLine = 16

// Options controls how Render writes an artifact.
type Options struct {
	// Name is the C identifier of the image descriptor. The pixel array is
	// named Name + "_map".
	Name string

	// ColorFormat is written into the descriptor for human readers.
	ColorFormat string
}

// Render writes an artifact in the layout ParseResolution and
// ParseFramePayload read: a uint8_t pixel array followed by an image
// descriptor declaring .w and .h.
func Render(res container.Resolution, payload []byte, opts Options) ([]byte, error) {
	if len(payload) != res.FrameSize() {
		return nil, fmt.Errorf("%w: %d bytes for %s", container.ErrPayloadLength, len(payload), res)
	}
	name := opts.Name
	if name == "" {
		name = "frame"
	}
	cf := opts.ColorFormat
	if cf == "" {
		cf = "LV_COLOR_FORMAT_RGB565_SWAPPED"
	}

	var buf bytes.Buffer
	buf.Grow(len(payload)*6 + 512)

	fmt.Fprintf(&buf, "#include \"lvgl.h\"\n\n")
	fmt.Fprintf(&buf, "const LV_ATTRIBUTE_MEM_ALIGN uint8_t %s_map[] = {\n", name)
	for i, b := range payload {
		if i%bytesPerLine == 0 {
			buf.WriteString("  ")
		}
		fmt.Fprintf(&buf, "0x%02x,", b)
		if i%bytesPerLine == bytesPerLine-1 || i == len(payload)-1 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("};\n\n")

	fmt.Fprintf(&buf, "const lv_image_dsc_t %s = {\n", name)
	buf.WriteString("  .header.magic = LV_IMAGE_HEADER_MAGIC,\n")
	fmt.Fprintf(&buf, "  .header.cf = %s,\n", cf)
	fmt.Fprintf(&buf, "  .header.w = %d,\n", res.Width)
	fmt.Fprintf(&buf, "  .header.h = %d,\n", res.Height)
	fmt.Fprintf(&buf, "  .header.stride = %d,\n", int(res.Width)*container.BytesPerPixel)
	fmt.Fprintf(&buf, "  .data_size = sizeof(%s_map),\n", name)
	fmt.Fprintf(&buf, "  .data = %s_map,\n", name)
	buf.WriteString("};\n")

	return buf.Bytes(), nil
}
