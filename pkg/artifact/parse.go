// Package artifact reads and writes the per-frame C source artifacts that an
// image-to-array converter produces: an image descriptor declaring .w and .h,
// and one uint8_t array holding the frame's RGB565 bytes.
package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/user/vidbin/pkg/container"
)

var (
	widthPattern  = regexp.MustCompile(`\.w\s*=\s*(\d+)`)
	heightPattern = regexp.MustCompile(`\.h\s*=\s*(\d+)`)
	arrayPattern  = regexp.MustCompile(`(?s)uint8_t\s+\w+\s*\[\s*\]\s*=\s*\{(.*?)\};`)
	blockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment   = regexp.MustCompile(`//[^\n]*`)
)

// ParseResolution returns the first declared width and height in content.
func ParseResolution(content []byte) (container.Resolution, error) {
	w, err := findDimension(widthPattern, content, "width")
	if err != nil {
		return container.Resolution{}, err
	}
	h, err := findDimension(heightPattern, content, "height")
	if err != nil {
		return container.Resolution{}, err
	}
	return container.NewResolution(w, h)
}

func findDimension(pattern *regexp.Regexp, content []byte, name string) (int, error) {
	m := pattern.FindSubmatch(content)
	if m == nil {
		return 0, fmt.Errorf("%w: %s not found", container.ErrMalformedResolution, name)
	}
	v, err := strconv.ParseUint(string(m[1]), 10, 32)
	if err != nil || v > container.MaxDimension {
		return 0, fmt.Errorf("%w: %s %s exceeds %d",
			container.ErrResolutionOutOfRange, name, m[1], container.MaxDimension)
	}
	return int(v), nil
}

// ParseFramePayload decodes the first uint8_t array literal in content into
// bytes, in source order. Elements may be written in any base Go's integer
// literal syntax accepts (decimal, 0x, 0o or leading 0, 0b). Elements that do
// not parse or fall outside 0..255 are rejected.
func ParseFramePayload(content []byte) ([]byte, error) {
	m := arrayPattern.FindSubmatch(content)
	if m == nil {
		return nil, fmt.Errorf("%w: no uint8_t array literal", container.ErrMissingPixelArray)
	}

	body := blockComment.ReplaceAll(m[1], nil)
	body = lineComment.ReplaceAll(body, nil)

	fields := strings.Split(string(body), ",")
	out := make([]byte, 0, len(fields))
	for i, f := range fields {
		tok := strings.TrimSpace(f)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: element %d (%s) outside byte range",
					container.ErrMissingPixelArray, i, tok)
			}
			return nil, fmt.Errorf("%w: element %d (%q) is not an integer literal",
				container.ErrMissingPixelArray, i, tok)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Parse extracts both the resolution and the payload from content.
func Parse(content []byte) (container.Resolution, []byte, error) {
	res, err := ParseResolution(content)
	if err != nil {
		return container.Resolution{}, nil, err
	}
	payload, err := ParseFramePayload(content)
	if err != nil {
		return container.Resolution{}, nil, err
	}
	return res, payload, nil
}
