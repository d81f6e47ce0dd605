package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion sets the tool version printed in the footer.
func WithVersion(v string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Build Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))

	c := s.Container
	fmt.Fprintf(&b, "## %s\n\n", t("Container"))
	b.WriteString("| | |\n|---|---|\n")
	row(&b, t("Output"), "`"+c.Path+"`")
	row(&b, t("Resolution"), fmt.Sprintf("%dx%d", c.Width, c.Height))
	row(&b, t("Frames"), fmt.Sprintf("%d", c.FrameCount))
	row(&b, t("Frame Size"), formatBytes(int64(c.FrameSize())))
	row(&b, t("File Size"), formatBytes(c.FileSize))
	if c.ExpectedSize != c.FileSize {
		row(&b, t("Expected Size"), fmt.Sprintf("%s (%s)", formatBytes(c.ExpectedSize), t("mismatch")))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	b.WriteString("| | |\n|---|---|\n")
	if s.Input.SourceDir != "" {
		row(&b, t("Source Directory"), "`"+s.Input.SourceDir+"`")
		row(&b, t("Converted Frames"), fmt.Sprintf("%d", s.Input.Converted))
	}
	row(&b, t("Artifact Directory"), "`"+s.Input.ArtifactDir+"`")
	b.WriteString("\n")

	st := s.Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	b.WriteString("| | |\n|---|---|\n")
	row(&b, t("Converter"), orDash(st.Converter))
	row(&b, t("Byte Order"), orDash(st.ByteOrder))
	row(&b, t("Workers"), fmt.Sprintf("%d", st.Workers))
	row(&b, t("Strict Resolution"), yesNo(t, st.StrictResolution))
	row(&b, t("Clean Artifacts"), yesNo(t, st.CleanArtifacts))
	if s.Elapsed > 0 {
		row(&b, t("Elapsed"), s.Elapsed.Round(time.Millisecond).String())
	}
	b.WriteString("\n")

	if f.version != "" {
		fmt.Fprintf(&b, "---\n\nvidbin %s\n", f.version)
	}

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("yes")
	}
	return t("no")
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
