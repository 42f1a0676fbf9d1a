package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Texter is implemented by every report.
type Texter interface {
	Text() string
}

// Render writes v to w as "text" or "yaml".
func Render(w io.Writer, format string, v Texter) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, v.Text())
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Reports renders a list of region reports plus their totals.
type Reports []RegionReport

// Text renders every report in order, then the totals when there are
// several.
func (rs Reports) Text() string {
	var out string
	for _, r := range rs {
		out += r.Text()
	}
	if len(rs) > 1 {
		out += Totals(rs).Text()
	}

	return out
}
