package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/halftone/internal/colour"
	"github.com/jmylchreest/halftone/internal/config"
)

const swatchWidth = 10

// printer writes command results in the configured format.
type printer struct {
	w       io.Writer
	format  string
	profile termenv.Profile
}

func (a *app) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{
		w:       w,
		format:  a.config.Format,
		profile: previewProfile(a.config.Preview, w),
	}
}

// previewProfile picks the swatch colour profile. Ascii disables swatches.
func previewProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.PreviewNever:
		return termenv.Ascii
	case config.PreviewAlways:
		return termenv.TrueColor
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// print encodes v as JSON or YAML, or renders table for the table format.
func (p *printer) print(v any, table func() *Table) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	if table == nil {
		return fmt.Errorf("no table layout for %T", v)
	}
	_, err := io.WriteString(p.w, table().Render())
	return err
}

// swatches reports whether tables get a preview column.
func (p *printer) swatches() bool { return p.profile != termenv.Ascii }

// swatch renders an sRGB colour block labelled with its hex.
func (p *printer) swatch(srgb colour.Vec3) string {
	return colour.Swatch(srgb, "", swatchWidth, p.profile)
}

// withPreview appends a Preview header when swatches are enabled.
func (p *printer) withPreview(headers ...string) []string {
	if p.swatches() {
		return append(headers, "Preview")
	}
	return headers
}

// row appends a swatch cell when swatches are enabled.
func (p *printer) row(srgb colour.Vec3, cells ...string) []string {
	if p.swatches() {
		return append(cells, p.swatch(srgb))
	}
	return cells
}

func formatVec(v colour.Vec3) string {
	return fmt.Sprintf("%.4f %.4f %.4f", v[0], v[1], v[2])
}
