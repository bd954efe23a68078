package cli

import (
	"strconv"

	"github.com/jmylchreest/halftone/internal/colour"
)

// toneRow describes one sampled Oklch tone.
type toneRow struct {
	Index      int         `json:"index" yaml:"index"`
	T          float64     `json:"t" yaml:"t"`
	Oklch      colour.Vec3 `json:"oklch" yaml:"oklch,flow"`
	Hex        string      `json:"hex" yaml:"hex"`
	GamutError float64     `json:"gamut_error" yaml:"gamut_error"`
}

// describeTones converts tones to hex and measures their gamut error.
func (a *app) describeTones(tones []colour.Vec3, ts []float64) ([]toneRow, error) {
	rows := make([]toneRow, len(tones))
	for i, lch := range tones {
		hex, err := a.conv.Convert(colour.NewValue(colour.Oklch, lch), colour.StringRGB)
		if err != nil {
			return nil, err
		}
		lab := colour.OklchToOklab(lch)
		e, err := a.conv.GamutError(lab)
		if err != nil {
			return nil, err
		}
		if e > 0 {
			a.logger.Debug("tone outside gamut", "index", i, "error", e)
		}
		rows[i] = toneRow{Index: i, T: ts[i], Oklch: lch, Hex: hex.Hex, GamutError: e}
	}
	return rows, nil
}

// toneTable renders tone rows with an optional preview column.
func toneTable(p *printer, rows []toneRow) *Table {
	t := NewTable(p.withPreview("#", "t", "Oklch", "Hex", "Gamut error"))
	for _, r := range rows {
		srgb, _ := colour.ParseHex(r.Hex)
		t.AddRow(p.row(srgb,
			strconv.Itoa(r.Index),
			strconv.FormatFloat(r.T, 'f', 4, 64),
			formatVec(r.Oklch),
			r.Hex,
			strconv.FormatFloat(r.GamutError, 'f', 6, 64),
		))
	}
	return t
}
