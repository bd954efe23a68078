package colour

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/halftone/internal/linalg"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func nearVec(a, b Vec3, tol float64) bool {
	return near(a[0], b[0], tol) && near(a[1], b[1], tol) && near(a[2], b[2], tol)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Vec3
		wantErr bool
	}{
		{name: "mid grey", input: "#808080", want: Vec3{128.0 / 255, 128.0 / 255, 128.0 / 255}},
		{name: "white upper case", input: "#FFFFFF", want: Vec3{1, 1, 1}},
		{name: "black", input: "#000000", want: Vec3{0, 0, 0}},
		{name: "mixed", input: "#ff8000", want: Vec3{1, 128.0 / 255, 0}},
		{name: "missing hash", input: "808080", wantErr: true},
		{name: "too short", input: "#80808", wantErr: true},
		{name: "too long", input: "#8080800", wantErr: true},
		{name: "shorthand", input: "#fff", wantErr: true},
		{name: "non hex", input: "#80808g", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedHex) {
					t.Errorf("ParseHex(%q) error = %v, want ErrMalformedHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  Vec3
		want string
	}{
		{name: "primary", rgb: Vec3{1, 0, 0.5}, want: "#ff0080"},
		{name: "clamped", rgb: Vec3{-1, 2, 0}, want: "#00ff00"},
		{name: "grey", rgb: Vec3{128.0 / 255, 128.0 / 255, 128.0 / 255}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHex(tt.rgb); got != tt.want {
				t.Errorf("FormatHex(%v) = %q, want %q", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestTransferEndpoints(t *testing.T) {
	if got := EncodeChannel(0); got != 0 {
		t.Errorf("EncodeChannel(0) = %v, want 0", got)
	}
	if got := EncodeChannel(1); !near(got, 1, 1e-12) {
		t.Errorf("EncodeChannel(1) = %v, want 1", got)
	}
	if got := DecodeChannel(0); got != 0 {
		t.Errorf("DecodeChannel(0) = %v, want 0", got)
	}
	if got := DecodeChannel(1); !near(got, 1, 1e-12) {
		t.Errorf("DecodeChannel(1) = %v, want 1", got)
	}
	// Linear segment below the threshold.
	if got := EncodeChannel(0.001); !near(got, 0.01292, 1e-15) {
		t.Errorf("EncodeChannel(0.001) = %v, want 0.01292", got)
	}
}

func TestTransferRoundTrip(t *testing.T) {
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		v := Vec3{x, 1 - x, x / 2}
		if got := SRGBDecode(SRGBEncode(v)); !nearVec(got, v, 1e-9) {
			t.Errorf("SRGBDecode(SRGBEncode(%v)) = %v", v, got)
		}
		if got := SRGBEncode(SRGBDecode(v)); !nearVec(got, v, 1e-9) {
			t.Errorf("SRGBEncode(SRGBDecode(%v)) = %v", v, got)
		}
	}
}

func TestDeriveRGBToXYZ(t *testing.T) {
	tests := []struct {
		name      string
		primaries Primaries
		want      linalg.Mat
	}{
		{
			name:      "srgb",
			primaries: SRGBPrimaries,
			want: linalg.Mat{
				{0.4124, 0.3576, 0.1805},
				{0.2126, 0.7152, 0.0722},
				{0.0193, 0.1192, 0.9505},
			},
		},
		{
			name:      "display p3",
			primaries: DisplayP3Primaries,
			want: linalg.Mat{
				{0.4866, 0.2657, 0.1982},
				{0.2290, 0.6917, 0.0793},
				{0.0000, 0.0451, 1.0439},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveRGBToXYZ(tt.primaries)
			if err != nil {
				t.Fatalf("DeriveRGBToXYZ() unexpected error: %v", err)
			}
			for i := range tt.want {
				for j := range tt.want[i] {
					if !near(got[i][j], tt.want[i][j], 1e-3) {
						t.Errorf("DeriveRGBToXYZ()[%d][%d] = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
			// RGB white maps to Y = 1.
			if y := got[1][0] + got[1][1] + got[1][2]; !near(y, 1, 1e-12) {
				t.Errorf("white Y = %v, want 1", y)
			}
		})
	}
}

func TestDeriveRGBToXYZSingular(t *testing.T) {
	p := SRGBPrimaries
	p.Red = Chromaticity{}
	p.Green = Chromaticity{}
	p.Blue = Chromaticity{}
	if _, err := DeriveRGBToXYZ(p); !errors.Is(err, linalg.ErrSingular) {
		t.Errorf("DeriveRGBToXYZ() error = %v, want ErrSingular", err)
	}
}

func TestMatrixInverseIdentity(t *testing.T) {
	c := Default()
	prod, err := linalg.MulMatMat(c.RGBToXYZ(), c.XYZToRGB())
	if err != nil {
		t.Fatalf("MulMatMat() unexpected error: %v", err)
	}
	for i := range prod {
		for j := range prod[i] {
			want := 0.0
			if i == j {
				want = 1
			}
			if !near(prod[i][j], want, 1e-9) {
				t.Errorf("M·M⁻¹[%d][%d] = %v, want %v", i, j, prod[i][j], want)
			}
		}
	}
}

func TestOklabKnownValues(t *testing.T) {
	tests := []struct {
		name string
		srgb Vec3
		want Vec3
	}{
		{name: "white", srgb: Vec3{1, 1, 1}, want: Vec3{1, 0, 0}},
		{name: "black", srgb: Vec3{0, 0, 0}, want: Vec3{0, 0, 0}},
		{name: "red", srgb: Vec3{1, 0, 0}, want: Vec3{0.62796, 0.22486, 0.12585}},
		{name: "blue", srgb: Vec3{0, 0, 1}, want: Vec3{0.45201, -0.03246, -0.31153}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertVec(tt.srgb, SRGB, Oklab)
			if err != nil {
				t.Fatalf("ConvertVec() unexpected error: %v", err)
			}
			if !nearVec(got, tt.want, 2e-3) {
				t.Errorf("ConvertVec(%v, sRGB, Oklab) = %v, want %v", tt.srgb, got, tt.want)
			}
		})
	}
}

func TestOklabToOklch(t *testing.T) {
	tests := []struct {
		name string
		lab  Vec3
		want Vec3
	}{
		{name: "neutral", lab: Vec3{0.5, 0, 0}, want: Vec3{0.5, 0, 0}},
		{name: "positive a", lab: Vec3{0.5, 0.1, 0}, want: Vec3{0.5, 0.1, 0}},
		{name: "positive b", lab: Vec3{0.5, 0, 0.1}, want: Vec3{0.5, 0.1, math.Pi / 2}},
		{name: "negative a", lab: Vec3{0.5, -0.1, 0}, want: Vec3{0.5, 0.1, math.Pi}},
		{name: "negative b", lab: Vec3{0.5, 0, -0.1}, want: Vec3{0.5, 0.1, -math.Pi / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OklabToOklch(tt.lab)
			if !nearVec(got, tt.want, 1e-15) {
				t.Errorf("OklabToOklch(%v) = %v, want %v", tt.lab, got, tt.want)
			}
			if back := OklchToOklab(got); !nearVec(back, tt.lab, 1e-15) {
				t.Errorf("OklchToOklab(%v) = %v, want %v", got, back, tt.lab)
			}
		})
	}
}

func TestSRGBOklchRoundTrip(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				rgb := Vec3{r, g, b}
				lch, err := ConvertVec(rgb, SRGB, Oklch)
				if err != nil {
					t.Fatalf("ConvertVec(%v, sRGB, Oklch) unexpected error: %v", rgb, err)
				}
				back, err := ConvertVec(lch, Oklch, SRGB)
				if err != nil {
					t.Fatalf("ConvertVec(%v, Oklch, sRGB) unexpected error: %v", lch, err)
				}
				if !nearVec(back, rgb, 1e-6) {
					t.Errorf("round trip %v -> %v -> %v", rgb, lch, back)
				}
			}
		}
	}
}
