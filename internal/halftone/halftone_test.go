package halftone

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/halftone/internal/colour"
)

func TestSampleIntervals(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		useCos bool
		want   []float64
	}{
		{
			name: "reversed linear",
			n:    5,
			want: []float64{1, 5.0 / 6, 4.0 / 6, 3.0 / 6, 2.0 / 6, 1.0 / 6, 0},
		},
		{
			name:   "cosine",
			n:      1,
			useCos: true,
			want:   []float64{1, math.Cos(math.Pi / 4), math.Cos(math.Pi / 2)},
		},
		{
			name: "no half tones",
			n:    0,
			want: []float64{1, 0},
		},
		{
			name: "negative",
			n:    -1,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleIntervals(tt.n, tt.useCos)
			if len(got) != len(tt.want) {
				t.Fatalf("SampleIntervals(%d, %v) len = %d, want %d", tt.n, tt.useCos, len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("SampleIntervals(%d, %v)[%d] = %v, want %v", tt.n, tt.useCos, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSampleIntervalsDecreasing(t *testing.T) {
	for _, useCos := range []bool{true, false} {
		ts := SampleIntervals(9, useCos)
		for i := 1; i < len(ts); i++ {
			if ts[i] >= ts[i-1] {
				t.Errorf("useCos=%v: interval %d = %v not below %v", useCos, i, ts[i], ts[i-1])
			}
		}
	}
}

func TestSettingsIntervalsExponent(t *testing.T) {
	s := DefaultSettings()
	s.Cos = false
	s.Count = 2
	s.Exponent = 2
	want := []float64{1, 4.0 / 9, 1.0 / 9, 0}
	got := s.Intervals()
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Intervals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Settings) {}},
		{name: "k too large", modify: func(s *Settings) { s.K = 1.5 }, wantErr: true},
		{name: "k nan", modify: func(s *Settings) { s.K = math.NaN() }, wantErr: true},
		{name: "negative count", modify: func(s *Settings) { s.Count = -1 }, wantErr: true},
		{name: "count too large", modify: func(s *Settings) { s.Count = MaxCount + 1 }, wantErr: true},
		{name: "zero exponent", modify: func(s *Settings) { s.Exponent = 0 }, wantErr: true},
		{name: "negative chroma", modify: func(s *Settings) { s.Dark[1] = -0.1 }, wantErr: true},
		{name: "infinite light", modify: func(s *Settings) { s.Light[0] = math.Inf(1) }, wantErr: true},
		{name: "k lower bound", modify: func(s *Settings) { s.K = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() error = %v, want ErrInvalidSettings", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	s := DefaultSettings()
	s.Light = colour.Vec3{0.8, 0.1, 1.0}
	s.Dark = colour.Vec3{0.3, 0.05, 0.5}
	s.K = 0.5

	set, err := Generate(s)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if set.Len() != s.Count+2 {
		t.Fatalf("Generate() len = %d, want %d", set.Len(), s.Count+2)
	}

	// Intervals run from 1 to 0, so the first tone is Light and the last Dark.
	first, _ := set.At(0)
	last, _ := set.At(set.Len() - 1)
	if math.Abs(first[0]-s.Light[0]) > 1e-9 || math.Abs(first[1]-s.Light[1]) > 1e-9 {
		t.Errorf("first tone = %v, want %v", first, s.Light)
	}
	if math.Abs(last[0]-s.Dark[0]) > 1e-9 || math.Abs(last[1]-s.Dark[1]) > 1e-9 {
		t.Errorf("last tone = %v, want %v", last, s.Dark)
	}

	set.All()(func(i int, tone colour.Vec3) bool {
		want := colour.Interpolate(s.Dark, s.Light, s.Intervals()[i], s.K)
		if tone != want {
			t.Errorf("tone %d = %v, want %v", i, tone, want)
		}
		return true
	})
}

func TestGenerateInvalid(t *testing.T) {
	s := DefaultSettings()
	s.K = 2
	if _, err := Generate(s); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Generate() error = %v, want ErrInvalidSettings", err)
	}
}

func TestGenerateDefaultsNeutral(t *testing.T) {
	set, err := Generate(DefaultSettings())
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	set.All()(func(i int, tone colour.Vec3) bool {
		if tone[1] != 0 {
			t.Errorf("tone %d chroma = %v, want 0", i, tone[1])
		}
		if tone[0] < 0.25 || tone[0] > 0.5 {
			t.Errorf("tone %d lightness = %v, want within [0.25, 0.5]", i, tone[0])
		}
		return true
	})
}

func TestHalfLight(t *testing.T) {
	got := HalfLight(colour.Vec3{0.8, 0.1, 2})
	if want := (colour.Vec3{0.4, 0.1, 2}); got != want {
		t.Errorf("HalfLight() = %v, want %v", got, want)
	}
}

func TestSet(t *testing.T) {
	tones := []colour.Vec3{{0.2, 0, 0}, {0.4, 0, 0}}
	s := NewSet("shadow", tones)
	tones[0][0] = 1

	if s.Name() != "shadow" {
		t.Errorf("Name() = %q, want %q", s.Name(), "shadow")
	}
	s.Rename("rim")
	if s.Name() != "rim" {
		t.Errorf("Name() after Rename = %q, want %q", s.Name(), "rim")
	}

	got, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0) unexpected error: %v", err)
	}
	if got[0] != 0.2 {
		t.Errorf("At(0) = %v, want tones copied at creation", got)
	}
	if _, err := s.At(2); err == nil {
		t.Error("At(2) expected error, got nil")
	}

	out := s.Tones()
	out[1][0] = 1
	if again, _ := s.At(1); again[0] != 0.4 {
		t.Errorf("Tones() returned shared storage")
	}
}

func TestFromHex(t *testing.T) {
	set, err := FromHex("greys", []string{"#000000", "#ffffff"}, colour.Default())
	if err != nil {
		t.Fatalf("FromHex() unexpected error: %v", err)
	}
	if set.Len() != 2 || set.Name() != "greys" {
		t.Fatalf("FromHex() = %q with %d tones", set.Name(), set.Len())
	}
	white, _ := set.At(1)
	if math.Abs(white[0]-1) > 1e-3 {
		t.Errorf("white lightness = %v, want 1", white[0])
	}

	if _, err := FromHex("bad", []string{"#zzzzzz"}, colour.Default()); !errors.Is(err, colour.ErrMalformedHex) {
		t.Errorf("FromHex() error = %v, want ErrMalformedHex", err)
	}
}
