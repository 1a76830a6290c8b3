package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/mres/pkg/eng"
	mreserrors "github.com/matzehuels/mres/pkg/errors"
)

func TestNewMetalResult(t *testing.T) {
	got, err := NewMetalResult("metal1", 160, 1, 0.84375)
	if err != nil {
		t.Fatalf("NewMetalResult() error = %v", err)
	}
	want := MetalResult{
		Name:       "metal1",
		Width:      eng.Value{Magnitude: 160, Prefix: "n"},
		Length:     eng.Value{Magnitude: 1, Prefix: "u"},
		Resistance: eng.Value{Magnitude: 843.75, Prefix: "m"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewMetalResult() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMetalResultBoundaries(t *testing.T) {
	got, err := NewMetalResult("m", 1000, 1000, 1000)
	if err != nil {
		t.Fatalf("NewMetalResult() error = %v", err)
	}
	if got.Width != (eng.Value{Magnitude: 1, Prefix: "u"}) {
		t.Errorf("Width = %+v, want 1 u", got.Width)
	}
	if got.Length != (eng.Value{Magnitude: 1, Prefix: "m"}) {
		t.Errorf("Length = %+v, want 1 m", got.Length)
	}
	if got.Resistance != (eng.Value{Magnitude: 1, Prefix: "k"}) {
		t.Errorf("Resistance = %+v, want 1 k", got.Resistance)
	}
}

func TestNewResultOutOfRange(t *testing.T) {
	if _, err := NewMetalResult("m", 160, 1, 1e40); !mreserrors.Is(err, mreserrors.ErrCodeOutOfRange) {
		t.Errorf("NewMetalResult() error = %v, want %s", err, mreserrors.ErrCodeOutOfRange)
	}
	if _, err := NewViaResult("v", 1, 1, 1e-40); !mreserrors.Is(err, mreserrors.ErrCodeOutOfRange) {
		t.Errorf("NewViaResult() error = %v, want %s", err, mreserrors.ErrCodeOutOfRange)
	}
}

func TestMetal(t *testing.T) {
	r, err := NewMetalResult("metal1", 160, 1, 0.84375)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "line ascii",
			style: Style{ModeLine, CharsetASCII},
			want:  "metal1 (160.0 nm / 1.0um) = 843.8 mOhm\n",
		},
		{
			name:  "line unicode",
			style: Style{ModeLine, CharsetUnicode},
			want:  "metal1 (160.0 nm / 1.0um) = 843.8 mΩ\n",
		},
		{
			name:  "diagram ascii",
			style: Style{ModeDiagram, CharsetASCII},
			want: "" +
				"              1.0 um\n" +
				"        <----------------->\n" +
				"        +------------------+\n" +
				"        |       ^          |\n" +
				"    metal1  |       | 160.0 nm | = 843.8 mOhm\n" +
				"        |       v          |\n" +
				"        +------------------+\n",
		},
		{
			name:  "diagram unicode",
			style: Style{ModeDiagram, CharsetUnicode},
			want: "" +
				"              1.0 um\n" +
				"        ⮜─────────────────⮞\n" +
				"        ┌──────────────────┐\n" +
				"        │       ⮝          │\n" +
				"    metal1  │       │ 160.0 nm │ = 843.8 mΩ\n" +
				"        │       ⮟          │\n" +
				"        └──────────────────┘\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Metal(&buf, r, tt.style); err != nil {
				t.Fatalf("Metal() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Metal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVia(t *testing.T) {
	r, err := NewViaResult("via1", 2, 3, 2.0/6)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "line ascii",
			style: Style{ModeLine, CharsetASCII},
			want:  "via1 (2 x 3) = 333.3 mOhm\n",
		},
		{
			name:  "line unicode",
			style: Style{ModeLine, CharsetUnicode},
			want:  "via1 (2 x 3) = 333.3 mΩ\n",
		},
		{
			name:  "diagram ascii",
			style: Style{ModeDiagram, CharsetASCII},
			want: "" +
				"             x 2\n" +
				"         +--+  +--+\n" +
				"         |  |  |  |\n" +
				"         +--+  +--+ \n" +
				"    x 3               = 333.3 mOhm\n" +
				"         +--+  +--+\n" +
				"         |  |  |  |\n" +
				"         +--+  +--+\n",
		},
		{
			name:  "diagram unicode",
			style: Style{ModeDiagram, CharsetUnicode},
			want: "" +
				"             x 2\n" +
				"         ┌──┐  ┌──┐\n" +
				"         │  │  │  │\n" +
				"         └──┘  └──┘ \n" +
				"    x 3               = 333.3 mΩ\n" +
				"         ┌──┐  ┌──┐\n" +
				"         │  │  │  │\n" +
				"         └──┘  └──┘\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Via(&buf, r, tt.style); err != nil {
				t.Fatalf("Via() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Via() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	if err := Metal(&buf, MetalResult{}, Style{Mode(9), CharsetASCII}); !mreserrors.Is(err, mreserrors.ErrCodeInternal) {
		t.Errorf("Metal() error = %v, want %s", err, mreserrors.ErrCodeInternal)
	}
	if err := Via(&buf, ViaResult{}, Style{ModeLine, Charset(9)}); !mreserrors.Is(err, mreserrors.ErrCodeInternal) {
		t.Errorf("Via() error = %v, want %s", err, mreserrors.ErrCodeInternal)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteError(t *testing.T) {
	err := Via(failWriter{}, ViaResult{Name: "v", X: 1, Y: 1}, Style{})
	if !mreserrors.Is(err, mreserrors.ErrCodeInternal) {
		t.Errorf("Via() error = %v, want %s", err, mreserrors.ErrCodeInternal)
	}
}

func TestTemplatesCoverAllStyles(t *testing.T) {
	for _, m := range []Mode{ModeLine, ModeDiagram} {
		for _, c := range []Charset{CharsetASCII, CharsetUnicode} {
			s := Style{m, c}
			if _, ok := metalTemplates[s]; !ok {
				t.Errorf("missing metal template for %+v", s)
			}
			if _, ok := viaTemplates[s]; !ok {
				t.Errorf("missing via template for %+v", s)
			}
		}
	}
}
