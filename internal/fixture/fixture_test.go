package fixture_test

import (
	"errors"
	"testing"

	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/part"
	"github.com/dshills/wordpart/internal/fixture"
)

func TestParse(t *testing.T) {
	text, stops, err := fixture.Parse("|this|Is|A\nsecond |line|")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if text != "thisIsA\nsecond line" {
		t.Errorf("text = %q", text)
	}
	want := []buffer.Position{
		{Line: 1, Col: 1}, {Line: 1, Col: 5}, {Line: 1, Col: 7},
		{Line: 2, Col: 8}, {Line: 2, Col: 12},
	}
	if len(stops) != len(want) {
		t.Fatalf("stops = %v, want %v", stops, want)
	}
	for i := range want {
		if stops[i] != want[i] {
			t.Errorf("stop %d = %s, want %s", i, stops[i], want[i])
		}
	}
}

func TestParseNoMarkers(t *testing.T) {
	text, stops, err := fixture.Parse("plain text")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if text != "plain text" || len(stops) != 0 {
		t.Errorf("got %q with %d stops", text, len(stops))
	}
}

func TestParseDuplicateMarker(t *testing.T) {
	_, _, err := fixture.Parse("foo||bar")
	if !errors.Is(err, fixture.ErrDuplicateStop) {
		t.Fatalf("Parse(foo||bar) error = %v, want ErrDuplicateStop", err)
	}
}

func TestRender(t *testing.T) {
	got, err := fixture.Render("thisIsA", []buffer.Position{
		{Line: 1, Col: 1}, {Line: 1, Col: 5}, {Line: 1, Col: 7}, {Line: 1, Col: 8},
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != "|this|Is|A|" {
		t.Errorf("Render() = %q, want %q", got, "|this|Is|A|")
	}
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		name    string
		stops   []buffer.Position
		wantErr error
	}{
		{
			name:    "duplicate",
			stops:   []buffer.Position{{Line: 1, Col: 2}, {Line: 1, Col: 2}},
			wantErr: fixture.ErrDuplicateStop,
		},
		{
			name:    "unsorted",
			stops:   []buffer.Position{{Line: 1, Col: 5}, {Line: 1, Col: 2}},
			wantErr: fixture.ErrUnsortedStops,
		},
		{
			name:    "out of range",
			stops:   []buffer.Position{{Line: 1, Col: 99}},
			wantErr: fixture.ErrStopOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.Render("some text", tt.stops)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	const blob = "|start| |line|\n|this|Is|A|Camel|Case|Var|"

	text, stops, err := fixture.Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got, err := fixture.Render(text, stops)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != blob {
		t.Errorf("round trip = %q, want %q", got, blob)
	}
}

// TestFixtureAgainstEngine verifies that the engine's stop set matches
// fixture-annotated expectations for a multi-line document.
func TestFixtureAgainstEngine(t *testing.T) {
	const blob = "|this|Is|A|Camel|Case|Var|\n|this_|is_|a_|snake_|case_|var|\n|x| |=| |f(a|1,| |b|2)|"

	text, want, err := fixture.Parse(blob)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	doc := buffer.NewDocument(text)
	got := part.New().Stops(doc)

	rendered, err := fixture.Render(text, got)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("engine stops %v != fixture stops %v\nannotated: %q", got, want, rendered)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stop %d = %s, want %s (annotated: %q)", i, got[i], want[i], rendered)
		}
	}
}
