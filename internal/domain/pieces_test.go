package domain

import (
	"errors"
	"testing"
)

func TestAllPieces(t *testing.T) {
	pieces := AllPieces()
	if len(pieces) != 8 {
		t.Fatalf("expected 8 pieces, got %d", len(pieces))
	}
	if pieces[0] != "hero-red" || pieces[4] != "sidekick-red" || pieces[7] != "sidekick-yellow" {
		t.Errorf("unexpected order: %v", pieces)
	}
}

func TestParsePieceID(t *testing.T) {
	tests := []struct {
		input   string
		want    PieceID
		kind    PieceKind
		health  int
		wantErr bool
	}{
		{"hero-red", "hero-red", KindHero, 15, false},
		{" Sidekick-Yellow ", "sidekick-yellow", KindSidekick, 6, false},
		{"hero-purple", "", KindUnknown, 0, true},
		{"wizard-red", "", KindUnknown, 0, true},
		{"hero", "", KindUnknown, 0, true},
		{"", "", KindUnknown, 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePieceID(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPiece) {
				t.Errorf("ParsePieceID(%q) error = %v, want ErrUnknownPiece", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePieceID(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePieceID(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if got.Kind() != tt.kind || got.Kind().MaxHealth() != tt.health {
			t.Errorf("%q: kind %v health %d", got, got.Kind(), got.Kind().MaxHealth())
		}
	}
}
