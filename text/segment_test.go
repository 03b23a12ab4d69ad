package text

import "testing"

func TestDominantDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", DirectionLTR},
		{"latin", "Hello, world", DirectionLTR},
		{"digits", "12345", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"hebrew with digits", "שלום 123", DirectionRTL},
		{"latin leading space", "  abc", DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantDirection(tt.text); got != tt.want {
				t.Errorf("DominantDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLTR.String() != "LTR" || DirectionRTL.String() != "RTL" {
		t.Errorf("Direction strings = %q, %q", DirectionLTR, DirectionRTL)
	}
}
