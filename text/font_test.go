package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular): %v", err)
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if f.ID() == 0 {
		t.Error("ID() = 0, want process-unique non-zero id")
	}
}

func TestParseUniqueIDs(t *testing.T) {
	f1, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f1.ID() == f2.ID() {
		t.Errorf("two parses share ID %d", f1.ID())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Parse(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Parse(garbage) should fail")
	}
}

func TestNewFace(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := NewFace(f, 14)
	if face.Font != f || face.Size != 14 {
		t.Errorf("NewFace = %+v", face)
	}
}
