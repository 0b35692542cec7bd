package wildcards

import (
	"errors"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/storage"
)

func TestFilterFormat(t *testing.T) {
	f := Filter{Description: "X files", Extensions: []string{"abc"}}

	got, err := f.Format(false)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := "X files (*.abc)|*.abc"; got != want {
		t.Errorf("Format(false) = %q, want %q", got, want)
	}

	got, err = f.Format(true)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := "X files (*.abc)|*.[aA][bB][cC]"; got != want {
		t.Errorf("Format(true) = %q, want %q", got, want)
	}
}

func TestFilterFormatNoExtensions(t *testing.T) {
	_, err := Filter{Description: "Empty"}.Format(false)
	if !errors.Is(err, ErrNoExtensions) {
		t.Fatalf("got: %v, want: %v", err, ErrNoExtensions)
	}
}

func TestFilterWildcardPanicsWithoutExtensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Wildcard() did not panic")
		}
	}()

	_ = Filter{Description: "Empty"}.Wildcard()
}

func TestFilterMatches(t *testing.T) {
	f := Filter{Description: "Mixed", Extensions: []string{"kicad_pcb", "pretty", "htm"}}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "board.kicad_pcb", true},
		{"upper case", "BOARD.KICAD_PCB", true},
		{"full path", "/home/user/proj/board.kicad_pcb", true},
		{"library directory", "/libs/parts.pretty/", true},
		{"partial extension", "page.html", false},
		{"extension only", ".htm", false},
		{"no extension", "kicad_pcb", false},
		{"other", "board.brd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.input); got != tt.want {
				t.Errorf("Matches(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterPatterns(t *testing.T) {
	f := Filter{Description: "Jpeg", Extensions: []string{"jpg", "jpeg"}}

	if got, want := f.Patterns(false), []string{"*.jpg", "*.jpeg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Patterns(false) = %v, want %v", got, want)
	}

	want := []string{"*.[jJ][pP][gG]", "*.[jJ][pP][eE][gG]"}
	if got := f.Patterns(true); !reflect.DeepEqual(got, want) {
		t.Errorf("Patterns(true) = %v, want %v", got, want)
	}
}

func TestFilterFileFilter(t *testing.T) {
	ff := pcbFiles.FileFilter()

	if !ff.Matches(storage.NewFileURI("/tmp/board.kicad_pcb")) {
		t.Error("expected .kicad_pcb to match")
	}
	if ff.Matches(storage.NewFileURI("/tmp/board.sch")) {
		t.Error("expected .sch not to match")
	}
}

func TestFilterFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"adds first extension", "board", "board.kicad_pcb"},
		{"keeps matching extension", "board.kicad_pcb", "board.kicad_pcb"},
		{"keeps matching extension any case", "BOARD.KICAD_PCB", "BOARD.KICAD_PCB"},
		{"appends to other extension", "board.v2", "board.v2.kicad_pcb"},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pcbFiles.FileName(tt.input); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterFormatWithoutDescription(t *testing.T) {
	got, err := Filter{Extensions: []string{"abc"}}.Format(false)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := " (*.abc)|*.abc"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}
