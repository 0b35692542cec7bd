package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/edaforge/wildcards/wildcards"
	"github.com/mattn/go-runewidth"
)

func TestWrite(t *testing.T) {
	cats := []wildcards.Category{
		{Name: "pcb", Filter: wildcards.Filter{Description: "Boards", Extensions: []string{"kicad_pcb"}}},
		{Name: "html", Filter: wildcards.Filter{Description: "HTML files", Extensions: []string{"htm", "html"}}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, cats, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "" +
		"NAME  DESCRIPTION  EXTENSIONS\n" +
		"pcb   Boards       *.kicad_pcb\n" +
		"html  HTML files   *.htm *.html\n"

	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteAlignsWideRunes(t *testing.T) {
	cats := []wildcards.Category{
		{Name: "a", Filter: wildcards.Filter{Description: "回路図", Extensions: []string{"sch"}}},
		{Name: "b", Filter: wildcards.Filter{Description: "PCB", Extensions: []string{"brd"}}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, cats, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	col := -1
	for _, l := range lines {
		idx := strings.Index(l, "*.")
		if idx < 0 {
			idx = strings.Index(l, "EXTENSIONS")
		}
		cells := runewidth.StringWidth(l[:idx])
		if col >= 0 && cells != col {
			t.Errorf("extension column at cell %d, want %d: %q", cells, col, l)
		}
		col = cells
	}
}

func TestWriteBoldHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), "\033[1mNAME") {
		t.Errorf("header not bold: %q", buf.String())
	}
}
