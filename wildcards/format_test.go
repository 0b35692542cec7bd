package wildcards

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestFormatWildcardExt(t *testing.T) {
	tests := []struct {
		name          string
		ext           string
		caseSensitive bool
		want          string
	}{
		{
			name:          "letters only",
			ext:           "sch",
			caseSensitive: true,
			want:          "[sS][cC][hH]",
		},
		{
			name:          "upper case input",
			ext:           "SCH",
			caseSensitive: true,
			want:          "[sS][cC][hH]",
		},
		{
			name:          "underscore kept",
			ext:           "kicad_pcb",
			caseSensitive: true,
			want:          "[kK][iI][cC][aA][dD]_[pP][cC][bB]",
		},
		{
			name:          "digits kept",
			ext:           "d356",
			caseSensitive: true,
			want:          "[dD]356",
		},
		{
			name:          "leading digit",
			ext:           "3dshapes",
			caseSensitive: true,
			want:          "3[dD][sS][hH][aA][pP][eE][sS]",
		},
		{
			name:          "case insensitive is identity",
			ext:           "3dshapes",
			caseSensitive: false,
			want:          "3dshapes",
		},
		{
			name:          "empty",
			ext:           "",
			caseSensitive: true,
			want:          "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWildcardExt(tt.ext, tt.caseSensitive)
			if got != tt.want {
				t.Errorf("FormatWildcardExt(%q, %t) = %q, want %q", tt.ext, tt.caseSensitive, got, tt.want)
			}
		})
	}
}

func TestFormatWildcardExtExpandsEveryLetter(t *testing.T) {
	exts := []string{
		SchematicFileExtension, GerberJobFileExtension, KiCadPcbFileExtension,
		KiCadLib3DShapesPathExtension, IpcD356FileExtension, "x3d", "nc",
	}

	for _, ext := range exts {
		got := FormatWildcardExt(ext, true)

		var letters int
		for _, r := range ext {
			if unicode.IsLetter(r) {
				letters++
			}
		}

		if want := len(ext) + 3*letters; len(got) != want {
			t.Errorf("%s: got length %d, want %d (%q)", ext, len(got), want, got)
		}

		// Collapsing every class to its first member gives the lower case input back.
		var collapsed strings.Builder
		for i := 0; i < len(got); i++ {
			if got[i] == '[' {
				collapsed.WriteByte(got[i+1])
				i += 3
				continue
			}
			collapsed.WriteByte(got[i])
		}
		if collapsed.String() != strings.ToLower(ext) {
			t.Errorf("%s: collapsed pattern %q does not match input", ext, collapsed.String())
		}

		if FormatWildcardExt(ext, false) != ext {
			t.Errorf("%s: case insensitive output changed the extension", ext)
		}
	}
}

func TestAddFileExtListToFilter(t *testing.T) {
	tests := []struct {
		name          string
		exts          []string
		caseSensitive bool
		want          string
		wantErr       error
	}{
		{
			name: "single extension",
			exts: []string{"abc"},
			want: " (*.abc)|*.abc",
		},
		{
			name:          "single extension case sensitive",
			exts:          []string{"abc"},
			caseSensitive: true,
			want:          " (*.abc)|*.[aA][bB][cC]",
		},
		{
			name: "two extensions keep order",
			exts: []string{"a", "b"},
			want: " (*.a *.b)|*.a;*.b",
		},
		{
			name:          "three extensions case sensitive",
			exts:          []string{"drl", "nc", "xnc"},
			caseSensitive: true,
			want:          " (*.drl *.nc *.xnc)|*.[dD][rR][lL];*.[nN][cC];*.[xX][nN][cC]",
		},
		{
			name:    "nil list",
			exts:    nil,
			wantErr: ErrNoExtensions,
		},
		{
			name:    "blank extension",
			exts:    []string{"a", " "},
			wantErr: ErrEmptyExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddFileExtListToFilter(tt.exts, tt.caseSensitive)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddFileExtListToFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AddFileExtListToFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}
