package wildcards

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"
)

// Filter pairs a dialog description with the extensions it accepts.
// Description is a translation key, it gets localized when formatted.
type Filter struct {
	Description string
	Extensions  []string
}

// Format returns the complete filter string, for example
// "KiCad schematic files (*.sch)|*.sch".
func (f Filter) Format(caseSensitive bool) (string, error) {
	suffix, err := AddFileExtListToFilter(f.Extensions, caseSensitive)
	if err != nil {
		return "", fmt.Errorf("Format %q: %w", f.Description, err)
	}

	return f.Title() + suffix, nil
}

// Wildcard formats the filter for the dialogs of the running platform.
// It panics if the filter has no usable extension.
func (f Filter) Wildcard() string {
	s, err := f.Format(caseSensitiveDialogs)
	if err != nil {
		panic(err)
	}

	return s
}

// Patterns returns the "*.ext" globs of the filter in order.
func (f Filter) Patterns(caseSensitive bool) []string {
	out := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		out = append(out, "*."+FormatWildcardExt(ext, caseSensitive))
	}

	return out
}

// Matches reports whether name ends with one of the filter extensions,
// ignoring case. Trailing separators are ignored so library directories
// such as "parts.pretty/" match too.
func (f Filter) Matches(name string) bool {
	base := strings.ToLower(filepath.Base(name))

	for _, ext := range f.Extensions {
		if ext == "" {
			continue
		}

		suffix := "." + strings.ToLower(ext)
		if len(base) > len(suffix) && strings.HasSuffix(base, suffix) {
			return true
		}
	}

	return false
}

// FileFilter converts the filter for use with fyne file dialogs.
func (f Filter) FileFilter() storage.FileFilter {
	exts := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		exts = append(exts, "."+ext)
	}

	return storage.NewExtensionFileFilter(exts)
}

// Title returns the description in the current language.
func (f Filter) Title() string {
	if f.Description == "" {
		return ""
	}

	return lang.L(f.Description)
}

func (f Filter) clone() Filter {
	exts := make([]string, len(f.Extensions))
	copy(exts, f.Extensions)

	return Filter{Description: f.Description, Extensions: exts}
}

// FileName returns name with the first filter extension appended when it
// has none of them. Save dialogs with a default name need the extension,
// GTK would otherwise append the bracketed pattern to the name.
func (f Filter) FileName(name string) string {
	if name == "" || len(f.Extensions) == 0 || f.Matches(name) {
		return name
	}

	return name + "." + f.Extensions[0]
}
