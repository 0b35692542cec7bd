package wildcards

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrNoExtensions is returned when a filter is built from an empty extension list.
	ErrNoExtensions = errors.New("no file extensions given")
	// ErrEmptyExtension is returned when one of the extensions is blank.
	ErrEmptyExtension = errors.New("empty file extension")
)

// CaseSensitiveDialogs reports whether the native file dialogs of the
// current platform match wildcards case-sensitively.
func CaseSensitiveDialogs() bool {
	return caseSensitiveDialogs
}

// FormatWildcardExt formats a wildcard extension for the file dialog.
//
// When caseSensitive is set every letter is turned into a character class
// holding both cases (sch -> [sS][cC][hH]) so that upper case file names
// still show up in dialogs that do not fold case. Anything that is not a
// letter is kept as is. Otherwise ext is returned unchanged.
//
// When opening a dialog with a default file name, include the extension in
// the name. GTK would otherwise append the bracketed pattern to it.
func FormatWildcardExt(ext string, caseSensitive bool) string {
	if !caseSensitive {
		return ext
	}

	var wc strings.Builder
	wc.Grow(len(ext) * 4)

	for _, ch := range ext {
		if !unicode.IsLetter(ch) {
			wc.WriteRune(ch)
			continue
		}

		wc.WriteByte('[')
		wc.WriteRune(unicode.ToLower(ch))
		wc.WriteRune(unicode.ToUpper(ch))
		wc.WriteByte(']')
	}

	return wc.String()
}

// AddFileExtListToFilter builds the part of a filter string that follows the
// description, e.g. " (*.htm *.html)|*.htm;*.html". The extensions keep
// their order. Only the pattern half after the "|" is case formatted.
func AddFileExtListToFilter(exts []string, caseSensitive bool) (string, error) {
	if len(exts) == 0 {
		return "", ErrNoExtensions
	}

	var info, filter strings.Builder
	info.WriteString(" (")

	for i, ext := range exts {
		if strings.TrimSpace(ext) == "" {
			return "", ErrEmptyExtension
		}

		if i > 0 {
			info.WriteByte(' ')
			filter.WriteByte(';')
		}

		info.WriteString("*." + ext)
		filter.WriteString("*." + FormatWildcardExt(ext, caseSensitive))
	}

	info.WriteString(")|")

	return info.String() + filter.String(), nil
}
