package sniff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// ErrUnknownType is returned when the content matches no known signature.
var ErrUnknownType = errors.New("unknown file type")

// Kind is the detected content type of a file.
type Kind struct {
	MIME      string
	Extension string
}

// File detects the type of the file at path from its leading bytes.
func File(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return Kind{}, fmt.Errorf("sniff file error: %w", err)
	}

	return Reader(f)
}

// Reader detects the content type from the head of r and closes it.
func Reader(r io.ReadCloser) (Kind, error) {
	defer r.Close()

	// filetype never looks past the first 261 bytes.
	head := make([]byte, 261)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return Kind{}, ErrUnknownType
		}
		return Kind{}, fmt.Errorf("sniff reader error: %w", err)
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return Kind{}, fmt.Errorf("sniff reader error #2: %w", err)
	}

	if kind == filetype.Unknown {
		return Kind{}, ErrUnknownType
	}

	return Kind{
		MIME:      fmt.Sprintf("%s/%s", kind.MIME.Type, kind.MIME.Subtype),
		Extension: kind.Extension,
	}, nil
}
