//go:build !(android || ios)
// +build !android,!ios

package picker

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	fynedialog "fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/edaforge/wildcards/wildcards"

	xfilepicker "github.com/alexballas/xfilepicker/dialog"
)

const fillSize = 10000

// Open shows a file open dialog listing only the files accepted by f.
// onPicked gets the absolute path of the chosen file.
func Open(w fyne.Window, f wildcards.Filter, folder string, onPicked func(string)) {
	show(newOpen(w, f, folder, onPicked))
}

// Save shows a file save dialog for f. The default name gets the filter
// extension when it lacks one.
func Save(w fyne.Window, f wildcards.Filter, folder, name string, onPicked func(string)) {
	show(newSave(w, f, folder, name, onPicked))
}

func newOpen(w fyne.Window, f wildcards.Filter, folder string, onPicked func(string)) fynedialog.Dialog {
	fd := xfilepicker.NewFileOpen(func(readers []fyne.URIReadCloser, err error) {
		if err != nil {
			fynedialog.ShowError(err, w)
			return
		}

		if len(readers) == 0 {
			return
		}
		for _, r := range readers {
			defer r.Close()
		}

		abs, err := filepath.Abs(readers[0].URI().Path())
		if err != nil {
			fynedialog.ShowError(err, w)
			return
		}

		onPicked(abs)
	}, w, false)

	configure(fd, f, folder)

	return fd
}

func newSave(w fyne.Window, f wildcards.Filter, folder, name string, onPicked func(string)) fynedialog.Dialog {
	fd := xfilepicker.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			fynedialog.ShowError(err, w)
			return
		}

		if writer == nil {
			return
		}
		defer writer.Close()

		onPicked(writer.URI().Path())
	}, w)

	if s, ok := fd.(interface{ SetFileName(string) }); ok {
		s.SetFileName(f.FileName(name))
	}

	configure(fd, f, folder)

	return fd
}

func configure(fd fynedialog.Dialog, f wildcards.Filter, folder string) {
	p, ok := fd.(xfilepicker.FilePicker)
	if !ok {
		return
	}

	p.SetFilter(f.FileFilter())

	if lister, ok := location(folder); ok {
		p.SetLocation(lister)
	}
}

// location returns the lister for folder. An empty or unlistable folder
// leaves the dialog at its default starting directory.
func location(folder string) (fyne.ListableURI, bool) {
	if folder == "" {
		return nil, false
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(folder))
	if err != nil {
		return nil, false
	}

	return lister, true
}

func show(fd fynedialog.Dialog) {
	fd.Show()
	fd.Resize(fyne.NewSize(fillSize, fillSize))
}
