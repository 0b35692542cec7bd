//go:build !(android || ios)
// +build !android,!ios

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"
	"github.com/edaforge/wildcards/internal/config"
	"github.com/edaforge/wildcards/internal/picker"
	"github.com/edaforge/wildcards/wildcards"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := wildcards.LoadTranslations(); err != nil {
		logger.Warn().Err(err).Msg("translations not loaded")
	}

	conf, err := config.GetAppConfig()
	check(err)

	a := app.NewWithID("app.edaforge.wildcards")
	w := a.NewWindow("Wildcards")

	cats := conf.All()
	titles := make([]string, len(cats))
	byTitle := make(map[string]wildcards.Filter, len(cats))
	for i, c := range cats {
		titles[i] = c.Name + ": " + c.Filter.Title()
		byTitle[titles[i]] = c.Filter
	}

	current := cats[0].Filter
	filterText := widget.NewLabel("")
	pickedText := widget.NewLabel("")
	var folder string

	showFilter := func(f wildcards.Filter) {
		wc, err := f.Format(conf.CaseSensitive())
		if err != nil {
			logger.Error().Err(err).Str("description", f.Description).Msg("format filter")
			return
		}
		filterText.SetText(wc)
	}

	selector := widget.NewSelect(titles, func(s string) {
		current = byTitle[s]
		showFilter(current)
	})

	openButton := widget.NewButton(lang.L("Open"), func() {
		picker.Open(w, current, folder, func(path string) {
			logger.Info().Str("file", path).Msg("picked")
			pickedText.SetText(path)
		})
	})

	saveButton := widget.NewButton(lang.L("Save"), func() {
		picker.Save(w, current, folder, "untitled", func(path string) {
			logger.Info().Str("file", path).Msg("save target")
			pickedText.SetText(path)
		})
	})

	if wd, err := os.Getwd(); err == nil {
		folder = wd
	}

	selector.SetSelected(titles[0])

	w.SetContent(container.NewVBox(
		selector,
		filterText,
		container.NewHBox(openButton, saveButton),
		pickedText,
	))
	w.Resize(fyne.NewSize(640, 240))
	w.ShowAndRun()
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
