package wildcards

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2/lang"
)

//go:embed translations
var translations embed.FS

// LoadTranslations registers the bundled filter descriptions with fyne's
// localization so that the wildcards follow the system language.
func LoadTranslations() error {
	if err := lang.AddTranslationsFS(translations, "translations"); err != nil {
		return fmt.Errorf("LoadTranslations: %w", err)
	}

	return nil
}
