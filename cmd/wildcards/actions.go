package main

import (
	"fmt"

	"github.com/edaforge/wildcards/internal/listing"
	"github.com/edaforge/wildcards/internal/sniff"
	"github.com/edaforge/wildcards/wildcards"
	"github.com/pkg/errors"
)

func (s *session) listCategories() error {
	cats := s.conf.All()
	s.Log().Debug().Int("categories", len(cats)).Msg("listing")

	return errors.Wrap(listing.Write(s.out, cats, s.bold), "listCategories error")
}

func (s *session) printCategory(name string) error {
	f, ok := s.conf.Lookup(name)
	if !ok {
		return errors.Errorf("printCategory: unknown category %q", name)
	}

	wc, err := f.Format(s.conf.CaseSensitive())
	if err != nil {
		return errors.Wrap(err, "printCategory error")
	}

	_, err = fmt.Fprintln(s.out, wc)
	return errors.Wrap(err, "printCategory error")
}

func (s *session) printMatches(file string) error {
	var matched []wildcards.Category
	for _, c := range s.conf.All() {
		if c.Filter.Matches(file) {
			matched = append(matched, c)
		}
	}

	kind, err := sniff.File(file)
	switch {
	case err == nil:
		s.Log().Debug().Str("file", file).Str("mime", kind.MIME).Msg("content detected")
		if _, err := fmt.Fprintf(s.out, "Content: %s (*.%s)\n", kind.MIME, kind.Extension); err != nil {
			return errors.Wrap(err, "printMatches error")
		}
	case errors.Is(err, sniff.ErrUnknownType):
		s.Log().Debug().Str("file", file).Msg("no known content signature")
	default:
		s.Log().Debug().Str("file", file).Err(err).Msg("content detection skipped")
	}

	if len(matched) == 0 {
		return errors.Errorf("printMatches: no category accepts %q", file)
	}

	return errors.Wrap(listing.Write(s.out, matched, s.bold), "printMatches error")
}

func (s *session) saveConfig() error {
	var err error
	if s.configPath != "" {
		err = s.conf.Save(s.configPath)
	} else {
		err = s.conf.SaveAppConfig()
	}
	if err != nil {
		return errors.Wrap(err, "saveConfig error")
	}

	s.Log().Debug().Str("case_matching", s.conf.CaseMatching).Msg("config saved")
	_, err = fmt.Fprintf(s.out, "Case matching set to %s\n", s.conf.CaseMatching)
	return errors.Wrap(err, "saveConfig error")
}
