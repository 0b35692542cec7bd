package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/edaforge/wildcards/internal/config"
	"github.com/edaforge/wildcards/wildcards"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	version     string
	build       string
	listPtr     = flag.Bool("l", false, "List all file categories and their extensions.")
	categoryArg = flag.String("c", "", "Print the dialog filter of a category.")
	matchArg    = flag.String("m", "", "Print the categories accepting a file.")
	caseArg     = flag.String("case", "", "Case matching of the filter patterns: auto, on or off. Overrides the settings file.")
	configArg   = flag.String("config", "", "Path to the settings file.")
	savePtr     = flag.Bool("save", false, "Store the -case value in the settings file.")
	debugPtr    = flag.Bool("debug", false, "Write debug logs to stderr.")
	versionPtr  = flag.Bool("version", false, "Print version.")
)

type session struct {
	conf        *config.Config
	configPath  string
	out         io.Writer
	bold        bool
	LogOutput   io.Writer
	initLogOnce sync.Once
	logger      zerolog.Logger
}

// Log returns the session logger. It stays disabled while LogOutput is nil.
func (s *session) Log() *zerolog.Logger {
	if s.LogOutput != nil {
		s.initLogOnce.Do(func() {
			s.logger = zerolog.New(s.LogOutput).With().Timestamp().Logger()
		})
	}
	return &s.logger
}

func main() {
	flag.Parse()
	checkVerflag()

	err := checkflags()
	check(err)

	s := &session{
		out:        os.Stdout,
		bold:       runtime.GOOS == "linux",
		configPath: *configArg,
	}
	if *debugPtr {
		s.LogOutput = os.Stderr
	}

	if err := wildcards.LoadTranslations(); err != nil {
		s.Log().Debug().Err(err).Msg("translations not loaded")
	}

	s.conf, err = s.loadConfig()
	check(err)

	if *caseArg != "" {
		s.conf.CaseMatching = *caseArg
	}
	check(errors.Wrap(s.conf.Validate(), "case flag error"))

	s.Log().Debug().
		Str("case_matching", s.conf.CaseMatching).
		Bool("case_sensitive", s.conf.CaseSensitive()).
		Int("user_categories", len(s.conf.Categories)).
		Msg("config loaded")

	switch {
	case *listPtr:
		err = s.listCategories()
	case *categoryArg != "":
		err = s.printCategory(*categoryArg)
	case *matchArg != "":
		err = s.printMatches(*matchArg)
	case *savePtr:
		err = s.saveConfig()
	}
	check(err)
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

func (s *session) loadConfig() (*config.Config, error) {
	if s.configPath != "" {
		conf, err := config.Load(s.configPath)
		return conf, errors.Wrap(err, "loadConfig error")
	}

	conf, err := config.GetAppConfig()
	return conf, errors.Wrap(err, "loadConfig error")
}

func checkflags() error {
	var modes int
	for _, set := range []bool{*listPtr, *categoryArg != "", *matchArg != "", *savePtr} {
		if set {
			modes++
		}
	}

	switch modes {
	case 0:
		return errors.New("one of -l, -c, -m or -save is required")
	case 1:
	default:
		return errors.New("-l, -c, -m and -save can't be used together")
	}

	if *savePtr && *caseArg == "" {
		return errors.New("-save needs a -case value")
	}

	switch *caseArg {
	case "", config.CaseAuto, config.CaseOn, config.CaseOff:
	default:
		return errors.Wrap(errors.Errorf("invalid value %q", *caseArg), "checkflags error")
	}

	return nil
}

func checkVerflag() {
	if *versionPtr {
		fmt.Printf("Wildcards Version: %s, ", version)
		fmt.Printf("Build: %s\n", build)
		os.Exit(0)
	}
}
