// Package cli is the thin command-line front end over nadia.Check: flag
// parsing, file I/O, the result cache, and the -t theorem-matching flag.
// Grounded on the teacher's pkg/cli/entry.go idiom: plain fmt.Errorf-wrapped
// errors, no custom error hierarchy, os.Exit at the boundary.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/daviromero/nadia"
	"github.com/daviromero/nadia/internal/cache"
	"github.com/daviromero/nadia/internal/config"
	"github.com/daviromero/nadia/internal/diagnostics"
	"github.com/daviromero/nadia/pkg/theoremcheck"
)

// Exit codes, per the external-interface contract: 0 on success or on a
// successfully-written diagnostics list, 2 on I/O failure, 3 on a malformed
// -t theorem string.
const (
	ExitOK         = 0
	ExitIOFailure  = 2
	ExitBadTheorem = 3
)

// Run parses args (normally os.Args[1:]), executes one check, and returns
// the process exit code. stdout/stderr let tests capture output without
// touching the real streams.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nadia", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inPath     = fs.String("i", "", "input proof file (default stdin)")
		outPath    = fs.String("o", "", "output file for rendered proof (default stdout)")
		theorem    = fs.String("t", "", "turnstile theorem statement to match against the checked proof")
		fitch      = fs.Bool("fitch", true, "emit Fitch-style LaTeX")
		gentzen    = fs.Bool("gentzen", false, "emit Gentzen-tree LaTeX")
		localeFlag = fs.String("locale", "", "diagnostic message locale: pt or en (overrides config)")
		cachePath  = fs.String("cache", "", "result cache path (empty disables caching)")
		verbose    = fs.Bool("v", false, "log input/output sizes and the diagnostics count to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return ExitIOFailure
	}

	cfg, err := config.Resolve(".")
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return ExitIOFailure
	}
	emitFitch := *fitch
	emitGentzen := *gentzen
	if !fitchFlagSet(fs) {
		emitFitch = cfg.FitchEnabled()
	}
	if !gentzenFlagSet(fs) {
		emitGentzen = cfg.GentzenEnabled()
	}

	locale := diagnostics.PT
	localeName := string(cfg.Locale)
	if *localeFlag != "" {
		localeName = *localeFlag
	}
	if localeName == string(config.EN) {
		locale = diagnostics.EN
	}

	path := *cachePath
	if path == "" && !cacheFlagSet(fs) {
		path = cfg.CachePath
	}

	source, err := readInput(*inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "reading input: %v\n", err)
		return ExitIOFailure
	}

	var c *cache.Cache
	var cacheKey string
	mode := renderMode(emitFitch, emitGentzen)
	if path != "" {
		c, err = cache.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "opening cache: %v\n", err)
			return ExitIOFailure
		}
		defer c.Close()
		cacheKey = cache.Key(source, localeName, mode)
		if cached, ok, err := c.Get(cacheKey); err == nil && ok {
			if err := writeOutput(*outPath, cached, stdout); err != nil {
				fmt.Fprintf(stderr, "writing output: %v\n", err)
				return ExitIOFailure
			}
			return ExitOK
		}
	}

	result := nadia.CheckLocale(source, locale)

	if *verbose {
		log.SetOutput(stderr)
		log.Printf("nadia[%s]: read %s, %d diagnostic(s)", result.ID(), humanize.Bytes(uint64(len(source))), len(result.Errors))
	}

	if *theorem != "" {
		stmt, err := theoremcheck.Parse(*theorem)
		if err != nil {
			fmt.Fprintf(stderr, "parsing theorem %q: %v\n", *theorem, err)
			return ExitBadTheorem
		}
		if len(result.Errors) == 0 && !stmt.Matches(result.Premises, result.Conclusion) {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"checked proof does not match %s", stmt))
		}
	}

	output := renderOutput(result, emitFitch, emitGentzen, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	if c != nil && len(result.Errors) == 0 {
		if err := c.Put(cacheKey, output); err != nil {
			fmt.Fprintf(stderr, "writing cache: %v\n", err)
		}
	}

	if err := writeOutput(*outPath, output, stdout); err != nil {
		fmt.Fprintf(stderr, "writing output: %v\n", err)
		return ExitIOFailure
	}

	if *verbose {
		log.Printf("nadia[%s]: wrote %s", result.ID(), humanize.Bytes(uint64(len(output))))
	}

	return ExitOK
}

var stdin io.Reader = os.Stdin

func fitchFlagSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "fitch" {
			set = true
		}
	})
	return set
}

func gentzenFlagSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "gentzen" {
			set = true
		}
	})
	return set
}

func cacheFlagSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cache" {
			set = true
		}
	})
	return set
}

func renderMode(fitch, gentzen bool) string {
	switch {
	case fitch && gentzen:
		return "both"
	case gentzen:
		return "gentzen"
	default:
		return "fitch"
	}
}

func readInput(path string, fallback io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(fallback)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, content string, fallback io.Writer) error {
	if path == "" {
		_, err := io.WriteString(fallback, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func renderOutput(result nadia.Result, fitch, gentzen, color bool) string {
	if len(result.Errors) > 0 {
		return formatErrors(result.Errors, color)
	}
	var out string
	if fitch {
		out += result.Fitch + "\n"
	}
	if gentzen {
		out += result.Gentzen + "\n"
	}
	return out
}

func formatErrors(errs []string, color bool) string {
	var out string
	for _, e := range errs {
		if color {
			out += "\x1b[31m" + e + "\x1b[0m\n"
		} else {
			out += e + "\n"
		}
	}
	return out
}
