// Command homecalc evaluates a YAML scenario file against the calculators
// and prints formatted results.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"homecalc/domain"
	"homecalc/format"
	"homecalc/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("homecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioFile := fs.String("scenario", "scenario.yaml", "Path to YAML scenario file")
	only := fs.String("only", "", "Comma-separated calculator slugs to run (default: every section in the file)")
	asJSON := fs.Bool("json", false, "Print results as JSON instead of text")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: homecalc [flags]\n\nCalculators:\n")
		for _, c := range domain.Calculators() {
			if c.Available {
				fmt.Fprintf(stderr, "  %-24s %s\n", c.Slug, c.Description)
			}
		}
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New(logger.Config{Level: *logLevel, Pretty: true, Output: stderr})

	filter, err := parseOnly(*only)
	if err != nil {
		log.Error().Err(err).Msg("Invalid -only flag")
		return 2
	}

	scenario, err := LoadScenario(*scenarioFile)
	if err != nil {
		log.Error().Err(err).Str("file", *scenarioFile).Msg("Failed to load scenario")
		return 1
	}

	sections := scenario.Run(filter)
	log.Debug().Int("sections", len(sections)).Msg("scenario evaluated")

	if *asJSON {
		err = writeJSON(stdout, sections)
	} else {
		err = writeText(stdout, sections)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to write results")
		return 1
	}

	return exitCode(sections, log)
}

func parseOnly(raw string) (map[domain.CalculatorKind]bool, error) {
	if raw == "" {
		return nil, nil
	}
	out := make(map[domain.CalculatorKind]bool)
	for _, slug := range strings.Split(raw, ",") {
		slug = strings.TrimSpace(slug)
		kind, ok := domain.ParseKind(slug)
		if !ok {
			return nil, fmt.Errorf("unknown calculator %q", slug)
		}
		out[kind] = true
	}
	return out, nil
}

func exitCode(sections []Section, log zerolog.Logger) int {
	code := 0
	for _, sec := range sections {
		if sec.Err != nil {
			log.Warn().Err(sec.Err).Str("calculator", sec.Kind.String()).Msg("calculation failed")
			code = 1
		}
	}
	return code
}

func writeText(w io.Writer, sections []Section) error {
	for i, sec := range sections {
		info, _ := sec.Kind.Info()
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", info.Title, strings.Repeat("─", len(info.Title))); err != nil {
			return err
		}
		if sec.Err != nil {
			if _, err := fmt.Fprintf(w, "  error: %v\n", sec.Err); err != nil {
				return err
			}
			continue
		}
		for _, f := range format.Fields(sec.Result) {
			if _, err := fmt.Fprintf(w, "  %-32s %14s\n", label(f.Key), f.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonSection struct {
	Kind    domain.CalculatorKind `json:"kind"`
	Result  any                   `json:"result,omitempty"`
	Display map[string]string     `json:"display,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func writeJSON(w io.Writer, sections []Section) error {
	out := make([]jsonSection, 0, len(sections))
	for _, sec := range sections {
		js := jsonSection{Kind: sec.Kind}
		if sec.Err != nil {
			js.Error = sec.Err.Error()
		} else {
			js.Result = sec.Result
			js.Display = format.Display(sec.Result)
		}
		out = append(out, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// label turns a display key such as "projected.futureEquity" into
// "Projected future equity".
func label(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '.':
			b.WriteRune(' ')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteRune(r + ('a' - 'A'))
		case i == 0 && r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
