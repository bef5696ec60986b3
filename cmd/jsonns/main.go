package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/config"
	"github.com/reoring/jsonns/i18n"
	"github.com/reoring/jsonns/internal/fixture"
	_ "github.com/reoring/jsonns/source"
	"github.com/reoring/jsonns/value"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	var code int
	switch os.Args[1] {
	case "process":
		code = processCmd(os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	case "test":
		code = testCmd(os.Args[2:], os.Stdout, os.Stderr)
	case "help", "-h", "-help", "--help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		code = 2
	}
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "jsonns CLI\n\nUsage:\n  jsonns process [-config file] [-context file] [-rule prefix=base]... [-dup ignore|warn|error] [-max-depth n] [-max-bytes n] [-float] [-pretty] [-lang en|ja] [-v] [input]\n  jsonns test [-v] dir...\n\nNotes:\n  - process reads stdin when no input file is given.\n  - -rule may be repeated; rules from -config come first.")
}

// ruleList collects repeated -rule flags.
type ruleList []jsonns.Rule

func (r *ruleList) String() string {
	parts := make([]string, len(*r))
	for i, rule := range *r {
		parts[i] = rule.Prefix + "=" + rule.Base
	}
	return strings.Join(parts, ",")
}

func (r *ruleList) Set(s string) error {
	prefix, base, ok := strings.Cut(s, "=")
	if !ok || base == "" {
		return fmt.Errorf("%w: want prefix=base, got %q", jsonns.ErrInvalidRule, s)
	}
	*r = append(*r, jsonns.Rule{Prefix: prefix, Base: base})
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func processCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath, contextPath, dup string
		lang                         string
		rules                        ruleList
		maxDepth                     int
		maxBytes                     int64
		float, pretty, verbose       bool
	)
	fs.StringVar(&configPath, "config", "", "YAML or JSON configuration file")
	fs.StringVar(&contextPath, "context", "", "external context file, merged after the configured context")
	fs.Var(&rules, "rule", "target rule as prefix=base (repeatable; empty prefix strips the base)")
	fs.StringVar(&dup, "dup", "", "duplicate key handling: ignore, warn or error")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	fs.BoolVar(&float, "float", false, "decode numbers as float64")
	fs.BoolVar(&pretty, "pretty", false, "indent output")
	fs.BoolVar(&verbose, "v", false, "log dropped properties and types")
	fs.StringVar(&lang, "lang", "en", "language of issue messages: en or ja")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	i18n.SetLanguage(lang)
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "process: at most one input file")
		return 2
	}
	log := newLogger(stderr, verbose)

	cfg := &config.Config{}
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Error("load config", "error", err)
			return 1
		}
	}
	p := cfg.Processor()
	p.Logger = log
	if contextPath != "" {
		data, err := os.ReadFile(contextPath)
		if err != nil {
			log.Error("read context", "error", err)
			return 1
		}
		decl, err := config.ParseValue(data)
		if err != nil {
			log.Error("parse context", "file", contextPath, "error", err)
			return 1
		}
		p.Context.Merge(decl)
	}
	for _, r := range rules {
		p.AddRule(r.Prefix, r.Base)
	}

	opt := cfg.Parse
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dup":
			opt.Strictness.OnDuplicateKey, flagErr = config.ParseSeverity(dup)
		case "max-depth":
			opt.MaxDepth = maxDepth
		case "max-bytes":
			opt.MaxBytes = maxBytes
		case "float":
			if float {
				opt.Numbers = jsonns.NumberFloat64
			} else {
				opt.Numbers = jsonns.NumberJSONNumber
			}
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "process: -dup: %v\n", flagErr)
		return 2
	}

	in, name := stdin, "<stdin>"
	if fs.NArg() == 1 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error("open input", "error", err)
			return 1
		}
		defer f.Close()
		in, name = f, fs.Arg(0)
	}
	doc, err := jsonns.DecodeReaderWithIssues(in, opt, func(is jsonns.Issue) {
		log.Warn(is.Text(), "file", name, "code", is.Code, "path", is.Path)
	})
	if err != nil {
		log.Error("decode input", "file", name, "error", err)
		return 1
	}
	out := p.ProcessValue(doc)

	var b []byte
	if pretty {
		b, err = value.MarshalIndent(out, "", "  ")
	} else {
		b, err = value.Marshal(out)
	}
	if err != nil {
		log.Error("encode output", "error", err)
		return 1
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", b); err != nil {
		log.Error("write output", "error", err)
		return 1
	}
	return 0
}

func testCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "also print the output of passing cases")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "test: at least one fixture directory is required")
		return 2
	}

	var passed, total int
	for _, dir := range fs.Args() {
		results, err := fixture.RunDir(dir)
		if err != nil {
			fmt.Fprintf(stderr, "test: %v\n", err)
			return 1
		}
		for _, r := range results {
			total++
			if r.Passed {
				passed++
				fmt.Fprintf(stdout, "PASS: %s [%s]\n", r.Case.Name, r.Case.Stem())
				if *verbose {
					if b, err := value.MarshalIndent(r.Output, "", "  "); err == nil {
						fmt.Fprintf(stdout, "%s\n", b)
					}
				}
				continue
			}
			fmt.Fprintf(stdout, "FAIL: %s [%s]\n%s", r.Case.Name, r.Case.Stem(), r.Diff)
		}
	}
	fmt.Fprintf(stdout, "%d/%d passed\n", passed, total)
	if passed != total {
		return 1
	}
	return 0
}
