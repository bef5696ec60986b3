// Package fixture reads and runs processor test fixtures.
//
// A fixture is a text file of five blocks separated by blank lines:
//
//	test name
//
//	{"@vocab": "http://example.com/ns#"}     (external context, JSON)
//
//	ex: http://example.com/ns#               (target rules, or "-")
//
//	{"hello": "world"}                       (input document, JSON)
//
//	{"ex:hello": "world"}                    (expected output, JSON)
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/value"
)

// Case is a parsed fixture.
type Case struct {
	Name    string
	File    string
	Context any
	Target  jsonns.TargetContext
	Input   any
	Expect  any
}

// Result is the outcome of running a Case.
type Result struct {
	Case   Case
	Output any
	Passed bool
	// Diff is a unified diff from expectation to output when the case failed.
	Diff string
}

// Parse parses fixture data. file is only used for reporting.
func Parse(file string, data []byte) (Case, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(text, "\n\n")
	if len(parts) < 5 {
		return Case{}, fmt.Errorf("fixture %s: want 5 blocks, got %d", file, len(parts))
	}
	c := Case{Name: strings.TrimSpace(parts[0]), File: file}

	var err error
	if c.Context, err = decodeBlock(parts[1]); err != nil {
		return Case{}, fmt.Errorf("fixture %s: context: %w", file, err)
	}
	if c.Target, err = jsonns.ParseTargetRules(parts[2]); err != nil {
		return Case{}, fmt.Errorf("fixture %s: target: %w", file, err)
	}
	if c.Input, err = decodeBlock(parts[3]); err != nil {
		return Case{}, fmt.Errorf("fixture %s: input: %w", file, err)
	}
	if c.Expect, err = decodeBlock(parts[4]); err != nil {
		return Case{}, fmt.Errorf("fixture %s: expectation: %w", file, err)
	}
	return c, nil
}

func decodeBlock(s string) (any, error) {
	return jsonns.Decode(jsonns.JSONBytes([]byte(s)))
}

// LoadDir parses every *.txt file in dir, sorted by file name.
func LoadDir(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	cases := make([]Case, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		c, err := Parse(p, data)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Processor returns a processor configured for the case.
func (c Case) Processor() *jsonns.Processor {
	p := jsonns.New()
	p.Context = *jsonns.NewContext(c.Context)
	p.Target = c.Target
	return p
}

// Stem returns the file name without directory and extension.
func (c Case) Stem() string {
	return strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
}

// Run processes the input and compares it with the expectation.
func (c Case) Run() Result {
	return c.RunWith(c.Processor())
}

// RunWith runs the case through p instead of the case's own configuration.
func (c Case) RunWith(p *jsonns.Processor) Result {
	out := p.ProcessValue(c.Input)
	r := Result{Case: c, Output: out, Passed: value.Equal(c.Expect, out)}
	if !r.Passed {
		r.Diff = diff(c.Expect, out)
	}
	return r
}

// RunDir loads and runs every fixture in dir.
func RunDir(dir string) ([]Result, error) {
	cases, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = c.Run()
	}
	return results, nil
}

func diff(want, got any) string {
	a, err := value.MarshalIndent(want, "", "  ")
	if err != nil {
		return err.Error()
	}
	b, err := value.MarshalIndent(got, "", "  ")
	if err != nil {
		return err.Error()
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a) + "\n"),
		B:        difflib.SplitLines(string(b) + "\n"),
		FromFile: "expected",
		ToFile:   "output",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return text
}
