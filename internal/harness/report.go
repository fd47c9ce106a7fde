package harness

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Check is the outcome of a single comparison.
type Check struct {
	Name   string `json:"name" yaml:"name"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Passed bool   `json:"passed" yaml:"passed"`
}

// Case holds the results for one input literal.
type Case struct {
	Input    string  `json:"input" yaml:"input"`
	Parsed   string  `json:"parsed,omitempty" yaml:"parsed,omitempty"`
	Reparsed string  `json:"reparsed,omitempty" yaml:"reparsed,omitempty"`
	Checks   []Check `json:"checks" yaml:"checks"`
	Passed   bool    `json:"passed" yaml:"passed"`
}

// check records a result and returns ok. err, when set, is kept as detail.
func (c *Case) check(name string, ok bool, err error) bool {
	chk := Check{Name: name, Passed: ok}
	if err != nil {
		chk.Error = err.Error()
	}
	c.Checks = append(c.Checks, chk)
	return ok
}

func (c Case) done() Case {
	c.Passed = true
	for _, chk := range c.Checks {
		if !chk.Passed {
			c.Passed = false
			break
		}
	}
	return c
}

// Failed returns the checks that did not pass.
func (c Case) Failed() []Check {
	var out []Check
	for _, chk := range c.Checks {
		if !chk.Passed {
			out = append(out, chk)
		}
	}
	return out
}

// Report is the result of a run.
type Report struct {
	Started     time.Time `json:"started" yaml:"started"`
	RunID       string    `json:"run_id" yaml:"run_id"`
	EmptyMode   string    `json:"empty_mode" yaml:"empty_mode"`
	Elapsed     string    `json:"elapsed" yaml:"elapsed"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	Connections []string  `json:"connections,omitempty" yaml:"connections,omitempty"`
	Cases       []Case    `json:"cases" yaml:"cases"`
	Total       int       `json:"total" yaml:"total"`
	Passed      int       `json:"passed" yaml:"passed"`
	Failed      int       `json:"failed" yaml:"failed"`
}

func (r *Report) add(c Case) {
	r.Cases = append(r.Cases, c)
	r.Total++
	if c.Passed {
		r.Passed++
		log.Debug().Str("input", c.Input).Str("parsed", c.Parsed).Msg("Case passed")
		return
	}

	r.Failed++
	for _, chk := range c.Failed() {
		log.Warn().
			Str("run_id", r.RunID).
			Str("input", c.Input).
			Str("check", chk.Name).
			Str("error", chk.Error).
			Msg("Check failed")
	}
}

func (r *Report) finish() {
	r.Elapsed = time.Since(r.Started).String()
}

// OK reports whether the run completed without failures.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Error == ""
}

// Write renders the report as json or yaml.
func (r *Report) Write(w io.Writer, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(r)
	case "json", "":
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "write report")
}
