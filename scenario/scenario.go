// Package scenario replays a trading session described in YAML: instruments
// are declared, then trades, price moves and reports happen in order.
//
// A scenario looks like:
//
//	seed: 42
//	instruments:
//	  - {name: ABB, currency: SEK, issuer: Asea Brown Boveri, price: 75}
//	steps:
//	  - trade: {instrument: ABB, portfolio: Stock Portfolio, acquirer: Equity Desk,
//	            counterparty: Deutsche Bank, quantity: 10, marketplace: OMX}
//	  - walk: {days: 3}
//	  - price: {instrument: ABB, value: 80.5}
//	  - quotes: {file: quotes.json, paths: {ABB: "$.last.ABB"}}
//	  - report: {by: counterparty}
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/tradebook"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is a trading session to replay.
type Scenario struct {
	Seed        int64        `yaml:"seed,omitempty"`
	Sigma       float64      `yaml:"sigma,omitempty"` // Sigma is the random walk volatility, tradebook.DefaultSigma if zero.
	Instruments []Instrument `yaml:"instruments"`
	Steps       []Step       `yaml:"steps"`

	dir string // directory used to resolve relative quote files.
}

// Instrument declares a tradable instrument and its initial price.
type Instrument struct {
	Name     string          `yaml:"name"`
	Currency string          `yaml:"currency"`
	Issuer   string          `yaml:"issuer"`
	Price    decimal.Decimal `yaml:"price"`
}

// Step is one event of the session. Exactly one field must be set.
type Step struct {
	Trade  *Trade  `yaml:"trade,omitempty"`
	Price  *Price  `yaml:"price,omitempty"`
	Walk   *Walk   `yaml:"walk,omitempty"`
	Quotes *Quotes `yaml:"quotes,omitempty"`
	Report *Report `yaml:"report,omitempty"`
}

// Trade records a trade. Time defaults to the current day.
type Trade struct {
	Instrument   string `yaml:"instrument"`
	Portfolio    string `yaml:"portfolio"`
	Acquirer     string `yaml:"acquirer"`
	Counterparty string `yaml:"counterparty"`
	Quantity     int64  `yaml:"quantity"`
	Marketplace  string `yaml:"marketplace"`
	Time         string `yaml:"time,omitempty"`
}

// Price sets an instrument price.
type Price struct {
	Instrument string          `yaml:"instrument"`
	Value      decimal.Decimal `yaml:"value"`
}

// Walk lets time fly: every instrument price moves randomly once per day.
// Zero Days means a random leap of 1 to MaxLeap days.
type Walk struct {
	Days int `yaml:"days,omitempty"`
}

// Quotes updates prices from a JSON quote document.
type Quotes struct {
	File  string           `yaml:"file"`
	Paths tradebook.Quotes `yaml:"paths"`
}

// Report groups the ledger by a category, portfolio by default.
type Report struct {
	By tradebook.Category `yaml:"by,omitempty"`
}

// MaxLeap is the longest random time leap of a Walk step.
const MaxLeap = 5

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Decode reads and validates a scenario.
func Decode(r io.Reader) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}

// Validate checks the scenario structure. Instrument and trade fields are
// validated by tradebook when the scenario runs.
func (s *Scenario) Validate() error {
	var errs error
	if s.Sigma < 0 {
		errs = errors.Join(errs, fmt.Errorf("sigma must not be negative"))
	}
	names := make(map[string]bool)
	for i, inst := range s.Instruments {
		if names[inst.Name] {
			errs = errors.Join(errs, fmt.Errorf("instrument %d: duplicate name %q", i+1, inst.Name))
		}
		names[inst.Name] = true
	}
	for i, st := range s.Steps {
		if n := st.kinds(); n != 1 {
			errs = errors.Join(errs, fmt.Errorf("step %d: must have exactly one action, got %d", i+1, n))
			continue
		}
		switch {
		case st.Trade != nil:
			if !names[st.Trade.Instrument] {
				errs = errors.Join(errs, fmt.Errorf("step %d: unknown instrument %q", i+1, st.Trade.Instrument))
			}
		case st.Price != nil:
			if !names[st.Price.Instrument] {
				errs = errors.Join(errs, fmt.Errorf("step %d: unknown instrument %q", i+1, st.Price.Instrument))
			}
		case st.Walk != nil:
			if st.Walk.Days < 0 {
				errs = errors.Join(errs, fmt.Errorf("step %d: walk days must not be negative", i+1))
			}
		case st.Quotes != nil:
			if st.Quotes.File == "" {
				errs = errors.Join(errs, fmt.Errorf("step %d: quotes file is required", i+1))
			}
		}
	}
	return errs
}

func (st Step) kinds() (n int) {
	for _, set := range []bool{st.Trade != nil, st.Price != nil, st.Walk != nil, st.Quotes != nil, st.Report != nil} {
		if set {
			n++
		}
	}
	return n
}
