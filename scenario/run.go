package scenario

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/etnz/tradebook"
)

// Book is the state built by running a scenario.
type Book struct {
	Instruments map[string]*tradebook.Instrument
	Names       []string // Names lists instruments in declaration order.
	Ledger      *tradebook.Ledger
	Day         int // Day is the current day, starting at 0.
}

// Instrument returns the named instrument, or nil.
func (b *Book) Instrument(name string) *tradebook.Instrument { return b.Instruments[name] }

// ReportFunc receives every report produced by a scenario, with the day it was
// produced on.
type ReportFunc func(day string, r *tradebook.Report) error

// Client is the http client used to fetch remote quote documents.
var Client = http.DefaultClient

// Run replays the scenario and returns the resulting book. Reports are passed
// to report, which may be nil.
//
// Run stops at the first failing step.
func (s *Scenario) Run(report ReportFunc) (*Book, error) {
	b := &Book{
		Instruments: make(map[string]*tradebook.Instrument, len(s.Instruments)),
		Ledger:      tradebook.NewLedger(),
	}
	for _, decl := range s.Instruments {
		inst, err := tradebook.NewInstrument(decl.Name, decl.Currency, decl.Issuer, decl.Price)
		if err != nil {
			return nil, err
		}
		b.Instruments[decl.Name] = inst
		b.Names = append(b.Names, decl.Name)
	}

	walk := tradebook.NewPriceWalk(s.Seed)
	if s.Sigma > 0 {
		walk.Sigma = s.Sigma
	}

	for i, st := range s.Steps {
		if err := s.apply(b, walk, st, report); err != nil {
			return b, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return b, nil
}

func (s *Scenario) apply(b *Book, walk *tradebook.PriceWalk, st Step, report ReportFunc) error {
	switch {
	case st.Trade != nil:
		o := tradebook.Order{
			Portfolio:    st.Trade.Portfolio,
			Acquirer:     st.Trade.Acquirer,
			Counterparty: st.Trade.Counterparty,
			Quantity:     st.Trade.Quantity,
			Marketplace:  st.Trade.Marketplace,
			Time:         st.Trade.Time,
		}
		if o.Time == "" {
			o.Time = strconv.Itoa(b.Day)
		}
		_, err := b.Ledger.Record(b.Instrument(st.Trade.Instrument), o)
		return err

	case st.Price != nil:
		inst := b.Instrument(st.Price.Instrument)
		if inst == nil {
			return fmt.Errorf("%w: unknown instrument %q", tradebook.ErrValidation, st.Price.Instrument)
		}
		return inst.UpdatePrice(st.Price.Value)

	case st.Walk != nil:
		days := st.Walk.Days
		if days == 0 {
			days = walk.Leap(MaxLeap)
		}
		b.Day += days
		insts := make([]*tradebook.Instrument, 0, len(b.Names))
		for _, name := range b.Names {
			insts = append(insts, b.Instruments[name])
		}
		return walk.Steps(days, insts...)

	case st.Quotes != nil:
		src := st.Quotes.File
		if s.dir != "" && !filepath.IsAbs(src) && !isURL(src) {
			src = filepath.Join(s.dir, src)
		}
		doc, err := tradebook.LoadQuotes(Client, src)
		if err != nil {
			return err
		}
		return st.Quotes.Paths.Apply(doc, b.Instruments)

	case st.Report != nil:
		r, err := b.Ledger.GroupBy(st.Report.By)
		if err != nil {
			return err
		}
		if report == nil {
			return nil
		}
		return report(strconv.Itoa(b.Day), r)
	}
	return fmt.Errorf("%w: empty step", tradebook.ErrValidation)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
