package entry

import (
	"fmt"
	"strconv"
	"strings"

	"nestlog/internal/utils/timeutil"
)

type FeedingType string

const (
	FeedingFormula FeedingType = "formula"
	FeedingBreast  FeedingType = "breast"
)

type DiaperType string

const (
	DiaperPee   DiaperType = "pee"
	DiaperPoo   DiaperType = "poo"
	DiaperMixed DiaperType = "mixed"
)

// Feeding is a single feeding entry. Timestamp (epoch milliseconds) is the
// authoritative ordering key; Time is the display string the caller recorded.
type Feeding struct {
	ID        int64       `json:"id"`
	Type      FeedingType `json:"type"`
	Volume    int         `json:"volume"`
	Time      string      `json:"time"`
	Timestamp int64       `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

// Diaper is a single diaper change. Color is only meaningful for poo and
// mixed changes and is dropped on write for pee.
type Diaper struct {
	ID        int64      `json:"id"`
	Type      DiaperType `json:"type"`
	Sub       string     `json:"sub"`
	Time      string     `json:"time"`
	Timestamp int64      `json:"timestamp"`
	Color     string     `json:"color,omitempty"`
}

// Sleep is a single sleep span. Duration is always recomputed from
// Start/End on write, never trusted from input.
type Sleep struct {
	ID        int64  `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Duration  string `json:"duration"`
	Timestamp int64  `json:"timestamp"`
}

// Growth is a single measurement. Weight and Height are decimal strings
// fixed to two places; Timestamp is derived from Date.
type Growth struct {
	ID        int64  `json:"id"`
	Weight    string `json:"weight"`
	Height    string `json:"height"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
}

func (f Feeding) EntryID() int64        { return f.ID }
func (f Feeding) EntryTimestamp() int64 { return f.Timestamp }

func (d Diaper) EntryID() int64        { return d.ID }
func (d Diaper) EntryTimestamp() int64 { return d.Timestamp }

func (s Sleep) EntryID() int64        { return s.ID }
func (s Sleep) EntryTimestamp() int64 { return s.Timestamp }

func (g Growth) EntryID() int64        { return g.ID }
func (g Growth) EntryTimestamp() int64 { return g.Timestamp }

// Validate rejects a feeding with a missing type, time or negative volume.
func (f Feeding) Validate() error {
	switch f.Type {
	case FeedingFormula, FeedingBreast:
	default:
		return fmt.Errorf("%w: feeding type must be formula or breast", ErrValidation)
	}
	if f.Volume < 0 {
		return fmt.Errorf("%w: feeding volume must not be negative", ErrValidation)
	}
	if strings.TrimSpace(f.Time) == "" {
		return fmt.Errorf("%w: feeding time is required", ErrValidation)
	}
	return nil
}

// Normalize defaults a zero timestamp to now.
func (f Feeding) Normalize(now int64) Feeding {
	if f.Timestamp == 0 {
		f.Timestamp = now
	}
	return f
}

func (d Diaper) Validate() error {
	switch d.Type {
	case DiaperPee, DiaperPoo, DiaperMixed:
	default:
		return fmt.Errorf("%w: diaper type must be pee, poo or mixed", ErrValidation)
	}
	if strings.TrimSpace(d.Time) == "" {
		return fmt.Errorf("%w: diaper time is required", ErrValidation)
	}
	return nil
}

// Normalize defaults a zero timestamp to now and enforces the color
// invariant: pee changes never carry a color.
func (d Diaper) Normalize(now int64) Diaper {
	if d.Timestamp == 0 {
		d.Timestamp = now
	}
	if d.Type == DiaperPee {
		d.Color = ""
	}
	return d
}

func (s Sleep) Validate() error {
	if _, _, err := timeutil.ParseClock(s.Start); err != nil {
		return fmt.Errorf("%w: sleep start: %v", ErrValidation, err)
	}
	if _, _, err := timeutil.ParseClock(s.End); err != nil {
		return fmt.Errorf("%w: sleep end: %v", ErrValidation, err)
	}
	return nil
}

// Normalize recomputes Duration from Start/End and defaults a zero
// timestamp to now. Validate must have passed first.
func (s Sleep) Normalize(now int64) (Sleep, error) {
	duration, err := timeutil.DurationBetween(s.Start, s.End)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	s.Duration = duration
	if s.Timestamp == 0 {
		s.Timestamp = now
	}
	return s, nil
}

func (g Growth) Validate() error {
	if _, err := strconv.ParseFloat(g.Weight, 64); err != nil {
		return fmt.Errorf("%w: growth weight must be a decimal number", ErrValidation)
	}
	if _, err := strconv.ParseFloat(g.Height, 64); err != nil {
		return fmt.Errorf("%w: growth height must be a decimal number", ErrValidation)
	}
	if _, err := timeutil.DateToEpoch(g.Date); err != nil {
		return fmt.Errorf("%w: growth date: %v", ErrValidation, err)
	}
	return nil
}

// Normalize fixes Weight/Height to two decimal places and derives
// Timestamp from Date. Validate must have passed first.
func (g Growth) Normalize() (Growth, error) {
	weight, err := strconv.ParseFloat(g.Weight, 64)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	height, err := strconv.ParseFloat(g.Height, 64)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ts, err := timeutil.DateToEpoch(g.Date)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	g.Weight = fmt.Sprintf("%.2f", weight)
	g.Height = fmt.Sprintf("%.2f", height)
	g.Timestamp = ts
	return g, nil
}
