package models

import (
	"strings"
	"time"

	"github.com/transitops/cardledger/internal/common/dateutil"
)

// Marker summaries written by the lending workflow. Marker entries anchor the
// start of a day and never participate in balance-chain search.
const (
	SummaryNewCard         = "New card"
	SummaryCarryOverPrefix = "Carried over from "
)

// LedgerEntry is one row of net financial movement on a card, carrying the
// balance after the movement. Identity is the persistence-time id, stable
// across edits until the entry is deleted.
type LedgerEntry struct {
	ID         uint64     `json:"id"`
	CardIDm    string     `json:"cardIDm"`
	EntryDate  time.Time  `json:"entryDate"`
	Summary    string     `json:"summary"`
	Income     int64      `json:"income"`
	Expense    int64      `json:"expense"`
	Balance    int64      `json:"balance"`
	StaffIDm   string     `json:"staffIDm"`
	StaffName  string     `json:"staffName"`
	Note       string     `json:"note"`
	IsLent     bool       `json:"isLent"`
	LentAt     *time.Time `json:"lentAt,omitempty"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsMarker reports whether the entry is a day-anchoring marker record.
func (e LedgerEntry) IsMarker() bool {
	return e.Summary == SummaryNewCard || strings.HasPrefix(e.Summary, SummaryCarryOverPrefix)
}

// BalanceBefore derives the balance immediately before this entry from the
// running-balance invariant.
func (e LedgerEntry) BalanceBefore() int64 {
	return e.Balance + e.Expense - e.Income
}

// Earlier orders entries chronologically by (date, id). Ids are assigned in
// insertion order, so they break same-day ties deterministically.
func (e LedgerEntry) Earlier(other LedgerEntry) bool {
	if !dateutil.SameDay(e.EntryDate, other.EntryDate) {
		return e.EntryDate.Before(other.EntryDate)
	}
	return e.ID < other.ID
}

type LedgerFilterOptions struct {
	CardIDm  string
	DateFrom *time.Time
	DateTo   *time.Time
	Month    *time.Time
	Limit    int
	Offset   int
}

type GetLedgerListRequest struct {
	CardIDm  string `param:"cardIDm" validate:"required,cardIDm"`
	DateFrom string `query:"dateFrom" validate:"omitempty,date"`
	DateTo   string `query:"dateTo" validate:"omitempty,date"`
	Month    string `query:"month" validate:"omitempty,month"`
}

func (r GetLedgerListRequest) ToFilterOpts() (*LedgerFilterOptions, error) {
	opts := &LedgerFilterOptions{CardIDm: r.CardIDm}

	if r.DateFrom != "" {
		from, err := dateutil.ParseDate(r.DateFrom)
		if err != nil {
			return nil, err
		}
		opts.DateFrom = &from
	}

	if r.DateTo != "" {
		to, err := dateutil.ParseDate(r.DateTo)
		if err != nil {
			return nil, err
		}
		opts.DateTo = &to
	}

	if r.Month != "" {
		month, err := time.Parse("2006-01", r.Month)
		if err != nil {
			return nil, err
		}
		opts.Month = &month
	}

	return opts, nil
}
