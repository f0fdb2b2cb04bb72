package models

import (
	"sort"
	"time"

	"github.com/transitops/cardledger/internal/common/stationcode"
)

// DetailRecord is one raw transaction from a card reader dump, finer-grained
// than a ledger entry. It is transient on the card side: read, folded into a
// ledger entry, then only kept as the entry's detail rows.
type DetailRecord struct {
	ID                uint64     `json:"id"`
	LedgerID          uint64     `json:"ledgerId"`
	SeqNo             int64      `json:"seqNo"`
	TappedAt          *time.Time `json:"tappedAt,omitempty"`
	EntryStationCode  int        `json:"entryStationCode,omitempty"`
	ExitStationCode   int        `json:"exitStationCode,omitempty"`
	EntryStation      string     `json:"entryStation,omitempty"`
	ExitStation       string     `json:"exitStation,omitempty"`
	IsBus             bool       `json:"isBus"`
	IsCharge          bool       `json:"isCharge"`
	IsPointRedemption bool       `json:"isPointRedemption"`
	Amount            int64      `json:"amount"`
	BalanceAfter      *int64     `json:"balanceAfter,omitempty"`
	BusStop           string     `json:"busStop,omitempty"`
	GroupTag          int        `json:"groupTag,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Income is the amount this record adds to the ledger's income column.
func (d DetailRecord) Income() int64 {
	if d.IsCharge {
		return d.Amount
	}
	return 0
}

// Expense is the amount this record adds to the ledger's expense column.
// Point redemptions raise the balance but are counted as neither income nor
// expense.
func (d DetailRecord) Expense() int64 {
	if d.IsCharge || d.IsPointRedemption {
		return 0
	}
	return d.Amount
}

// EntryStationName resolves the boarding station display name, falling back
// to the static code table when the dump carried only a code.
func (d DetailRecord) EntryStationName() string {
	if d.EntryStation != "" {
		return d.EntryStation
	}
	if name, ok := stationcode.StationName(d.EntryStationCode); ok {
		return name
	}
	return ""
}

// ExitStationName resolves the alighting station display name.
func (d DetailRecord) ExitStationName() string {
	if d.ExitStation != "" {
		return d.ExitStation
	}
	if name, ok := stationcode.StationName(d.ExitStationCode); ok {
		return name
	}
	return ""
}

// DetailRecords is an ordered collection of detail records.
type DetailRecords []DetailRecord

// TimeLast returns the record with the latest tap timestamp. Records without
// a timestamp are unreliable, so when any record lacks one the collection
// falls back to original order and the last element wins.
func (ds DetailRecords) TimeLast() (DetailRecord, bool) {
	if len(ds) == 0 {
		return DetailRecord{}, false
	}

	for _, d := range ds {
		if d.TappedAt == nil {
			return ds[len(ds)-1], true
		}
	}

	last := ds[0]
	for _, d := range ds[1:] {
		if d.TappedAt.After(*last.TappedAt) {
			last = d
		}
	}
	return last, true
}

// SumIncome totals charge amounts.
func (ds DetailRecords) SumIncome() int64 {
	var total int64
	for _, d := range ds {
		total += d.Income()
	}
	return total
}

// SumExpense totals amounts that are neither charges nor point redemptions.
func (ds DetailRecords) SumExpense() int64 {
	var total int64
	for _, d := range ds {
		total += d.Expense()
	}
	return total
}

// ClosingBalance is the balance after the time-last record, or zero when no
// record reports one.
func (ds DetailRecords) ClosingBalance() int64 {
	last, ok := ds.TimeLast()
	if !ok || last.BalanceAfter == nil {
		return 0
	}
	return *last.BalanceAfter
}

// GroupTags returns the distinct non-zero group tags in ascending order.
func (ds DetailRecords) GroupTags() []int {
	seen := make(map[int]bool)
	var tags []int
	for _, d := range ds {
		if d.GroupTag != 0 && !seen[d.GroupTag] {
			seen[d.GroupTag] = true
			tags = append(tags, d.GroupTag)
		}
	}
	sort.Ints(tags)
	return tags
}

// ByGroupTag selects the records carrying the given tag, preserving order.
func (ds DetailRecords) ByGroupTag(tag int) DetailRecords {
	var group DetailRecords
	for _, d := range ds {
		if d.GroupTag == tag {
			group = append(group, d)
		}
	}
	return group
}

// DayRecords is one calendar day's worth of detail records, used by the
// day-grouped summary renderer.
type DayRecords struct {
	Date    time.Time
	Records DetailRecords
}

// EarliestTap returns the earliest tap timestamp in the collection, if any
// record carries one.
func (ds DetailRecords) EarliestTap() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, d := range ds {
		if d.TappedAt == nil {
			continue
		}
		if !found || d.TappedAt.Before(earliest) {
			earliest = *d.TappedAt
			found = true
		}
	}
	return earliest, found
}
