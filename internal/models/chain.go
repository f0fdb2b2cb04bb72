package models

import (
	"sort"

	"github.com/transitops/cardledger/internal/common/dateutil"
)

// ReorderByBalanceChain recovers the chronological order of one calendar
// day's entries purely from balance continuity. Tap timestamps from the
// reader are frequently absent or wrong, but each entry's balance links to
// its predecessor's, so the true order is the unique walk along that chain.
//
// Marker entries are placed first and excluded from the search. When the
// chain cannot be resolved the remaining entries are appended in id order:
// the result is always a total order, never an error.
func ReorderByBalanceChain(entries []LedgerEntry, precedingBalance int64) []LedgerEntry {
	var markers, normals []LedgerEntry
	for _, e := range entries {
		if e.IsMarker() {
			markers = append(markers, e)
		} else {
			normals = append(normals, e)
		}
	}

	ordered := make([]LedgerEntry, 0, len(entries))
	ordered = append(ordered, markers...)

	// nothing to search for
	if len(normals) <= 1 {
		return append(ordered, normals...)
	}

	remaining := make([]LedgerEntry, len(normals))
	copy(remaining, normals)

	current := precedingBalance
	placedAny := false

	for len(remaining) > 0 {
		idx := -1
		for i, e := range remaining {
			if e.BalanceBefore() == current {
				idx = i
				break
			}
		}

		if idx < 0 && !placedAny {
			// The recorded preceding balance can be stale (manual correction,
			// missed dump). Fall back to the entry no other entry chains into.
			idx = chainRootIndex(remaining)
		}

		if idx < 0 {
			// Mid-chain stall: keep a deterministic total order instead of
			// failing the whole reconstruction.
			sort.Slice(remaining, func(i, j int) bool {
				return remaining[i].ID < remaining[j].ID
			})
			ordered = append(ordered, remaining...)
			break
		}

		ordered = append(ordered, remaining[idx])
		current = remaining[idx].Balance
		placedAny = true
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return ordered
}

// chainRootIndex finds the entry whose pre-balance is not any other entry's
// post-balance, i.e. the only candidate that can start the chain.
func chainRootIndex(entries []LedgerEntry) int {
	for i, e := range entries {
		isRoot := true
		for j, other := range entries {
			if i == j {
				continue
			}
			if e.BalanceBefore() == other.Balance {
				isRoot = false
				break
			}
		}
		if isRoot {
			return i
		}
	}
	return -1
}

// ReorderWindowByBalanceChain reorders a whole date window. Entries are
// grouped by calendar date, days run oldest first, and each day is seeded
// with the previous day's final balance, starting from carryOverBalance.
func ReorderWindowByBalanceChain(entries []LedgerEntry, carryOverBalance int64) []LedgerEntry {
	if len(entries) == 0 {
		return nil
	}

	byDay := make(map[string][]LedgerEntry)
	var dayKeys []string
	for _, e := range entries {
		key := dateutil.BusinessDate(e.EntryDate).Format(dateutil.DateLayout)
		if _, ok := byDay[key]; !ok {
			dayKeys = append(dayKeys, key)
		}
		byDay[key] = append(byDay[key], e)
	}
	sort.Strings(dayKeys)

	ordered := make([]LedgerEntry, 0, len(entries))
	balance := carryOverBalance
	for _, key := range dayKeys {
		day := ReorderByBalanceChain(byDay[key], balance)
		ordered = append(ordered, day...)
		if len(day) > 0 {
			balance = day[len(day)-1].Balance
		}
	}

	return ordered
}
