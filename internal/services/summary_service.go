package services

import (
	"sort"
	"strings"

	"github.com/transitops/cardledger/internal/common/dateutil"
	"github.com/transitops/cardledger/internal/models"
)

// Fixed labels for whole-entry summaries.
const (
	SummaryToppedUp       = "Topped up"
	SummaryPointsRedeemed = "Points redeemed"
	SummaryBusPlaceholder = "Bus (★)"
)

// SummaryService renders display text for ledger entries from their ordered
// detail records. It is stateless, so alternate locale renderers can be
// swapped in without touching callers.
type SummaryService interface {
	RenderEntry(records models.DetailRecords) string
	RenderDays(days []models.DayRecords) []string
}

type summary service

var _ SummaryService = (*summary)(nil)

// RenderEntry converts one entry's ordered detail records into a single
// summary line.
func (s *summary) RenderEntry(records models.DetailRecords) string {
	if len(records) == 0 {
		return ""
	}

	allCharge := true
	allPoint := true
	for _, d := range records {
		if !d.IsCharge {
			allCharge = false
		}
		if !d.IsPointRedemption {
			allPoint = false
		}
	}
	if allCharge {
		return SummaryToppedUp
	}
	if allPoint {
		return SummaryPointsRedeemed
	}

	var rail, bus models.DetailRecords
	for _, d := range records {
		switch {
		case d.IsCharge || d.IsPointRedemption:
		case d.IsBus:
			bus = append(bus, d)
		default:
			rail = append(rail, d)
		}
	}

	var parts []string
	if len(rail) > 0 {
		parts = append(parts, renderRailTrips(rail)...)
	}
	if len(bus) > 0 {
		parts = append(parts, renderBusTrips(bus))
	}

	return strings.Join(parts, " / ")
}

type railLeg struct {
	from, to string
}

// renderRailTrips labels a time-ordered rail trip list. Round trips are
// detected first: a pair (A→B) and (B→A) anywhere in the list collapses to
// one label, with the earlier direction picking the reported start. Remaining
// trips are consolidated across transfers (exit equals next entry), unless
// the consolidated span would start and end at the same station.
func renderRailTrips(rail models.DetailRecords) []string {
	legs := make([]railLeg, len(rail))
	for i, d := range rail {
		legs[i] = railLeg{from: d.EntryStationName(), to: d.ExitStationName()}
	}

	type labeled struct {
		index int
		text  string
	}
	var out []labeled

	consumed := make([]bool, len(legs))
	for i, leg := range legs {
		if consumed[i] {
			continue
		}
		for j := i + 1; j < len(legs); j++ {
			if consumed[j] {
				continue
			}
			if legs[j].from == leg.to && legs[j].to == leg.from {
				consumed[i] = true
				consumed[j] = true
				out = append(out, labeled{index: i, text: leg.from + "～" + leg.to + " round trip"})
				break
			}
		}
	}

	// consolidate the rest across transfers
	for i := 0; i < len(legs); {
		if consumed[i] {
			i++
			continue
		}
		run := []railLeg{legs[i]}
		start := i
		j := i + 1
		for j < len(legs) && !consumed[j] && legs[j].from == run[len(run)-1].to {
			run = append(run, legs[j])
			j++
		}

		if len(run) > 1 && run[0].from == run[len(run)-1].to {
			// a loop would read "X～X", keep the legs visible instead
			for k, leg := range run {
				out = append(out, labeled{index: start + k, text: leg.from + "～" + leg.to})
			}
		} else {
			out = append(out, labeled{index: start, text: run[0].from + "～" + run[len(run)-1].to})
		}
		i = j
	}

	sort.Slice(out, func(a, b int) bool { return out[a].index < out[b].index })

	texts := make([]string, len(out))
	for i, l := range out {
		texts[i] = l.text
	}
	return texts
}

// renderBusTrips joins distinct stop names when the user has entered them,
// otherwise emits the pending-entry placeholder.
func renderBusTrips(bus models.DetailRecords) string {
	seen := make(map[string]bool)
	var stops []string
	for _, d := range bus {
		if d.BusStop == "" || seen[d.BusStop] {
			continue
		}
		seen[d.BusStop] = true
		stops = append(stops, d.BusStop)
	}

	if len(stops) == 0 {
		return SummaryBusPlaceholder
	}
	return "Bus (" + strings.Join(stops, ", ") + ")"
}

// RenderDays renders a newest-first day-grouped dump as report lines, one
// line per non-empty category per day, oldest day first. Categories keep the
// order of their earliest record within the day.
func (s *summary) RenderDays(days []models.DayRecords) []string {
	var lines []string

	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		prefix := day.Date.Format(dateutil.ShortDateLayout) + " "

		var usage, charge, point models.DetailRecords
		usageAt, chargeAt, pointAt := -1, -1, -1
		for idx, d := range day.Records {
			switch {
			case d.IsCharge:
				charge = append(charge, d)
				if chargeAt < 0 {
					chargeAt = idx
				}
			case d.IsPointRedemption:
				point = append(point, d)
				if pointAt < 0 {
					pointAt = idx
				}
			default:
				usage = append(usage, d)
				if usageAt < 0 {
					usageAt = idx
				}
			}
		}

		type categoryLine struct {
			at   int
			text string
		}
		var cats []categoryLine
		if len(usage) > 0 {
			cats = append(cats, categoryLine{at: usageAt, text: s.RenderEntry(usage)})
		}
		if len(charge) > 0 {
			cats = append(cats, categoryLine{at: chargeAt, text: SummaryToppedUp})
		}
		if len(point) > 0 {
			cats = append(cats, categoryLine{at: pointAt, text: SummaryPointsRedeemed})
		}
		sort.Slice(cats, func(a, b int) bool { return cats[a].at < cats[b].at })

		for _, c := range cats {
			lines = append(lines, prefix+c.text)
		}
	}

	return lines
}
