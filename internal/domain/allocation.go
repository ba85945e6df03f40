package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GroupKey identifies the entries and costs of one store on one day.
type GroupKey struct {
	Date  string
	Store string
}

func (k GroupKey) String() string {
	return k.Date + "/" + k.Store
}

// AllocationMode describes how a group's cost was distributed.
type AllocationMode string

const (
	AllocationNone         AllocationMode = "none"
	AllocationEven         AllocationMode = "even"
	AllocationProportional AllocationMode = "proportional"
)

var two = decimal.NewFromInt(2)

// AllocationGroup is the set of entries sharing a key together with the
// total cost recorded for that key.
type AllocationGroup struct {
	Key       GroupKey
	Entries   []*Entry
	TotalCost decimal.Decimal
	Mode      AllocationMode
}

// GroupEntries groups entries by key. Groups appear in order of their first
// entry and keep the input order of their entries.
func GroupEntries(entries []*Entry) []*AllocationGroup {
	index := make(map[GroupKey]*AllocationGroup)
	groups := make([]*AllocationGroup, 0)

	for _, e := range entries {
		key := e.Key()
		g, ok := index[key]
		if !ok {
			g = &AllocationGroup{Key: key, Mode: AllocationNone}
			index[key] = g
			groups = append(groups, g)
		}
		g.Entries = append(g.Entries, e)
	}

	return groups
}

// AllocateGroups attaches the matching cost total to every group and allocates it.
func AllocateGroups(groups []*AllocationGroup, costTotals map[GroupKey]decimal.Decimal) {
	for _, g := range groups {
		g.TotalCost = costTotals[g.Key]
		g.Allocate()
	}
}

// Allocate distributes TotalCost over the group's entries.
func (g *AllocationGroup) Allocate() {
	g.Mode = allocate(g.Entries, g.TotalCost)
}

// Allocate distributes totalCost over entries that share one key and returns them.
//
// With no positive cost nothing is allocated. When the entries' net revenue
// does not sum to a positive amount the cost is split evenly. Otherwise each
// entry but the last gets its proportional share rounded to cents and the
// last entry takes whatever remains, so shares always sum to totalCost.
func Allocate(entries []*Entry, totalCost decimal.Decimal) []*Entry {
	allocate(entries, totalCost)
	return entries
}

func allocate(entries []*Entry, totalCost decimal.Decimal) AllocationMode {
	if len(entries) == 0 {
		return AllocationNone
	}

	if !totalCost.IsPositive() {
		for _, e := range entries {
			e.applyShare(decimal.Zero)
		}
		return AllocationNone
	}

	totalNet := decimal.Zero
	for _, e := range entries {
		totalNet = totalNet.Add(e.NetRevenue)
	}

	if !totalNet.IsPositive() {
		per := totalCost.Div(decimal.NewFromInt(int64(len(entries))))
		for _, e := range entries {
			e.applyShare(per)
		}
		return AllocationEven
	}

	remaining := totalCost
	last := len(entries) - 1
	for i, e := range entries {
		share := remaining
		if i < last {
			share = totalCost.Mul(e.NetRevenue).Div(totalNet).RoundBank(2)
			remaining = remaining.Sub(share)
		}
		e.applyShare(share)
	}

	return AllocationProportional
}

func (e *Entry) applyShare(share decimal.Decimal) {
	e.AllocatableCost = share
	e.NetAfterCost = e.NetRevenue.Sub(share)
	e.PartnerProfitEach = e.NetAfterCost.Div(two)
}

// AllocatedTotal sums the allocated cost of the group's entries.
func (g *AllocationGroup) AllocatedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range g.Entries {
		sum = sum.Add(e.AllocatableCost)
	}
	return sum
}

// Verify checks that the allocated shares add up to the group cost.
func (g *AllocationGroup) Verify() error {
	expected := g.TotalCost
	if !expected.IsPositive() {
		expected = decimal.Zero
	}

	allocated := g.AllocatedTotal()
	if g.Mode == AllocationEven {
		// Even shares are not rounded; a repeating quotient leaves dust.
		allocated = allocated.Round(8)
		expected = expected.Round(8)
	}

	if !allocated.Equal(expected) {
		return fmt.Errorf("%w: group %s allocated=%s cost=%s",
			ErrAllocationMismatch, g.Key, allocated.String(), expected.String())
	}
	return nil
}
