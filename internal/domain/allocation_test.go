package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entriesWithNet(store string, nets ...string) []*Entry {
	day := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	out := make([]*Entry, 0, len(nets))
	for i, n := range nets {
		out = append(out, &Entry{
			Date:           day,
			StoreCode:      store,
			StoreName:      store,
			AppointmentRef: fmt.Sprintf("ref-%d", i),
			NetRevenue:     dec(n),
		})
	}
	return out
}

func shares(entries []*Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.AllocatableCost.StringFixed(2))
	}
	return out
}

func sumShares(entries []*Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.AllocatableCost)
	}
	return sum
}

func TestAllocate_Proportional(t *testing.T) {
	t.Parallel()

	entries := Allocate(entriesWithNet("Central", "100", "200", "300"), dec("60"))

	assert.Equal(t, []string{"10.00", "20.00", "30.00"}, shares(entries))
	assert.True(t, sumShares(entries).Equal(dec("60")))
	assert.True(t, entries[2].NetAfterCost.Equal(dec("270")))
	assert.True(t, entries[2].PartnerProfitEach.Equal(dec("135")))
}

func TestAllocate_LastEntryAbsorbsRounding(t *testing.T) {
	t.Parallel()

	entries := Allocate(entriesWithNet("Central", "100", "100", "100"), dec("100"))

	assert.Equal(t, []string{"33.33", "33.33", "33.34"}, shares(entries))
	assert.True(t, sumShares(entries).Equal(dec("100")), "shares must sum to the cost exactly")
}

func TestAllocate_OrderDecidesWhoAbsorbs(t *testing.T) {
	t.Parallel()

	forward := Allocate(entriesWithNet("Central", "1", "2"), dec("1"))
	backward := Allocate(entriesWithNet("Central", "2", "1"), dec("1"))

	// 1/3 and 2/3 of a unit, the rounded share goes first.
	assert.Equal(t, []string{"0.33", "0.67"}, shares(forward))
	assert.Equal(t, []string{"0.67", "0.33"}, shares(backward))
}

func TestAllocate_EvenSplitWhenNetNotPositive(t *testing.T) {
	t.Parallel()

	entries := Allocate(entriesWithNet("Central", "-50", "-10"), dec("40"))

	assert.Equal(t, []string{"20.00", "20.00"}, shares(entries))
	assert.True(t, entries[0].NetAfterCost.Equal(dec("-70")))
	assert.True(t, entries[1].NetAfterCost.Equal(dec("-30")))
	assert.True(t, entries[1].PartnerProfitEach.Equal(dec("-15")))

	zeroNet := Allocate(entriesWithNet("Central", "0", "0", "0"), dec("90"))
	for _, e := range zeroNet {
		assert.True(t, e.AllocatableCost.Equal(dec("30")))
	}
}

func TestAllocate_NoCost(t *testing.T) {
	t.Parallel()

	for _, cost := range []string{"0", "-25"} {
		entries := entriesWithNet("Central", "100", "40")
		entries[0].AllocatableCost = dec("999")

		Allocate(entries, dec(cost))

		for _, e := range entries {
			assert.True(t, e.AllocatableCost.IsZero())
			assert.True(t, e.NetAfterCost.Equal(e.NetRevenue))
			assert.True(t, e.PartnerProfitEach.Equal(e.NetRevenue.Div(two)))
		}
	}
}

func TestAllocate_Invariants(t *testing.T) {
	t.Parallel()

	groups := [][]string{
		{"1"},
		{"10", "0", "-5", "33.33"},
		{"0.01", "0.01", "0.01", "999999.99"},
		{"17", "23", "29", "31", "37", "41", "43"},
		{"-100", "50", "60"},
	}
	costs := []string{"0.01", "1", "77.77", "1000", "123456.78"}

	for _, nets := range groups {
		for _, cost := range costs {
			entries := Allocate(entriesWithNet("Central", nets...), dec(cost))

			require.True(t, sumShares(entries).Equal(dec(cost)),
				"nets=%v cost=%s sum=%s", nets, cost, sumShares(entries))
			for _, e := range entries {
				require.True(t, e.NetAfterCost.Equal(e.NetRevenue.Sub(e.AllocatableCost)))
				require.True(t, e.PartnerProfitEach.Mul(two).Equal(e.NetAfterCost))
			}
		}
	}
}

func TestAllocate_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Allocate(nil, dec("10")))
}

func TestGroupEntries_PreservesOrder(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	entries := []*Entry{
		{Date: day2, StoreName: "North", AppointmentRef: "a"},
		{Date: day1, StoreName: "South", AppointmentRef: "b"},
		{Date: day2, StoreName: "North", AppointmentRef: "c"},
		{Date: day1, StoreName: "North", AppointmentRef: "d"},
	}

	groups := GroupEntries(entries)

	require.Len(t, groups, 3)
	assert.Equal(t, GroupKey{Date: "2024-05-02", Store: "North"}, groups[0].Key)
	assert.Equal(t, GroupKey{Date: "2024-05-01", Store: "South"}, groups[1].Key)
	assert.Equal(t, GroupKey{Date: "2024-05-01", Store: "North"}, groups[2].Key)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "a", groups[0].Entries[0].AppointmentRef)
	assert.Equal(t, "c", groups[0].Entries[1].AppointmentRef)
}

func TestAllocateGroups(t *testing.T) {
	t.Parallel()

	entries := append(entriesWithNet("North", "100", "300"), entriesWithNet("South", "-1")...)
	groups := GroupEntries(entries)
	day := "2024-05-02"

	AllocateGroups(groups, map[GroupKey]decimal.Decimal{
		{Date: day, Store: "North"}: dec("40"),
		{Date: day, Store: "South"}: dec("15"),
		{Date: day, Store: "West"}:  dec("99"),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, AllocationProportional, groups[0].Mode)
	assert.Equal(t, AllocationEven, groups[1].Mode)
	assert.Equal(t, []string{"10.00", "30.00"}, shares(groups[0].Entries))
	assert.Equal(t, []string{"15.00"}, shares(groups[1].Entries))
	for _, g := range groups {
		assert.NoError(t, g.Verify())
	}
}

func TestAllocationGroup_Verify(t *testing.T) {
	t.Parallel()

	g := &AllocationGroup{
		Key:       GroupKey{Date: "2024-05-02", Store: "North"},
		Entries:   entriesWithNet("North", "0", "0", "0"),
		TotalCost: dec("100"),
	}
	g.Allocate()
	require.Equal(t, AllocationEven, g.Mode)
	assert.NoError(t, g.Verify())

	g.Entries[0].AllocatableCost = dec("1")
	err := g.Verify()
	assert.True(t, errors.Is(err, ErrAllocationMismatch), "got %v", err)

	unallocated := &AllocationGroup{Entries: entriesWithNet("North", "5"), TotalCost: dec("-3")}
	unallocated.Allocate()
	assert.Equal(t, AllocationNone, unallocated.Mode)
	assert.NoError(t, unallocated.Verify())
}
