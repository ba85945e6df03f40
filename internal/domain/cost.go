package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CostColumns is the cost log schema in file order.
var CostColumns = []string{"date", "store", "payer", "category", "sub_category", "amount", "remark"}

// CostRecord is one expense of a store on a day.
type CostRecord struct {
	Date        time.Time
	Store       string
	Payer       string
	Category    string
	SubCategory string
	Amount      decimal.Decimal
	Remark      string
}

// Key returns the allocation key the cost contributes to.
func (c *CostRecord) Key() GroupKey {
	return GroupKey{Date: FormatDate(c.Date), Store: c.Store}
}

// Record renders the cost in CostColumns order.
func (c *CostRecord) Record() []string {
	return []string{
		FormatDate(c.Date),
		c.Store,
		c.Payer,
		c.Category,
		c.SubCategory,
		FormatMoney(c.Amount),
		c.Remark,
	}
}

// SumCosts totals cost amounts per allocation key.
func SumCosts(costs []*CostRecord) map[GroupKey]decimal.Decimal {
	totals := make(map[GroupKey]decimal.Decimal)
	for _, c := range costs {
		key := c.Key()
		totals[key] = totals[key].Add(c.Amount)
	}
	return totals
}

func formatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}
