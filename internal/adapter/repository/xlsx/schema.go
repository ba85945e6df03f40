package xlsx

import "github.com/iho/salonledger/internal/domain"

// SheetLayout maps a column letter to the semantic field it holds.
type SheetLayout map[string]string

// LegacySchema describes where the legacy workbook keeps its revenue and cost
// data. Sheets are located by name when one is set, otherwise by 0-based
// position in the workbook.
type LegacySchema struct {
	RevenueSheet string
	RevenueIndex int
	Revenue      SheetLayout

	CostSheet string
	CostIndex int
	Cost      SheetLayout
}

// DefaultLegacySchema returns the layout of the legacy data template: revenue
// on the third sheet, costs on the fourth.
func DefaultLegacySchema() LegacySchema {
	return LegacySchema{
		RevenueIndex: 2,
		Revenue: SheetLayout{
			"A": domain.LegacyDate,
			"G": domain.LegacyStore,
			"H": domain.LegacyBeautician,
			"I": domain.LegacyCustomers,
			"J": domain.LegacyGross,
			"K": domain.LegacyNet,
			"L": domain.LegacyDurationMin,
			"M": domain.LegacyDurationHour,
			"N": domain.LegacyValuePerCustomer,
		},
		CostIndex: 3,
		Cost: SheetLayout{
			"A": domain.LegacyDate,
			"F": domain.LegacyStore,
			"G": domain.LegacyPayer,
			"H": domain.LegacyCategory,
			"I": domain.LegacySubCategory,
			"J": domain.LegacyAmount,
			"K": domain.LegacyRemark,
		},
	}
}

// WithSheetNames overrides sheet positions with names. Empty names keep the
// positional lookup.
func (s LegacySchema) WithSheetNames(revenue, cost string) LegacySchema {
	s.RevenueSheet = revenue
	s.CostSheet = cost
	return s
}
