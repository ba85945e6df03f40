package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/salonledger/internal/domain"
	"github.com/iho/salonledger/internal/usecase"
	"github.com/iho/salonledger/internal/usecase/mocks"
)

func revenueRow(n int, serial, store, beautician, customers, gross, net string) domain.LegacyRow {
	return domain.LegacyRow{Number: n, Fields: domain.Row{
		domain.LegacyDate:       serial,
		domain.LegacyStore:      store,
		domain.LegacyBeautician: beautician,
		domain.LegacyCustomers:  customers,
		domain.LegacyGross:      gross,
		domain.LegacyNet:        net,
	}}
}

func costRow(n int, serial, store, amount string) domain.LegacyRow {
	return domain.LegacyRow{Number: n, Fields: domain.Row{
		domain.LegacyDate:     serial,
		domain.LegacyStore:    store,
		domain.LegacyPayer:    "Owner",
		domain.LegacyCategory: "Rent",
		domain.LegacyAmount:   amount,
	}}
}

// 45323 is 2024-02-01, 45324 is 2024-02-02.
func legacyFixture() *domain.LegacySheets {
	return &domain.LegacySheets{
		Revenue: []domain.LegacyRow{
			revenueRow(1, "Date", "Store", "Beautician", "Customers", "Gross", "Net"),
			revenueRow(2, "45323", "A", "Ann", "2", "100", "100"),
			revenueRow(3, "45323", "A", "Bob", "", "200", "200"),
			revenueRow(4, "45323", "A", "Cat", "1", "300", "300"),
			revenueRow(5, "", "A", "Eve", "1", "50", "50"),
			revenueRow(6, "45324", "B", "Fay", "1", "abc", "10"),
			revenueRow(7, "45324", "B", "Dee", "1", "80", ""),
		},
		Costs: []domain.LegacyRow{
			costRow(1, "Date", "Store", "Amount"),
			costRow(2, "45323", "A", "40"),
			costRow(3, "45323", "A", "20"),
			costRow(4, "45324", "B", "30"),
			costRow(5, "45325", "C", "x"),
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMigrationUseCase_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)

	recorder.EXPECT().RowRead(usecase.SourceLegacyRevenue).Times(6)
	recorder.EXPECT().EntryMigrated().Times(4)
	recorder.EXPECT().RowSkipped(usecase.SourceLegacyRevenue, usecase.ReasonMissingField)
	recorder.EXPECT().RowSkipped(usecase.SourceLegacyRevenue, usecase.ReasonInvalidAmount)
	recorder.EXPECT().RowRead(usecase.SourceLegacyCost).Times(4)
	recorder.EXPECT().CostRecorded().Times(3)
	recorder.EXPECT().RowSkipped(usecase.SourceLegacyCost, usecase.ReasonInvalidAmount)
	recorder.EXPECT().GroupAllocated(string(domain.AllocationProportional), 60.0)
	recorder.EXPECT().GroupAllocated(string(domain.AllocationEven), 30.0)

	uc := usecase.NewMigrationUseCase(nil, nil, recorder, zerolog.Nop())
	result := uc.Convert(legacyFixture())

	require.Len(t, result.Entries, 4)
	require.Len(t, result.Costs, 3)
	require.Len(t, result.Groups, 2)
	assert.Equal(t, 2, result.RevenueSkipped)
	assert.Equal(t, 1, result.CostSkipped)

	ann, bob, cat, dee := result.Entries[0], result.Entries[1], result.Entries[2], result.Entries[3]

	assert.Equal(t, "2024-02-01", domain.FormatDate(ann.Date))
	assert.Equal(t, "legacy-row-2", ann.AppointmentRef)
	assert.Equal(t, int64(2), ann.CustomerCount)
	assert.Equal(t, int64(1), bob.CustomerCount)

	assert.True(t, ann.AllocatableCost.Equal(dec("10")))
	assert.True(t, bob.AllocatableCost.Equal(dec("20")))
	assert.True(t, cat.AllocatableCost.Equal(dec("30")))
	assert.True(t, ann.NetAfterCost.Equal(dec("90")))
	assert.True(t, cat.PartnerProfitEach.Equal(dec("135")))

	assert.Equal(t, "legacy-row-7", dee.AppointmentRef)
	assert.True(t, dee.NetRevenue.IsZero())
	assert.True(t, dee.BeauticianShare.Equal(dec("80")))
	assert.True(t, dee.AllocatableCost.Equal(dec("30")))
	assert.True(t, dee.NetAfterCost.Equal(dec("-30")))
	assert.True(t, dee.PartnerProfitEach.Equal(dec("-15")))

	for _, g := range result.Groups {
		assert.NoError(t, g.Verify(), g.Key.String())
	}
}

func TestMigrationUseCase_ConvertEmptySheets(t *testing.T) {
	uc := usecase.NewMigrationUseCase(nil, nil, mocks.NopRecorder{}, zerolog.Nop())

	result := uc.Convert(&domain.LegacySheets{
		Revenue: []domain.LegacyRow{revenueRow(1, "Date", "Store", "", "", "Gross", "Net")},
	})

	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Costs)
	assert.Empty(t, result.Groups)
}

func TestMigrationUseCase_CostWithoutRevenueIsLogged(t *testing.T) {
	uc := usecase.NewMigrationUseCase(nil, nil, mocks.NopRecorder{}, zerolog.Nop())

	sheets := &domain.LegacySheets{
		Revenue: []domain.LegacyRow{
			revenueRow(1, "Date", "Store", "", "", "Gross", "Net"),
			revenueRow(2, "45323", "A", "Ann", "1", "100", "100"),
		},
		Costs: []domain.LegacyRow{
			costRow(1, "Date", "Store", "Amount"),
			costRow(2, "45324", "A", "25"),
		},
	}

	result := uc.Convert(sheets)

	require.Len(t, result.Entries, 1)
	require.Len(t, result.Costs, 1)
	assert.True(t, result.Entries[0].AllocatableCost.IsZero())
	assert.True(t, result.Entries[0].PartnerProfitEach.Equal(dec("50")))
	assert.Equal(t, domain.AllocationNone, result.Groups[0].Mode)
}

func TestMigrationUseCase_Migrate(t *testing.T) {
	input := usecase.MigrationInput{
		LegacyPath:  "legacy.xlsx",
		EntriesPath: "out/entries.csv",
		CostLogPath: "out/costs.csv",
	}

	t.Run("writes entries and cost log", func(t *testing.T) {
		store := mocks.NewMemoryStore()
		uc := usecase.NewMigrationUseCase(&mocks.MemoryLegacySource{Sheets: legacyFixture()}, store, mocks.NopRecorder{}, zerolog.Nop())

		result, err := uc.Migrate(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, result.Entries, store.Entries(input.EntriesPath))
		assert.Equal(t, result.Costs, store.CostLog(input.CostLogPath))
	})

	t.Run("missing workbook", func(t *testing.T) {
		source := &mocks.MemoryLegacySource{Err: fmt.Errorf("%w: legacy.xlsx", domain.ErrLegacyFileNotFound)}
		uc := usecase.NewMigrationUseCase(source, mocks.NewMemoryStore(), mocks.NopRecorder{}, zerolog.Nop())

		_, err := uc.Migrate(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrLegacyFileNotFound)
	})

	t.Run("write failure", func(t *testing.T) {
		writeErr := errors.New("no space left on device")
		store := mocks.NewMemoryStore()
		store.WriteEntriesFunc = func(context.Context, string, []*domain.Entry) error { return writeErr }
		uc := usecase.NewMigrationUseCase(&mocks.MemoryLegacySource{Sheets: legacyFixture()}, store, mocks.NopRecorder{}, zerolog.Nop())

		_, err := uc.Migrate(context.Background(), input)
		assert.ErrorIs(t, err, writeErr)
		assert.Nil(t, store.CostLog(input.CostLogPath))
	})
}
