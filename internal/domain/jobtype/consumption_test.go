package jobtype

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "rosecraft/internal/domain/jobtype/valueobjects"
)

func TestMaterialNeeds_RequirementIsLinear(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks([]StockRequirement{
		{StockItemID: 7, QuantityPerUnit: decimal.RequireFromString("0.5"), IsRequired: true},
	}, nil))

	needs := j.MaterialNeeds(8, nil, nil)
	require.Len(t, needs, 1)
	assert.Equal(t, uint(7), needs[0].StockItemID)
	assert.True(t, decimal.RequireFromString("4").Equal(needs[0].Quantity))
}

func TestMaterialNeeds_AreaConsumptionScalesByDimensions(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks(nil, []AvgConsumption{
		{StockItemID: 3, AvgQuantityPerUnit: decimal.RequireFromString("1.5"), ConsumeType: vo.ConsumeTypeSqft},
	}))

	dims := &Dimensions{
		Length: decimal.RequireFromString("2"),
		Width:  decimal.RequireFromString("3"),
	}
	areaMeasured := func(uint) bool { return true }

	needs := j.MaterialNeeds(4, dims, areaMeasured)
	require.Len(t, needs, 1)
	// 2 x 3 x 1.5 x 4
	assert.True(t, decimal.RequireFromString("36").Equal(needs[0].Quantity),
		"got %s", needs[0].Quantity)
}

func TestMaterialNeeds_AreaConsumptionWithoutDimensionsFallsBackToFlat(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks(nil, []AvgConsumption{
		{StockItemID: 3, AvgQuantityPerUnit: decimal.RequireFromString("1.5"), ConsumeType: vo.ConsumeTypeSqft},
	}))

	areaMeasured := func(uint) bool { return true }

	needs := j.MaterialNeeds(4, nil, areaMeasured)
	require.Len(t, needs, 1)
	// 1.5 x 4, the legacy flat fallback
	assert.True(t, decimal.RequireFromString("6").Equal(needs[0].Quantity))
}

func TestMaterialNeeds_AreaConsumeTypeOnNonAreaItemIsFlat(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks(nil, []AvgConsumption{
		{StockItemID: 3, AvgQuantityPerUnit: decimal.RequireFromString("1.5"), ConsumeType: vo.ConsumeTypeSqft},
	}))

	dims := &Dimensions{
		Length: decimal.RequireFromString("2"),
		Width:  decimal.RequireFromString("3"),
	}
	areaMeasured := func(uint) bool { return false }

	needs := j.MaterialNeeds(4, dims, areaMeasured)
	require.Len(t, needs, 1)
	assert.True(t, decimal.RequireFromString("6").Equal(needs[0].Quantity))
}

func TestMaterialNeeds_BothLinkTypesAreAdditive(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks(
		[]StockRequirement{
			{StockItemID: 5, QuantityPerUnit: decimal.RequireFromString("1"), IsRequired: true},
		},
		[]AvgConsumption{
			{StockItemID: 5, AvgQuantityPerUnit: decimal.RequireFromString("0.25"), ConsumeType: vo.ConsumeTypePieces},
		},
	))

	needs := j.MaterialNeeds(4, nil, nil)
	require.Len(t, needs, 1)
	assert.True(t, decimal.RequireFromString("5").Equal(needs[0].Quantity))
}

func TestMaterialNeeds_PreservesLinkOrder(t *testing.T) {
	j := newFlatJobType(t, "10.00")
	require.NoError(t, j.SetStockLinks(
		[]StockRequirement{
			{StockItemID: 9, QuantityPerUnit: decimal.RequireFromString("1"), IsRequired: true},
			{StockItemID: 2, QuantityPerUnit: decimal.RequireFromString("2"), IsRequired: true},
		},
		[]AvgConsumption{
			{StockItemID: 4, AvgQuantityPerUnit: decimal.RequireFromString("0.5"), ConsumeType: vo.ConsumeTypePieces},
		},
	))

	needs := j.MaterialNeeds(1, nil, nil)
	require.Len(t, needs, 3)
	assert.Equal(t, uint(9), needs[0].StockItemID)
	assert.Equal(t, uint(2), needs[1].StockItemID)
	assert.Equal(t, uint(4), needs[2].StockItemID)
}

func TestDimensions_IsComplete(t *testing.T) {
	assert.False(t, (*Dimensions)(nil).IsComplete())
	assert.False(t, (&Dimensions{Length: decimal.NewFromInt(2)}).IsComplete())
	assert.True(t, (&Dimensions{
		Length: decimal.NewFromInt(2),
		Width:  decimal.NewFromInt(3),
	}).IsComplete())
}
