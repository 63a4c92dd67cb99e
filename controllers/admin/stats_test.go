package adminController

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mylaramshashank/academicshelf/models"
)

func makeOrder(code string, total int, createdAt time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:        code,
		UserID:    "u1",
		Items:     items,
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: createdAt,
	}
}

func novemberLedger(loc *time.Location) []models.Order {
	return []models.Order{
		makeOrder("AC1", 240, time.Date(2025, time.November, 3, 10, 0, 0, 0, loc),
			models.OrderItem{ProductName: "Records", Price: 120, Quantity: 2},
		),
		makeOrder("AC2", 150, time.Date(2025, time.November, 3, 18, 30, 0, 0, loc),
			models.OrderItem{ProductName: "Records", Price: 120, Quantity: 1},
			models.OrderItem{ProductName: "Booklets", Price: 30, Quantity: 1},
		),
		makeOrder("AC3", 90, time.Date(2025, time.November, 21, 9, 15, 0, 0, loc),
			models.OrderItem{ProductName: "Booklets", Price: 30, Quantity: 3},
		),
		// Outside the target month, must not contribute
		makeOrder("AC4", 999, time.Date(2025, time.October, 31, 23, 59, 0, 0, loc),
			models.OrderItem{ProductName: "Records", Price: 120, Quantity: 5},
		),
		makeOrder("AC5", 120, time.Date(2024, time.November, 3, 10, 0, 0, 0, loc),
			models.OrderItem{ProductName: "Records", Price: 120, Quantity: 1},
		),
	}
}

func TestStatsForMonth(t *testing.T) {
	loc := time.UTC
	orders := novemberLedger(loc)

	stats := StatsForMonth(orders, 2025, time.November, loc)

	assert.Equal(t, 240+150+90, stats.TotalRevenue)
	assert.Equal(t, 3, stats.PerProductQty["Records"])
	assert.Equal(t, 360, stats.PerProductRevenue["Records"])
	assert.Equal(t, 4, stats.PerProductQty["Booklets"])
	assert.Equal(t, 120, stats.PerProductRevenue["Booklets"])
}

func TestStatsForMonthIsPure(t *testing.T) {
	loc := time.UTC
	orders := novemberLedger(loc)

	first := StatsForMonth(orders, 2025, time.November, loc)
	second := StatsForMonth(orders, 2025, time.November, loc)

	assert.Equal(t, first, second)

	// Input snapshot untouched
	assert.Equal(t, novemberLedger(loc), orders)
}

func TestStatsForMonthEmptyLedger(t *testing.T) {
	stats := StatsForMonth(nil, 2025, time.November, time.UTC)

	assert.Zero(t, stats.TotalRevenue)
	assert.Empty(t, stats.PerProductQty)
	assert.Empty(t, stats.PerProductRevenue)
}

func TestDailyRevenueSeriesZeroFilled(t *testing.T) {
	loc := time.UTC
	orders := novemberLedger(loc)

	series := DailyRevenueSeries(orders, 2025, time.November, loc)

	require.Len(t, series, 30)
	for i, point := range series {
		assert.Equal(t, i+1, point.Day)
	}

	assert.Equal(t, 390, series[2].Revenue)  // Nov 3: 240 + 150
	assert.Equal(t, 90, series[20].Revenue)  // Nov 21
	assert.Equal(t, 0, series[0].Revenue)    // no orders on Nov 1
	assert.Equal(t, 0, series[29].Revenue)   // no orders on Nov 30
}

func TestDailyRevenueSeriesMonthLengths(t *testing.T) {
	assert.Len(t, DailyRevenueSeries(nil, 2025, time.February, time.UTC), 28)
	assert.Len(t, DailyRevenueSeries(nil, 2024, time.February, time.UTC), 29)
	assert.Len(t, DailyRevenueSeries(nil, 2025, time.December, time.UTC), 31)
}

func TestMonthWindowUsesStoreTimezone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2025-10-31 20:00 UTC is already Nov 1 in Kolkata
	order := makeOrder("AC6", 100, time.Date(2025, time.October, 31, 20, 0, 0, 0, time.UTC))

	utcStats := StatsForMonth([]models.Order{order}, 2025, time.November, time.UTC)
	assert.Zero(t, utcStats.TotalRevenue)

	localStats := StatsForMonth([]models.Order{order}, 2025, time.November, kolkata)
	assert.Equal(t, 100, localStats.TotalRevenue)

	series := DailyRevenueSeries([]models.Order{order}, 2025, time.November, kolkata)
	assert.Equal(t, 100, series[0].Revenue)
}
