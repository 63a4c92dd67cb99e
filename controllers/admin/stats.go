package adminController

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/models"
)

// MonthStats aggregates one calendar month of the order ledger.
type MonthStats struct {
	TotalRevenue      int            `json:"totalRevenue"`
	PerProductQty     map[string]int `json:"perProductQty"`
	PerProductRevenue map[string]int `json:"perProductRevenue"`
}

// DayRevenue is one point of the daily revenue series.
type DayRevenue struct {
	Day     int `json:"day"`
	Revenue int `json:"revenue"`
}

// inMonth reports whether t falls in the given calendar month, with
// days taken in loc. All month math in this package uses the store
// timezone so an order at 23:30 counts toward the local day it was
// placed on.
func inMonth(t time.Time, year int, month time.Month, loc *time.Location) bool {
	t = t.In(loc)
	return t.Year() == year && t.Month() == month
}

// StatsForMonth derives revenue and per-product totals for a calendar
// month from a ledger snapshot. Pure: the input is never mutated and
// identical inputs yield identical results. Orders outside the month
// contribute nothing. Products are keyed by name.
func StatsForMonth(orders []models.Order, year int, month time.Month, loc *time.Location) MonthStats {
	stats := MonthStats{
		PerProductQty:     make(map[string]int),
		PerProductRevenue: make(map[string]int),
	}

	for _, order := range orders {
		if !inMonth(order.CreatedAt, year, month, loc) {
			continue
		}
		stats.TotalRevenue += order.Total
		for _, item := range order.Items {
			stats.PerProductQty[item.ProductName] += item.Quantity
			stats.PerProductRevenue[item.ProductName] += item.Price * item.Quantity
		}
	}

	return stats
}

// DailyRevenueSeries produces one entry per day of the month, in order,
// zero-filled for days without orders.
func DailyRevenueSeries(orders []models.Order, year int, month time.Month, loc *time.Location) []DayRevenue {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	series := make([]DayRevenue, daysInMonth)
	for i := range series {
		series[i].Day = i + 1
	}

	for _, order := range orders {
		if !inMonth(order.CreatedAt, year, month, loc) {
			continue
		}
		day := order.CreatedAt.In(loc).Day()
		series[day-1].Revenue += order.Total
	}

	return series
}

// targetMonth resolves the year/month query params, defaulting to the
// current month in the store timezone.
func targetMonth(c *gin.Context, loc *time.Location) (int, time.Month) {
	now := time.Now().In(loc)
	year, month := now.Year(), now.Month()

	if v := c.Query("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := c.Query("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
	}
	return year, month
}

func loadLedger(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// GET /admin/stats?year=&month=
func GetMonthStats(db *gorm.DB, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := loadLedger(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		year, month := targetMonth(c, loc)
		stats := StatsForMonth(orders, year, month, loc)
		c.JSON(http.StatusOK, gin.H{
			"year":              year,
			"month":             int(month),
			"totalRevenue":      stats.TotalRevenue,
			"perProductQty":     stats.PerProductQty,
			"perProductRevenue": stats.PerProductRevenue,
		})
	}
}

// GET /admin/revenue-series?year=&month=
func GetDailyRevenueSeries(db *gorm.DB, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := loadLedger(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		year, month := targetMonth(c, loc)
		c.JSON(http.StatusOK, gin.H{
			"year":   year,
			"month":  int(month),
			"series": DailyRevenueSeries(orders, year, month, loc),
		})
	}
}
