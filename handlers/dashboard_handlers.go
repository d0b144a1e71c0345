package handlers

import (
	"context"
	"log"
	"time"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboardSummary fetches KPI data for the dashboard: current
// month sales/profit, report count, and the top stores by revenue.
// GET /api/v1/dashboard/summary
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	month := c.Query("month", time.Now().Format("2006-01"))

	var summary models.DashboardSummary

	// 1. Monthly sales, profit and report count
	queryTotals := `
		SELECT
			COALESCE(SUM(sales), 0),
			COALESCE(SUM(sales - (purchase_cost + labor_cost + utility_cost + promotion_cost
				+ cleaning_cost + misc_cost + communication_cost + other_cost)), 0),
			COUNT(*)
		FROM daily_reports
		WHERE to_char(report_date, 'YYYY-MM') = $1
	`
	argsTotals := []interface{}{month}
	if scope != "" {
		queryTotals += " AND store_id = $2"
		argsTotals = append(argsTotals, scope)
	}

	var reportCount int
	err = db.QueryRow(ctx, queryTotals, argsTotals...).Scan(
		&summary.MonthlySales.Value, &summary.MonthlyProfit.Value, &reportCount)
	if err != nil {
		log.Printf("Error fetching monthly totals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch monthly totals"})
	}
	summary.ReportCount.Value = float64(reportCount)

	// 2. Average daily sales
	if reportCount > 0 {
		summary.AverageDailySales.Value = summary.MonthlySales.Value / float64(reportCount)
	}

	// 3. Top stores by revenue
	queryTop := `
		SELECT s.name, COALESCE(SUM(r.sales), 0) AS total_sales
		FROM daily_reports r
		JOIN stores s ON r.store_id = s.id
		WHERE to_char(r.report_date, 'YYYY-MM') = $1
	`
	argsTop := []interface{}{month}
	if scope != "" {
		queryTop += " AND r.store_id = $2"
		argsTop = append(argsTop, scope)
	}
	queryTop += `
		GROUP BY s.name
		ORDER BY total_sales DESC
		LIMIT 5
	`

	rows, err := db.Query(ctx, queryTop, argsTop...)
	if err != nil {
		log.Printf("Error fetching top stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch top stores"})
	}
	defer rows.Close()

	stores := []models.StoreSales{}
	for rows.Next() {
		var s models.StoreSales
		if err := rows.Scan(&s.StoreName, &s.TotalSales); err != nil {
			log.Printf("Error scanning top store row: %v", err)
			continue
		}
		stores = append(stores, s)
	}
	summary.TopStores = stores

	return c.JSON(fiber.Map{"success": true, "data": summary})
}
