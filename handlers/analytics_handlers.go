package handlers

import (
	"context"
	"log"
	"time"

	"app/analytics"
	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// analysisWindowDays bounds how much history feeds the engine. Ninety
// days comfortably covers the month views and the four-week trend.
const analysisWindowDays = 90

// HandleAnalyticsChat answers a free-text business question from the
// caller's daily reports. The deterministic engine does all the work;
// this handler only loads the authorized records and injects the
// reference time.
// POST /api/v1/analytics/chat
func HandleAnalyticsChat(c *fiber.Ctx) error {
	var req models.AnalyticsChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "message is required"})
	}

	ctx := context.Background()

	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	now := time.Now()
	records, err := loadDailyRecords(ctx, scope, now)
	if err != nil {
		log.Printf("Error loading records for analytics chat: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load report data"})
	}

	// A manager's scope wins over any store filter in the request.
	storeFilter := req.StoreID
	if scope != "" {
		storeFilter = scope
	}

	response := analytics.Analyze(req.Message, records, now, storeFilter)

	return c.JSON(fiber.Map{"success": true, "data": response})
}

// loadDailyRecords reads the trailing analysis window into the engine's
// record type. When scope is non-empty only that store's rows load.
func loadDailyRecords(ctx context.Context, scope string, now time.Time) ([]analytics.DailyRecord, error) {
	db := database.GetDB()

	query := `
		SELECT to_char(r.report_date, 'YYYY-MM-DD'), r.store_id, s.name, r.sales,
			r.purchase_cost, r.labor_cost, r.utility_cost, r.promotion_cost,
			r.cleaning_cost, r.misc_cost, r.communication_cost, r.other_cost
		FROM daily_reports r
		JOIN stores s ON r.store_id = s.id
		WHERE r.report_date >= $1 AND r.report_date <= $2
	`
	args := []interface{}{
		now.AddDate(0, 0, -analysisWindowDays).Format("2006-01-02"),
		now.Format("2006-01-02"),
	}
	if scope != "" {
		query += ` AND r.store_id = $3`
		args = append(args, scope)
	}
	query += ` ORDER BY r.report_date`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []analytics.DailyRecord
	for rows.Next() {
		var r analytics.DailyRecord
		if err := rows.Scan(
			&r.Date, &r.StoreID, &r.StoreName, &r.Sales,
			&r.PurchaseCost, &r.LaborCost, &r.UtilityCost, &r.PromotionCost,
			&r.CleaningCost, &r.MiscCost, &r.CommunicationCost, &r.OtherCost,
		); err != nil {
			log.Printf("Error scanning daily record: %v", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
