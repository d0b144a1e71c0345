package handlers

import (
	"context"
	"log"
	"time"

	"app/database"
	"app/middleware"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// scopedStoreID resolves the store a caller is restricted to. Admins see
// every store and get the empty string; managers are pinned to the store
// on their user row.
func scopedStoreID(ctx context.Context, c *fiber.Ctx) (string, error) {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return "", err
	}
	if claims.Role == "admin" {
		return "", nil
	}

	var storeID *string
	err = database.GetDB().QueryRow(ctx, `SELECT store_id FROM users WHERE id = $1`, claims.UserID).Scan(&storeID)
	if err != nil {
		return "", err
	}
	if storeID == nil {
		return "", fiber.ErrForbidden
	}
	return *storeID, nil
}

// HandleUpsertDailyReport creates or replaces a store's report for one
// business day. The (store_id, report_date) pair is unique; submitting
// the same day twice overwrites the earlier figures.
// POST /api/v1/reports
func HandleUpsertDailyReport(c *fiber.Ctx) error {
	var req models.UpsertDailyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.StoreID == "" || req.ReportDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "store_id and report_date are required"})
	}
	if _, err := time.Parse("2006-01-02", req.ReportDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "report_date must be YYYY-MM-DD"})
	}
	if req.Sales < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "sales must not be negative"})
	}

	ctx := context.Background()
	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}
	if scope != "" && scope != req.StoreID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Cannot submit reports for another store"})
	}

	db := database.GetDB()

	var report models.DailyReport
	err = db.QueryRow(ctx, `
		INSERT INTO daily_reports (
			id, store_id, report_date, sales,
			purchase_cost, labor_cost, utility_cost, promotion_cost,
			cleaning_cost, misc_cost, communication_cost, other_cost, note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (store_id, report_date) DO UPDATE SET
			sales = EXCLUDED.sales,
			purchase_cost = EXCLUDED.purchase_cost,
			labor_cost = EXCLUDED.labor_cost,
			utility_cost = EXCLUDED.utility_cost,
			promotion_cost = EXCLUDED.promotion_cost,
			cleaning_cost = EXCLUDED.cleaning_cost,
			misc_cost = EXCLUDED.misc_cost,
			communication_cost = EXCLUDED.communication_cost,
			other_cost = EXCLUDED.other_cost,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, store_id, report_date, sales,
			purchase_cost, labor_cost, utility_cost, promotion_cost,
			cleaning_cost, misc_cost, communication_cost, other_cost,
			note, created_at, updated_at`,
		uuid.NewString(), req.StoreID, req.ReportDate, req.Sales,
		req.PurchaseCost, req.LaborCost, req.UtilityCost, req.PromotionCost,
		req.CleaningCost, req.MiscCost, req.CommunicationCost, req.OtherCost, req.Note,
	).Scan(
		&report.ID, &report.StoreID, &report.ReportDate, &report.Sales,
		&report.PurchaseCost, &report.LaborCost, &report.UtilityCost, &report.PromotionCost,
		&report.CleaningCost, &report.MiscCost, &report.CommunicationCost, &report.OtherCost,
		&report.Note, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error upserting daily report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save report"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": report})
}

// HandleListReports returns daily reports for a month, newest first,
// scoped to the caller's store for managers.
// GET /api/v1/reports?month=YYYY-MM&store_id=...
func HandleListReports(c *fiber.Ctx) error {
	ctx := context.Background()

	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	month := c.Query("month", time.Now().Format("2006-01"))
	storeID := c.Query("store_id")
	if scope != "" {
		storeID = scope
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 31)

	db := database.GetDB()

	countQuery := `
		SELECT COUNT(*)
		FROM daily_reports
		WHERE to_char(report_date, 'YYYY-MM') = $1
	`
	countArgs := []interface{}{month}
	if storeID != "" {
		countQuery += ` AND store_id = $2`
		countArgs = append(countArgs, storeID)
	}

	var total int
	if err := db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Printf("Error counting reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)
	offset := (pagination.CurrentPage - 1) * pagination.PageSize

	query := `
		SELECT r.id, r.store_id, s.name, r.report_date, r.sales,
			r.purchase_cost, r.labor_cost, r.utility_cost, r.promotion_cost,
			r.cleaning_cost, r.misc_cost, r.communication_cost, r.other_cost,
			r.note, r.created_at, r.updated_at
		FROM daily_reports r
		JOIN stores s ON r.store_id = s.id
		WHERE to_char(r.report_date, 'YYYY-MM') = $1
	`
	args := []interface{}{month}
	if storeID != "" {
		query += ` AND r.store_id = $2`
		args = append(args, storeID)
	}
	query += ` ORDER BY r.report_date DESC, s.name`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}
	defer rows.Close()

	reports := []models.DailyReport{}
	for rows.Next() {
		var r models.DailyReport
		if err := rows.Scan(
			&r.ID, &r.StoreID, &r.StoreName, &r.ReportDate, &r.Sales,
			&r.PurchaseCost, &r.LaborCost, &r.UtilityCost, &r.PromotionCost,
			&r.CleaningCost, &r.MiscCost, &r.CommunicationCost, &r.OtherCost,
			&r.Note, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning report row: %v", err)
			continue
		}
		reports = append(reports, r)
	}

	// Paginate in memory; a month per store tops out at 31 rows.
	start := offset
	if start > len(reports) {
		start = len(reports)
	}
	end := start + pagination.PageSize
	if end > len(reports) {
		end = len(reports)
	}

	return c.JSON(models.PaginatedReportsResponse{
		Data: reports[start:end],
		Pagination: models.Pagination{
			TotalItems:  pagination.TotalItems,
			TotalPages:  pagination.TotalPages,
			CurrentPage: pagination.CurrentPage,
			PageSize:    pagination.PageSize,
		},
	})
}

// HandleGetReportByID fetches one daily report.
// GET /api/v1/reports/:reportId
func HandleGetReportByID(c *fiber.Ctx) error {
	ctx := context.Background()
	reportID := c.Params("reportId")

	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var r models.DailyReport
	err = database.GetDB().QueryRow(ctx, `
		SELECT r.id, r.store_id, s.name, r.report_date, r.sales,
			r.purchase_cost, r.labor_cost, r.utility_cost, r.promotion_cost,
			r.cleaning_cost, r.misc_cost, r.communication_cost, r.other_cost,
			r.note, r.created_at, r.updated_at
		FROM daily_reports r
		JOIN stores s ON r.store_id = s.id
		WHERE r.id = $1`, reportID).Scan(
		&r.ID, &r.StoreID, &r.StoreName, &r.ReportDate, &r.Sales,
		&r.PurchaseCost, &r.LaborCost, &r.UtilityCost, &r.PromotionCost,
		&r.CleaningCost, &r.MiscCost, &r.CommunicationCost, &r.OtherCost,
		&r.Note, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Report not found"})
		}
		log.Printf("Error fetching report %s: %v", reportID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch report"})
	}

	if scope != "" && scope != r.StoreID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Report belongs to another store"})
	}

	return c.JSON(fiber.Map{"success": true, "data": r})
}

// HandleDeleteReport removes a daily report.
// DELETE /api/v1/reports/:reportId
func HandleDeleteReport(c *fiber.Ctx) error {
	ctx := context.Background()
	reportID := c.Params("reportId")

	scope, err := scopedStoreID(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	db := database.GetDB()

	query := `DELETE FROM daily_reports WHERE id = $1`
	args := []interface{}{reportID}
	if scope != "" {
		query += ` AND store_id = $2`
		args = append(args, scope)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("Error deleting report %s: %v", reportID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete report"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Report not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Report deleted"})
}

// HandleExportMonthlyReports records a monthly export and returns its
// sequential export code.
// POST /api/v1/reports/export?month=YYYY-MM
func HandleExportMonthlyReports(c *fiber.Ctx) error {
	ctx := context.Background()

	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	month := c.Query("month", time.Now().Format("2006-01"))
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "month must be YYYY-MM"})
	}

	db := database.GetDB()

	code, err := utils.GenerateReportCode(ctx, db, parsed.Year(), int(parsed.Month()))
	if err != nil {
		log.Printf("Error generating report code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate export code"})
	}

	_, err = db.Exec(ctx, `
		INSERT INTO report_exports (id, export_code, month, requested_by)
		VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), code, month, claims.UserID)
	if err != nil {
		log.Printf("Error recording export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record export"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"export_code": code, "month": month}})
}
