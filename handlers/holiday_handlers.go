package handlers

import (
	"context"
	"log"
	"time"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HandleListHolidays returns the registered closure days, optionally
// filtered by year.
// GET /api/v1/admin/holidays
func HandleListHolidays(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT id, name, to_char(holiday_date, 'YYYY-MM-DD'), store_id, created_at
		FROM holidays
	`
	args := []interface{}{}
	if year := c.Query("year"); year != "" {
		query += ` WHERE to_char(holiday_date, 'YYYY') = $1`
		args = append(args, year)
	}
	query += ` ORDER BY holiday_date`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing holidays: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list holidays"})
	}
	defer rows.Close()

	holidays := []models.Holiday{}
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.HolidayDate, &h.StoreID, &h.CreatedAt); err != nil {
			log.Printf("Error scanning holiday row: %v", err)
			continue
		}
		holidays = append(holidays, h)
	}

	return c.JSON(fiber.Map{"success": true, "data": holidays})
}

// HandleCreateHoliday registers a closure day, company-wide when no
// store_id is given.
// POST /api/v1/admin/holidays
func HandleCreateHoliday(c *fiber.Ctx) error {
	var req models.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.HolidayDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "name and holiday_date are required"})
	}
	if _, err := time.Parse("2006-01-02", req.HolidayDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "holiday_date must be YYYY-MM-DD"})
	}

	db := database.GetDB()
	ctx := context.Background()

	var h models.Holiday
	err := db.QueryRow(ctx, `
		INSERT INTO holidays (id, name, holiday_date, store_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, to_char(holiday_date, 'YYYY-MM-DD'), store_id, created_at`,
		uuid.NewString(), req.Name, req.HolidayDate, req.StoreID).Scan(
		&h.ID, &h.Name, &h.HolidayDate, &h.StoreID, &h.CreatedAt)
	if err != nil {
		log.Printf("Error creating holiday: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create holiday"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": h})
}

// HandleDeleteHoliday removes a closure day.
// DELETE /api/v1/admin/holidays/:holidayId
func HandleDeleteHoliday(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	holidayID := c.Params("holidayId")

	tag, err := db.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, holidayID)
	if err != nil {
		log.Printf("Error deleting holiday %s: %v", holidayID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete holiday"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Holiday not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Holiday deleted"})
}
