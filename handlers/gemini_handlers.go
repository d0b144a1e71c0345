package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"app/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleGenerateText generates text from a given prompt using the Gemini API.
// POST /api/v1/gemini/generate
func HandleGenerateText(c *fiber.Ctx) error {
	// Get the prompt from the request body
	var body struct {
		Prompt string `json:"prompt"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	// Initialize the Gemini client
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to initialize Gemini client"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(body.Prompt))
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate text"})
	}

	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// HandleGenerateReportComment asks Gemini to write the monthly report
// commentary from the month's aggregated figures. This is the generative
// path; the deterministic analytics engine never calls it.
// POST /api/v1/gemini/report-comment?month=YYYY-MM&store_id=...
func HandleGenerateReportComment(c *fiber.Ctx) error {
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

	db := database.GetDB()

	query := `
		SELECT COALESCE(SUM(sales), 0),
			COALESCE(SUM(purchase_cost + labor_cost + utility_cost + promotion_cost
				+ cleaning_cost + misc_cost + communication_cost + other_cost), 0),
			COUNT(*)
		FROM daily_reports
		WHERE to_char(report_date, 'YYYY-MM') = $1
	`
	args := []interface{}{month}
	if storeID != "" {
		query += ` AND store_id = $2`
		args = append(args, storeID)
	}

	var sales, expenses float64
	var reportCount int
	if err := db.QueryRow(ctx, query, args...).Scan(&sales, &expenses, &reportCount); err != nil {
		log.Printf("Error aggregating month for report comment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to aggregate report data"})
	}

	if reportCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No reports found for the requested month"})
	}

	prompt := fmt.Sprintf(
		`あなたは飲食店チェーンの経営アドバイザーです。%s月次レポートの所見を日本語で3〜4文で書いてください。
売上合計: %.0f円
経費合計: %.0f円
利益: %.0f円
報告日数: %d日
数値の羅列ではなく、良い点と注意点を一つずつ挙げてください。`,
		month, sales, expenses, sales-expenses, reportCount,
	)

	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate report comment"})
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Empty response from AI service"})
	}

	comment := fmt.Sprint(resp.Candidates[0].Content.Parts[0])
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"month": month, "comment": comment}})
}
