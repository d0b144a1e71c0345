package models

import "time"

// DailyReport is one store's financial report for one business day, as
// stored in the daily_reports table. One row per store per date.
type DailyReport struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	StoreName  string    `json:"store_name,omitempty"`
	ReportDate time.Time `json:"report_date"`
	Sales      float64   `json:"sales"`

	PurchaseCost      float64 `json:"purchase_cost"`
	LaborCost         float64 `json:"labor_cost"`
	UtilityCost       float64 `json:"utility_cost"`
	PromotionCost     float64 `json:"promotion_cost"`
	CleaningCost      float64 `json:"cleaning_cost"`
	MiscCost          float64 `json:"misc_cost"`
	CommunicationCost float64 `json:"communication_cost"`
	OtherCost         float64 `json:"other_cost"`

	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertDailyReportRequest defines the body for creating or replacing a
// store's report for a given date.
type UpsertDailyReportRequest struct {
	StoreID    string  `json:"store_id"`
	ReportDate string  `json:"report_date"`
	Sales      float64 `json:"sales"`

	PurchaseCost      float64 `json:"purchase_cost"`
	LaborCost         float64 `json:"labor_cost"`
	UtilityCost       float64 `json:"utility_cost"`
	PromotionCost     float64 `json:"promotion_cost"`
	CleaningCost      float64 `json:"cleaning_cost"`
	MiscCost          float64 `json:"misc_cost"`
	CommunicationCost float64 `json:"communication_cost"`
	OtherCost         float64 `json:"other_cost"`

	Note *string `json:"note,omitempty"`
}

// PaginatedReportsResponse for daily report listings.
type PaginatedReportsResponse struct {
	Data       []DailyReport `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// AnalyticsChatRequest defines the body for the analytics chat endpoint.
type AnalyticsChatRequest struct {
	Message string `json:"message"`
	StoreID string `json:"store_id,omitempty"`
}

// AssistantRequest defines the body for the avatar help assistant.
type AssistantRequest struct {
	Question string `json:"question"`
}

// AssistantResponse is the help assistant's answer along with the avatar
// mood tag the frontend uses to pick an expression.
type AssistantResponse struct {
	Answer    string   `json:"answer"`
	Mood      string   `json:"mood"`
	FollowUps []string `json:"follow_ups"`
}

// ReportCommentRequest defines the body for the Gemini-generated monthly
// report commentary.
type ReportCommentRequest struct {
	Month   string `json:"month"` // "YYYY-MM"
	StoreID string `json:"store_id,omitempty"`
}
