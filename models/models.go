package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Core Models ---

// User represents a user in the system (Admin or store Manager).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	StoreID   *string   `json:"store_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store represents a single restaurant location.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Holiday represents a closure day, either company-wide or for one store.
type Holiday struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HolidayDate string    `json:"holiday_date"`
	StoreID     *string   `json:"store_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- API Request/Response Structs ---

// CreateUserRequest defines the body for creating a new user.
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	StoreID  *string `json:"store_id,omitempty"`
}

// CreateStoreRequest defines the body for creating a new store.
type CreateStoreRequest struct {
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
}

// CreateHolidayRequest defines the body for registering a holiday.
type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	HolidayDate string  `json:"holiday_date"`
	StoreID     *string `json:"store_id,omitempty"`
}

// KpiData represents a single Key Performance Indicator.
type KpiData struct {
	Value float64 `json:"value"`
}

// StoreSales represents the total sales for a store.
type StoreSales struct {
	StoreName  string  `json:"store_name"`
	TotalSales float64 `json:"total_sales"`
}

// DashboardSummary defines the structure for the dashboard summary.
type DashboardSummary struct {
	MonthlySales      KpiData      `json:"monthly_sales"`
	MonthlyProfit     KpiData      `json:"monthly_profit"`
	ReportCount       KpiData      `json:"report_count"`
	AverageDailySales KpiData      `json:"average_daily_sales"`
	TopStores         []StoreSales `json:"top_stores"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedUsersResponse is the generic structure for paginated users.
type PaginatedUsersResponse struct {
	Data       []User     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PaginatedStoresResponse is the structure for the GET /api/v1/admin/stores endpoint.
type PaginatedStoresResponse struct {
	Data       []Store    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
