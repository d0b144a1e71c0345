package handlers

import (
	"context"
	"log"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HandleListStores returns a paginated list of stores.
// GET /api/v1/admin/stores
func HandleListStores(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&total); err != nil {
		log.Printf("Error counting stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list stores"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)
	offset := (pagination.CurrentPage - 1) * pagination.PageSize

	rows, err := db.Query(ctx, `
		SELECT id, name, address, phone, is_active, created_at, updated_at
		FROM stores
		ORDER BY name
		LIMIT $1 OFFSET $2`, pagination.PageSize, offset)
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list stores"})
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error scanning store row: %v", err)
			continue
		}
		stores = append(stores, s)
	}

	return c.JSON(models.PaginatedStoresResponse{
		Data: stores,
		Pagination: models.Pagination{
			TotalItems:  pagination.TotalItems,
			TotalPages:  pagination.TotalPages,
			CurrentPage: pagination.CurrentPage,
			PageSize:    pagination.PageSize,
		},
	})
}

// HandleGetStoreByID fetches a single store.
// GET /api/v1/admin/stores/:storeId
func HandleGetStoreByID(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	storeID := c.Params("storeId")

	var s models.Store
	err := db.QueryRow(ctx, `
		SELECT id, name, address, phone, is_active, created_at, updated_at
		FROM stores WHERE id = $1`, storeID).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Store not found"})
		}
		log.Printf("Error fetching store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch store"})
	}

	return c.JSON(fiber.Map{"success": true, "data": s})
}

// HandleCreateStore registers a new store.
// POST /api/v1/admin/stores
func HandleCreateStore(c *fiber.Ctx) error {
	var req models.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Store name is required"})
	}

	db := database.GetDB()
	ctx := context.Background()

	var s models.Store
	err := db.QueryRow(ctx, `
		INSERT INTO stores (id, name, address, phone, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, address, phone, is_active, created_at, updated_at`,
		uuid.NewString(), req.Name, req.Address, req.Phone, req.IsActive).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		log.Printf("Error creating store: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create store"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": s})
}

// HandleUpdateStore updates a store's details.
// PUT /api/v1/admin/stores/:storeId
func HandleUpdateStore(c *fiber.Ctx) error {
	var req models.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	db := database.GetDB()
	ctx := context.Background()
	storeID := c.Params("storeId")

	var s models.Store
	err := db.QueryRow(ctx, `
		UPDATE stores
		SET name = $2, address = $3, phone = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, address, phone, is_active, created_at, updated_at`,
		storeID, req.Name, req.Address, req.Phone, req.IsActive).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Store not found"})
		}
		log.Printf("Error updating store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update store"})
	}

	return c.JSON(fiber.Map{"success": true, "data": s})
}

// HandleDeleteStore deactivates a store. Daily reports are kept; the
// store simply stops appearing in active listings.
// DELETE /api/v1/admin/stores/:storeId
func HandleDeleteStore(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	storeID := c.Params("storeId")

	tag, err := db.Exec(ctx, `UPDATE stores SET is_active = false, updated_at = NOW() WHERE id = $1`, storeID)
	if err != nil {
		log.Printf("Error deactivating store %s: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete store"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Store not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Store deactivated"})
}
