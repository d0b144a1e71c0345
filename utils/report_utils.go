package utils

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenerateReportCode generates a unique monthly export code in the format
// RPT-YYYYMM-NNNN where NNNN is a sequential number within the month.
func GenerateReportCode(ctx context.Context, db interface{}, year int, month int) (string, error) {
	prefix := fmt.Sprintf("RPT-%d%02d-", year, month)

	// Query to find the latest export code for this month
	query := `
		SELECT export_code
		FROM report_exports
		WHERE export_code LIKE $1
		ORDER BY export_code DESC
		LIMIT 1
	`
	pattern := prefix + "%"

	var lastCode string
	var err error

	// Handle both pgxpool.Pool and pgx.Tx types
	switch v := db.(type) {
	case *pgxpool.Pool:
		err = v.QueryRow(ctx, query, pattern).Scan(&lastCode)
	case pgx.Tx:
		err = v.QueryRow(ctx, query, pattern).Scan(&lastCode)
	default:
		return "", fmt.Errorf("unsupported database type")
	}

	// If no export exists for this month, start at 0001
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Sprintf("%s%04d", prefix, 1), nil
		}
		return "", fmt.Errorf("failed to query last export code: %w", err)
	}

	// Extract the sequential number from the last code
	var lastSeq int
	_, err = fmt.Sscanf(lastCode, prefix+"%d", &lastSeq)
	if err != nil {
		// If parsing fails, start fresh
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}

	return fmt.Sprintf("%s%04d", prefix, lastSeq+1), nil
}
