package utils

import (
	"context"
	"testing"
)

func TestGenerateReportCodeUnsupportedDB(t *testing.T) {
	_, err := GenerateReportCode(context.Background(), struct{}{}, 2024, 6)
	if err == nil {
		t.Fatalf("expected error for unsupported DB type")
	}
}
