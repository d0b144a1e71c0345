package utils

import (
	"database/sql"
	"testing"
)

func TestNullStringToStringPtr(t *testing.T) {
	ns := sql.NullString{String: "hello", Valid: true}
	p := NullStringToStringPtr(ns)
	if p == nil || *p != "hello" {
		t.Fatalf("expected pointer to 'hello', got %v", p)
	}

	ns2 := sql.NullString{Valid: false}
	p2 := NullStringToStringPtr(ns2)
	if p2 != nil {
		t.Fatalf("expected nil pointer, got %v", p2)
	}
}

func TestPointerToString(t *testing.T) {
	s := "world"
	if PointerToString(&s) != "world" {
		t.Fatalf("expected 'world'")
	}
	if PointerToString(nil) != "<nil>" {
		t.Fatalf("expected '<nil>' for nil pointer")
	}
}

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if p.CurrentPage != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage)
	}

	// Defaults kick in for invalid page/pageSize.
	p = CreatePagination(5, 0, 0)
	if p.PageSize != 10 || p.CurrentPage != 1 {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestValidateAndNormalizeRole(t *testing.T) {
	role, ok := ValidateAndNormalizeRole("Admin")
	if !ok || role != "admin" {
		t.Fatalf("expected normalized admin, got %q ok=%v", role, ok)
	}
	if _, ok := ValidateAndNormalizeRole("staff"); ok {
		t.Fatalf("staff is not a valid role in this product")
	}
	if !IsValidRole("MANAGER") {
		t.Fatalf("manager should be valid")
	}
}
