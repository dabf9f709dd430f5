package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/missions?page=3&limit=25&search=logo&skill=design&status=open", nil)
	q := ParseQueryOptions(r)
	if q.Page != 3 || q.Limit != 25 {
		t.Fatalf("page/limit = %d/%d, want 3/25", q.Page, q.Limit)
	}
	if q.Search != "logo" || q.Skill != "design" || q.Status != "open" {
		t.Fatalf("filters = %q/%q/%q", q.Search, q.Skill, q.Status)
	}
}

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/missions?page=-1&limit=0", nil)
	q := ParseQueryOptions(r)
	if q.Page != 1 {
		t.Errorf("page = %d, want 1", q.Page)
	}
	if q.Limit != 10 {
		t.Errorf("limit = %d, want 10", q.Limit)
	}
}
