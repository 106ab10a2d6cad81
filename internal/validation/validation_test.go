package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestItemRequest_Valid(t *testing.T) {
	v := New()

	req := ItemRequest{ID: "abc", Description: "desc", Price: -3}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestItemRequest_IDTooLong(t *testing.T) {
	v := New()

	req := ItemRequest{ID: strings.Repeat("x", 65)}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for long id, got nil")
	}
}

func TestItemQuery_ItemHasNoID(t *testing.T) {
	item := ItemQuery{Description: "descToSet", Price: 9.01}.Item()
	if item.ID != "" || item.Description != "descToSet" || item.Price != 9.01 {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestBindAndValidateWritesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"id":"` + strings.Repeat("x", 65) + `","description":"d","price":1}`
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req ItemRequest
	if err := BindAndValidate(c, &req, New()); err == nil {
		t.Fatal("expected error")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id"`) {
		t.Fatalf("expected id field in response: %s", w.Body.String())
	}
}

func TestBindAndValidateRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req ItemRequest
	if err := BindAndValidate(c, &req, New()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(w.Body.String(), "invalid_request_body") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
