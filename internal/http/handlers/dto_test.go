package handlers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

func TestParseDateAcceptsSeveralLayouts(t *testing.T) {
	for _, in := range []string{
		"Mon Jan 01 00:00:00 GMT 2024",
		"2024-01-01T00:00:00Z",
		"2024-01-01",
	} {
		got, err := parseDate("startDate", in, true)
		if err != nil {
			t.Fatalf("parseDate(%q) error: %v", in, err)
		}
		if got.Year() != 2024 || got.Month() != time.January || got.Day() != 1 {
			t.Fatalf("parseDate(%q) = %v", in, got)
		}
	}
}

func TestParseDateRequired(t *testing.T) {
	if _, err := parseDate("endDate", "  ", true); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got, err := parseDate("endDate", "", false)
	if err != nil || !got.IsZero() {
		t.Fatalf("optional blank date should be zero, got %v %v", got, err)
	}
}

func TestTripDTORoundTrip(t *testing.T) {
	var dto TripDTO
	body := `{"name":"  Lisbon   long weekend ","startDate":"2024-05-01","endDate":"2024-05-04","user":{"id":7}}`
	if err := json.Unmarshal([]byte(body), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	trip, err := toTripModel(dto, true)
	if err != nil {
		t.Fatalf("toTripModel: %v", err)
	}
	if trip.Name != "Lisbon long weekend" || trip.UserID != 7 || !trip.Status {
		t.Fatalf("unexpected model %+v", trip)
	}

	trip.ID, trip.TripCode = 3, "AB12CD"
	out := toTripDTO(trip)
	if out.User.ID != 7 || out.TripCode != "AB12CD" || out.Status == nil || !*out.Status {
		t.Fatalf("unexpected dto %+v", out)
	}
	if !strings.Contains(out.StartDate, "2024") {
		t.Fatalf("start date not rendered: %q", out.StartDate)
	}
}

func TestExpenseOptionalFields(t *testing.T) {
	blank := "  "
	e, err := toExpenseModel(ExpenseDTO{Trip: domain.Ref{ID: 1}, User: domain.Ref{ID: 2}, Category: &blank})
	if err != nil {
		t.Fatalf("toExpenseModel: %v", err)
	}
	if e.PaidOn != nil || e.Category != nil {
		t.Fatalf("blank optionals should stay nil: %+v", e)
	}

	raw, _ := json.Marshal(toExpenseDTO(models.InitialExpense(1, 2)))
	if !strings.Contains(string(raw), `"paidOn":null`) || !strings.Contains(string(raw), `"category":null`) {
		t.Fatalf("initial expense should serialize nulls: %s", raw)
	}
}

func TestUserDTOHidesPassword(t *testing.T) {
	raw, _ := json.Marshal(toUserDTO(models.User{ID: 1, Username: "ana", PasswordHash: "$2a$secret"}))
	if strings.Contains(string(raw), "secret") || strings.Contains(string(raw), "password") {
		t.Fatalf("password leaked: %s", raw)
	}
}
