package handlers

import (
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// Dates travel as "Mon Jan 02 15:04:05 MST 2006" strings; mapping between
// DTOs and models is explicit below.

type TripDTO struct {
	ID          int64      `json:"id"`
	TripCode    string     `json:"tripCode"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      *bool      `json:"status"`
	User        domain.Ref `json:"user"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

type BudgetDTO struct {
	ID          int64      `json:"id"`
	Trip        domain.Ref `json:"trip"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Status      *bool      `json:"status"`
}

type ExpenseDTO struct {
	ID                  int64      `json:"id"`
	Trip                domain.Ref `json:"trip"`
	User                domain.Ref `json:"user"`
	Amount              float64    `json:"amount"`
	PaidOn              *string    `json:"paidOn"`
	SplitType           string     `json:"splitType"`
	Category            *string    `json:"category"`
	CategoryDescription string     `json:"categoryDescription"`
	Status              *bool      `json:"status"`
}

type ItineraryDTO struct {
	ID     int64      `json:"id"`
	Trip   domain.Ref `json:"trip"`
	Date   string     `json:"date"`
	Notes  string     `json:"notes"`
	Status *bool      `json:"status"`
}

type TravelerDTO struct {
	ID     int64      `json:"id"`
	Trip   domain.Ref `json:"trip"`
	User   domain.Ref `json:"user"`
	Status *bool      `json:"status"`
}

type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Status    *bool  `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// parseDate maps a wire date to time.Time. Blank input returns the zero
// time unless the field is required.
func parseDate(field, value string, required bool) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		if required {
			return time.Time{}, domain.ValidationError{Field: field, Msg: "is required"}
		}
		return time.Time{}, nil
	}
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: field, Msg: err.Error(), Err: err}
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return utils.FormatTimestamp(t)
}

func toTripModel(dto TripDTO, requireDates bool) (models.Trip, error) {
	start, err := parseDate("startDate", dto.StartDate, requireDates)
	if err != nil {
		return models.Trip{}, err
	}
	end, err := parseDate("endDate", dto.EndDate, requireDates)
	if err != nil {
		return models.Trip{}, err
	}
	return models.Trip{
		ID:          dto.ID,
		TripCode:    strings.TrimSpace(dto.TripCode),
		Name:        utils.NormalizeSpace(dto.Name),
		Destination: utils.NormalizeSpace(dto.Destination),
		Description: utils.TrimOrEmpty(dto.Description),
		StartDate:   start,
		EndDate:     end,
		Status:      boolOr(dto.Status, true),
		UserID:      dto.User.ID,
	}, nil
}

func toTripDTO(t models.Trip) TripDTO {
	return TripDTO{
		ID:          t.ID,
		TripCode:    t.TripCode,
		Name:        t.Name,
		Destination: t.Destination,
		Description: t.Description,
		StartDate:   formatDate(t.StartDate),
		EndDate:     formatDate(t.EndDate),
		Status:      boolPtr(t.Status),
		User:        domain.Ref{ID: t.UserID},
		CreatedAt:   formatDate(t.CreatedAt),
		UpdatedAt:   formatDate(t.UpdatedAt),
	}
}

func toBudgetModel(dto BudgetDTO) models.Budget {
	return models.Budget{
		ID:          dto.ID,
		TripID:      dto.Trip.ID,
		Amount:      dto.Amount,
		Description: utils.TrimOrEmpty(dto.Description),
		Status:      boolOr(dto.Status, true),
	}
}

func toBudgetDTO(b models.Budget) BudgetDTO {
	return BudgetDTO{
		ID:          b.ID,
		Trip:        domain.Ref{ID: b.TripID},
		Amount:      b.Amount,
		Description: b.Description,
		Status:      boolPtr(b.Status),
	}
}

func toExpenseModel(dto ExpenseDTO) (models.Expense, error) {
	e := models.Expense{
		ID:                  dto.ID,
		TripID:              dto.Trip.ID,
		UserID:              dto.User.ID,
		Amount:              dto.Amount,
		SplitType:           utils.TrimOrEmpty(dto.SplitType),
		CategoryDescription: utils.TrimOrEmpty(dto.CategoryDescription),
		Status:              boolOr(dto.Status, true),
	}
	if dto.PaidOn != nil {
		paid, err := parseDate("paidOn", *dto.PaidOn, false)
		if err != nil {
			return models.Expense{}, err
		}
		if !paid.IsZero() {
			e.PaidOn = &paid
		}
	}
	if dto.Category != nil {
		if cat := utils.TrimOrEmpty(*dto.Category); cat != "" {
			e.Category = &cat
		}
	}
	return e, nil
}

func toExpenseDTO(e models.Expense) ExpenseDTO {
	dto := ExpenseDTO{
		ID:                  e.ID,
		Trip:                domain.Ref{ID: e.TripID},
		User:                domain.Ref{ID: e.UserID},
		Amount:              e.Amount,
		SplitType:           e.SplitType,
		Category:            e.Category,
		CategoryDescription: e.CategoryDescription,
		Status:              boolPtr(e.Status),
	}
	if e.PaidOn != nil {
		s := formatDate(*e.PaidOn)
		dto.PaidOn = &s
	}
	return dto
}

func toItineraryModel(dto ItineraryDTO, requireDate bool) (models.Itinerary, error) {
	date, err := parseDate("date", dto.Date, requireDate)
	if err != nil {
		return models.Itinerary{}, err
	}
	return models.Itinerary{
		ID:     dto.ID,
		TripID: dto.Trip.ID,
		Date:   date,
		Notes:  utils.TrimOrEmpty(dto.Notes),
		Status: boolOr(dto.Status, true),
	}, nil
}

func toItineraryDTO(it models.Itinerary) ItineraryDTO {
	return ItineraryDTO{
		ID:     it.ID,
		Trip:   domain.Ref{ID: it.TripID},
		Date:   formatDate(it.Date),
		Notes:  it.Notes,
		Status: boolPtr(it.Status),
	}
}

func toTravelerModel(dto TravelerDTO) models.Traveler {
	return models.Traveler{
		ID:     dto.ID,
		TripID: dto.Trip.ID,
		UserID: dto.User.ID,
		Status: boolOr(dto.Status, true),
	}
}

func toTravelerDTO(tr models.Traveler) TravelerDTO {
	return TravelerDTO{
		ID:     tr.ID,
		Trip:   domain.Ref{ID: tr.TripID},
		User:   domain.Ref{ID: tr.UserID},
		Status: boolPtr(tr.Status),
	}
}

func toUserModel(dto UserDTO) models.User {
	return models.User{
		ID:       dto.ID,
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Role:     dto.Role,
		Status:   boolOr(dto.Status, true),
	}
}

// toUserDTO never exposes the password hash.
func toUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    boolPtr(u.Status),
		CreatedAt: formatDate(u.CreatedAt),
	}
}

func mapSlice[M any, D any](in []M, fn func(M) D) []D {
	out := make([]D, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
