package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// TripDocsService renders a printable itinerary for a trip.
type TripDocsService struct {
	Stores    Stores
	RequestID string
	Loader    func(ctx context.Context, tripID int64) (tripDocData, error)
}

type tripDocData struct {
	Trip        models.Trip
	Days        []models.Itinerary
	BudgetTotal float64
	Travelers   int
}

func NewTripDocsService(requestID string) TripDocsService {
	return TripDocsService{Stores: SQLStores(nil), RequestID: requestID}
}

// GenerateItineraryPDF returns the PDF bytes and a download filename.
func (s TripDocsService) GenerateItineraryPDF(ctx context.Context, tripID int64) ([]byte, string, error) {
	if err := requireID("tripId", tripID); err != nil {
		return nil, "", err
	}
	data, err := s.load(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "itinerary_pdf", "rendering itinerary",
		zap.Int64("trip_id", tripID), zap.Int("days", len(data.Days)))
	return buildItineraryPDF(data)
}

func (s TripDocsService) load(ctx context.Context, tripID int64) (tripDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, tripID)
	}

	var out tripDocData
	trip, err := s.Stores.Trips.GetByID(ctx, tripID)
	if err != nil {
		return out, err
	}
	out.Trip = trip

	if out.Days, err = s.Stores.Itineraries.ListByTrip(ctx, tripID); err != nil {
		return out, err
	}
	budgets, err := s.Stores.Budgets.ListByTrip(ctx, tripID)
	if err != nil {
		return out, err
	}
	for _, b := range budgets {
		if b.Status {
			out.BudgetTotal += b.Amount
		}
	}
	travelers, err := s.Stores.Travelers.ListByTrip(ctx, tripID)
	if err != nil {
		return out, err
	}
	for _, tr := range travelers {
		if tr.Status {
			out.Travelers++
		}
	}
	return out, nil
}

func buildItineraryPDF(d tripDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary "+d.Trip.TripCode, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip        : %s", safe(d.Trip.Name, "-")),
		fmt.Sprintf("Code        : %s", safe(d.Trip.TripCode, "-")),
		fmt.Sprintf("Destination : %s", safe(d.Trip.Destination, "-")),
		fmt.Sprintf("Dates       : %s - %s", utils.FormatDate(d.Trip.StartDate), utils.FormatDate(d.Trip.EndDate)),
		fmt.Sprintf("Budget      : %s", utils.FormatMoney(d.BudgetTotal)),
		fmt.Sprintf("Travelers   : %d", d.Travelers),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Days")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Days) == 0 {
		pdf.Cell(0, 6, "No itinerary days planned yet.")
		pdf.Ln(6)
	}
	for i, day := range d.Days {
		if !day.Status {
			continue
		}
		label := fmt.Sprintf("Day %d  %s", i+1, day.Date.Format("Mon, 02 Jan 2006"))
		pdf.Cell(0, 6, label)
		pdf.Ln(6)
		if notes := strings.TrimSpace(day.Notes); notes != "" {
			pdf.MultiCell(0, 5, "    "+notes, "", "", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+utils.FormatDateTime(time.Now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", safe(d.Trip.TripCode, "NA"), utils.SafeFilenamePart(d.Trip.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
