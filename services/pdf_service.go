// File: /services/pdf_service.go
package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"safarplan-api/models"
)

// GenerateTripPDF renders an itinerary document for download and returns the
// raw bytes (no filesystem needed).
func GenerateTripPDF(trip *models.Trip, destinationName, travelerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 110, 79)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "SafarPlan", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Budget-Optimized Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 110, 79)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// Trip overview
	sectionHeader("Trip Overview")
	name := travelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Destination", destinationName)
	row("Dates", fmt.Sprintf("%s to %s", fmtDateReadable(trip.StartDate), fmtDateReadable(trip.EndDate)))
	row("Trip type", trip.TripType)
	row("Budget", fmt.Sprintf("PKR %d", trip.Budget))
	row("Total cost", fmt.Sprintf("PKR %d", trip.TotalCost))
	row("Savings", fmt.Sprintf("PKR %d", trip.Budget-trip.TotalCost))
	pdf.Ln(4)

	// Day-by-day plan
	for _, day := range trip.Itinerary {
		sectionHeader(fmt.Sprintf("Day %d - %s", day.Day, fmtDateReadable(day.Date)))

		if day.Transport != nil {
			row("Transport", fmt.Sprintf("%s %s to %s (%s) - PKR %d",
				day.Transport.Type, day.Transport.From, day.Transport.To,
				day.Transport.Duration, day.Transport.Price))
		}
		if day.Hotel != nil {
			row("Stay", fmt.Sprintf("%s (%s) - PKR %d/night",
				day.Hotel.Name, day.Hotel.Type, day.Hotel.PricePerNight))
		}
		for _, activity := range day.Activities {
			row(activity.Time, fmt.Sprintf("%s - PKR %d", activity.Name, activity.Price))
		}
		row("Day total", fmt.Sprintf("PKR %d", day.DayCost))
		pdf.Ln(3)
	}

	// Footer
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by SafarPlan - Prices are estimates and subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006")
}
