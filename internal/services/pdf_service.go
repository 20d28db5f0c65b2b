package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripwise/internal/models/response_models"

	"github.com/phpdave11/gofpdf"
)

type PdfServiceInterface interface {
	RenderTrip(ctx context.Context, trip *response_models.TripResponse) ([]byte, error)
}

type PdfService struct {
	httpClient *http.Client
}

func NewPdfService() PdfServiceInterface {
	return &PdfService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RenderTrip writes the trip header and then, per day per activity, the
// time/title/rating line, the address and a best-effort photo. Image
// fetch failures are swallowed; the activity still renders.
func (p *PdfService) RenderTrip(ctx context.Context, trip *response_models.TripResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("Trip: %s", trip.Destination), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Dates: %s to %s\nBudget: %s\nInterests: %s",
		trip.StartDate,
		trip.EndDate,
		trip.Budget,
		strings.Join(trip.Interests, ", "),
	), "", "L", false)
	pdf.Ln(4)

	imgIndex := 0
	for _, day := range trip.Itinerary {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, fmt.Sprintf("Date: %s", day.Date), "", 1, "L", false, 0, "")

		for _, act := range day.Activities {
			rating := "N/A"
			if act.Rating != nil {
				rating = fmt.Sprintf("%.1f", *act.Rating)
			}

			pdf.SetFont("Arial", "", 13)
			pdf.CellFormat(0, 8, fmt.Sprintf("- %s %s (%s*)", act.Time, act.Title, rating), "", 1, "L", false, 0, "")

			if act.Address != nil && *act.Address != "" {
				pdf.SetFont("Arial", "", 11)
				pdf.CellFormat(0, 6, "  "+*act.Address, "", 1, "L", false, 0, "")
			}

			if act.ImageURL != nil && *act.ImageURL != "" {
				if img, imgType, err := p.fetchImage(ctx, *act.ImageURL); err == nil {
					imgIndex++
					name := fmt.Sprintf("activity-%d", imgIndex)
					opts := gofpdf.ImageOptions{ImageType: imgType}
					pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
					pdf.ImageOptions(name, pdf.GetX()+5, pdf.GetY()+2, 70, 0, true, opts, 0, "")
					pdf.Ln(2)
				}
			}

			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *PdfService) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, "", fmt.Errorf("image fetch bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		return nil, "", err
	}

	imgType := "jpg"
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "png") {
		imgType = "png"
	}
	return data, imgType, nil
}
