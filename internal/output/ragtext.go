package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// RAGTextWriter renders records as plain-text profiles with labeled
// sections, a format that chunks cleanly for retrieval pipelines.
type RAGTextWriter struct {
	w *bufio.Writer
}

// NewRAGTextWriter creates a RAG text writer.
func NewRAGTextWriter(w io.Writer) *RAGTextWriter {
	return &RAGTextWriter{w: bufio.NewWriter(w)}
}

// Write renders one record as a text profile.
func (w *RAGTextWriter) Write(rec hotel.Record) error {
	var b strings.Builder

	b.WriteString("HOTEL INFORMATION PROFILE\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Hotel Name: %s\n", rec.HotelName)
	fmt.Fprintf(&b, "Website: %s\n", rec.WebsiteURL)
	fmt.Fprintf(&b, "Data Quality Score: %.2f/1.0\n", rec.ConfidenceScore)
	fmt.Fprintf(&b, "Last Updated: %s\n", rec.ScrapedAt)
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")

	section(&b, "CONTACT AND LOCATION")
	writeIf(&b, "Phone", rec.Phone)
	writeIf(&b, "Email", rec.Email)
	writeIf(&b, "Address", rec.Address)
	if rec.City != "" && rec.State != "" {
		fmt.Fprintf(&b, "Location: %s, %s\n", rec.City, rec.State)
	}
	b.WriteString("\n")

	section(&b, "HOTEL POLICIES")
	writeIf(&b, "Check-in Time", rec.CheckinTime)
	writeIf(&b, "Check-out Time", rec.CheckoutTime)
	writeIf(&b, "Cancellation Policy", rec.CancellationPolicy)
	if rec.PetPolicy != nil {
		status := "Not allowed"
		if rec.PetPolicy.Allowed {
			status = "Allowed"
		}
		fmt.Fprintf(&b, "Pet Policy: %s\n", status)
	}
	b.WriteString("\n")

	section(&b, "PARKING AND TRANSPORTATION")
	if rec.ParkingAvailable != nil && *rec.ParkingAvailable {
		b.WriteString("Parking: Available\n")
		writeIf(&b, "Parking Cost", rec.ParkingCost)
		writeIf(&b, "Parking Type", rec.ParkingType)
	} else {
		b.WriteString("Parking: Information not available\n")
	}
	writeIf(&b, "Shuttle Service", rec.ShuttleService)
	b.WriteString("\n")

	section(&b, "HOTEL AMENITIES")
	writeIf(&b, "WiFi", rec.WifiInfo)
	if rec.FitnessCenter != nil {
		fmt.Fprintf(&b, "Fitness Center: Available - %s\n", rec.FitnessCenter.Details)
	}
	if rec.Pool != nil {
		poolType := rec.Pool.Type
		if poolType == "" {
			poolType = "Standard"
		}
		fmt.Fprintf(&b, "Pool: %s pool available\n", poolType)
	}
	if len(rec.SpaServices) > 0 {
		fmt.Fprintf(&b, "Spa Services: %s\n", strings.Join(rec.SpaServices, ", "))
	}
	if len(rec.AccessibilityFeatures) > 0 {
		fmt.Fprintf(&b, "Accessibility: %s\n", strings.Join(rec.AccessibilityFeatures, ", "))
	}
	b.WriteString("\n")

	if len(rec.Restaurants) > 0 || rec.RoomService != nil || rec.BreakfastInfo != nil {
		section(&b, "DINING OPTIONS")
		if len(rec.Restaurants) > 0 {
			b.WriteString("Restaurants:\n")
			for _, r := range rec.Restaurants {
				fmt.Fprintf(&b, "  - %s", r.Name)
				if r.Cuisine != "" {
					fmt.Fprintf(&b, " (%s)", r.Cuisine)
				}
				if r.Hours != "" {
					fmt.Fprintf(&b, " - %s", r.Hours)
				}
				b.WriteString("\n")
			}
		}
		if rec.RoomService != nil {
			hours := rec.RoomService.Hours
			if hours == "" {
				hours = "Available"
			}
			fmt.Fprintf(&b, "Room Service: %s\n", hours)
		}
		if rec.BreakfastInfo != nil {
			bfastType := rec.BreakfastInfo.Type
			if bfastType == "" {
				bfastType = "Available"
			}
			fmt.Fprintf(&b, "Breakfast: %s", bfastType)
			if rec.BreakfastInfo.Cost != "" {
				fmt.Fprintf(&b, " - %s", rec.BreakfastInfo.Cost)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(rec.RoomTypes) > 0 || len(rec.RoomAmenities) > 0 {
		section(&b, "ROOM INFORMATION")
		if len(rec.RoomTypes) > 0 {
			b.WriteString("Room Types:\n")
			for _, rt := range rec.RoomTypes {
				fmt.Fprintf(&b, "  - %s", rt.Type)
				if rt.Description != "" {
					fmt.Fprintf(&b, ": %s", rt.Description)
				}
				b.WriteString("\n")
			}
		}
		if len(rec.RoomAmenities) > 0 {
			fmt.Fprintf(&b, "Room Amenities: %s\n", strings.Join(rec.RoomAmenities, ", "))
		}
		b.WriteString("\n")
	}

	if len(rec.NearbyAttractions) > 0 {
		section(&b, "NEARBY ATTRACTIONS")
		for _, p := range rec.NearbyAttractions {
			fmt.Fprintf(&b, "  - %s", p.Name)
			if p.Distance != "" {
				fmt.Fprintf(&b, " (%s)", p.Distance)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(rec.ConciergeServices) > 0 {
		section(&b, "ADDITIONAL SERVICES")
		for _, s := range rec.ConciergeServices {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Confidence Score: %.2f (higher is better)\n", rec.ConfidenceScore)
	b.WriteString("For the most current information, please contact the hotel directly.\n")

	if _, err := w.w.WriteString(b.String()); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteAll renders multiple records separated by blank lines.
func (w *RAGTextWriter) WriteAll(recs []hotel.Record) error {
	for i, rec := range recs {
		if i > 0 {
			if _, err := w.w.WriteString("\n\n"); err != nil {
				return err
			}
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *RAGTextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *RAGTextWriter) Close() error {
	return w.Flush()
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}

func writeIf(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}
