package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// MarkdownWriter renders records as Markdown documents.
type MarkdownWriter struct {
	w *bufio.Writer
}

// NewMarkdownWriter creates a Markdown writer.
func NewMarkdownWriter(w io.Writer) *MarkdownWriter {
	return &MarkdownWriter{w: bufio.NewWriter(w)}
}

// Write renders one record as a Markdown document.
func (w *MarkdownWriter) Write(rec hotel.Record) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rec.HotelName)
	fmt.Fprintf(&b, "**Website:** %s  \n", rec.WebsiteURL)
	fmt.Fprintf(&b, "**Data Quality Score:** %.2f/1.0  \n", rec.ConfidenceScore)
	fmt.Fprintf(&b, "**Last Updated:** %s  \n\n", rec.ScrapedAt)

	b.WriteString("## Contact Information\n\n")
	boldIf(&b, "Phone", rec.Phone)
	boldIf(&b, "Email", rec.Email)
	boldIf(&b, "Address", rec.Address)
	b.WriteString("\n")

	b.WriteString("## Policies\n\n")
	if rec.CheckinTime != "" || rec.CheckoutTime != "" {
		b.WriteString("### Check-in/Check-out\n")
		if rec.CheckinTime != "" {
			fmt.Fprintf(&b, "- **Check-in:** %s\n", rec.CheckinTime)
		}
		if rec.CheckoutTime != "" {
			fmt.Fprintf(&b, "- **Check-out:** %s\n", rec.CheckoutTime)
		}
		b.WriteString("\n")
	}
	if rec.CancellationPolicy != "" {
		fmt.Fprintf(&b, "- **Cancellation:** %s\n\n", rec.CancellationPolicy)
	}

	if rec.ParkingAvailable != nil && *rec.ParkingAvailable {
		b.WriteString("## Parking\n\n")
		boldIf(&b, "Type", rec.ParkingType)
		boldIf(&b, "Cost", rec.ParkingCost)
		b.WriteString("\n")
	}

	if len(rec.Restaurants) > 0 {
		b.WriteString("## Dining\n\n")
		for _, r := range rec.Restaurants {
			fmt.Fprintf(&b, "### %s\n", r.Name)
			boldIf(&b, "Cuisine", r.Cuisine)
			boldIf(&b, "Hours", r.Hours)
			b.WriteString("\n")
		}
	}

	if len(rec.RoomTypes) > 0 {
		b.WriteString("## Rooms\n\n")
		for _, rt := range rec.RoomTypes {
			fmt.Fprintf(&b, "- **%s**", rt.Type)
			if rt.Description != "" {
				fmt.Fprintf(&b, ": %s", rt.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(rec.NearbyAttractions) > 0 {
		b.WriteString("## Nearby Attractions\n\n")
		for _, p := range rec.NearbyAttractions {
			fmt.Fprintf(&b, "- **%s**", p.Name)
			if p.Distance != "" {
				fmt.Fprintf(&b, " (%s)", p.Distance)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	b.WriteString("*This information was automatically extracted from the hotel website.*\n")

	if _, err := w.w.WriteString(b.String()); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteAll renders multiple records as consecutive documents.
func (w *MarkdownWriter) WriteAll(recs []hotel.Record) error {
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
func (w *MarkdownWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *MarkdownWriter) Close() error {
	return w.Flush()
}

func boldIf(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "**%s:** %s  \n", label, value)
	}
}
