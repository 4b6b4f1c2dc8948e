package cli

import (
	"strconv"
	"strings"

	"github.com/iudanet/solarsync/internal/models"
)

func title(entity models.EntityType) string {
	s := string(entity)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// printRecord печатает запись, пустые поля пропускаются
func (c *Cli) printRecord(n int, record models.Record) {
	switch r := record.(type) {
	case models.Product:
		c.io.Printf("%d. %s\n", n, r.Name)
		c.field("ID", r.ID)
		c.field("Reference", r.Reference)
		c.field("Category", r.Category)
		c.field("Brand", r.Brand)
		c.field("Price", formatPrice(r.Price, r.Unit))
		c.field("Power", formatNumber(r.PowerW, "W"))
	case models.Client:
		c.io.Printf("%d. %s\n", n, r.Name)
		c.field("ID", r.ID)
		c.field("Email", r.Email)
		c.field("Phone", r.Phone)
		c.field("Address", joinNonEmpty(r.Address, r.PostalCode, r.City))
		c.field("Notes", r.Notes)
		c.field("Installations", strings.Join(r.Installations, ", "))
	case models.Installation:
		c.io.Printf("%d. %s\n", n, r.Name)
		c.field("ID", r.ID)
		c.field("Address", joinNonEmpty(r.Address, r.City))
		c.field("Power", formatNumber(r.PowerKWp, "kWp"))
		if r.PanelCount > 0 {
			c.field("Panels", strconv.Itoa(r.PanelCount))
		}
		c.field("Inverter", r.Inverter)
		c.field("Commissioned", r.CommissionedOn)
		c.field("Status", r.Status)
		c.field("Clients", strings.Join(r.Clients, ", "))
		c.field("Sessions", strings.Join(r.Sessions, ", "))
	case models.Session:
		c.io.Printf("%d. %s\n", n, r.Title)
		c.field("ID", r.ID)
		c.field("Date", r.Date)
		c.field("Technician", r.Technician)
		c.field("Status", r.Status)
		c.field("Report", r.Report)
		c.field("Installations", strings.Join(r.Installations, ", "))
	default:
		c.io.Printf("%d. %s\n", n, record.GetID())
	}
	c.io.Println()
}

func (c *Cli) field(label, value string) {
	if value == "" {
		return
	}
	c.io.Printf("   %-14s %s\n", label+":", value)
}

func formatPrice(price float64, unit string) string {
	if price == 0 {
		return ""
	}
	s := strconv.FormatFloat(price, 'f', 2, 64)
	if unit != "" {
		s += " / " + unit
	}
	return s
}

func formatNumber(v float64, unit string) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
