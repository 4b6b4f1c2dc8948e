package models

// Record is implemented by every entity stored in the cache.
// The ID is the remote record ID, there is no separate local ID space.
type Record interface {
	GetID() string
}

// Product представляет позицию прайс-листа
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Reference string  `json:"reference"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	PowerW    float64 `json:"power_w"`
}

// GetID implements Record
func (p Product) GetID() string { return p.ID }

// Client представляет клиента (частное лицо или компанию)
type Client struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	PostalCode    string   `json:"postal_code"`
	Notes         string   `json:"notes"`
	Installations []string `json:"installations"` // linked installation IDs
}

// GetID implements Record
func (c Client) GetID() string { return c.ID }

// Installation представляет солнечную установку на объекте клиента
type Installation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Inverter       string   `json:"inverter"`
	CommissionedOn string   `json:"commissioned_on"`
	Status         string   `json:"status"`
	Clients        []string `json:"clients"`  // linked client IDs
	Sessions       []string `json:"sessions"` // linked session IDs
	PowerKWp       float64  `json:"power_kwp"`
	PanelCount     int      `json:"panel_count"`
}

// GetID implements Record
func (i Installation) GetID() string { return i.ID }

// Session представляет выезд на обслуживание установки
type Session struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	Technician    string   `json:"technician"`
	Status        string   `json:"status"`
	Report        string   `json:"report"`
	Installations []string `json:"installations"` // linked installation IDs
}

// GetID implements Record
func (s Session) GetID() string { return s.ID }

// HasLink reports whether id is present in a linked-record list
func HasLink(links []string, id string) bool {
	for _, l := range links {
		if l == id {
			return true
		}
	}
	return false
}

// AddLink returns links with id appended unless already present
func AddLink(links []string, id string) []string {
	if HasLink(links, id) {
		return links
	}
	out := make([]string, 0, len(links)+1)
	out = append(out, links...)
	return append(out, id)
}

// RemoveLink returns links without id
func RemoveLink(links []string, id string) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		if l != id {
			out = append(out, l)
		}
	}
	return out
}
