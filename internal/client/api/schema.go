package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iudanet/solarsync/internal/models"
	"github.com/iudanet/solarsync/pkg/api"
)

// FieldKind тип значения колонки
type FieldKind int

const (
	KindText   FieldKind = iota // string, default ""
	KindNumber                  // float64, default 0
	KindInt                     // integral number, default 0
	KindLinks                   // []string of record IDs, default []
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindInt:
		return "integer"
	case KindLinks:
		return "linked record ids"
	default:
		return "unknown"
	}
}

// Field колонка таблицы в удаленном API
type Field struct {
	Name string // wire key, e.g. "Postal Code"
	Kind FieldKind
}

// Schema describes how records of one entity look on the wire and how they
// map to the internal type.
type Schema[T models.Record] struct {
	decode       func(r *fieldReader) T
	Entity       models.EntityType
	DefaultTable string
	Fields       []Field
}

// Field returns the column definition by wire name
func (s Schema[T]) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Decode translates a wire record. Absent fields get their kind's default;
// a present field of the wrong type is a *FieldError.
func (s Schema[T]) Decode(rec api.Record) (T, error) {
	r := &fieldReader{entity: s.Entity, id: rec.ID, fields: rec.Fields}
	v := s.decode(r)
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return v, nil
}

// ParseAssignments converts "Field=Value" pairs into wire fields, typed
// according to the schema. Links are comma separated record IDs.
func (s Schema[T]) ParseAssignments(assignments []string) (api.Fields, error) {
	fields := make(api.Fields, len(assignments))

	for _, a := range assignments {
		name, raw, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q, expected Field=Value", a)
		}

		field, ok := s.Field(name)
		if !ok {
			return nil, fmt.Errorf("unknown %s field %q", s.Entity, name)
		}

		switch field.Kind {
		case KindText:
			fields[name] = raw
		case KindNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			fields[name] = n
		case KindInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			fields[name] = n
		case KindLinks:
			links := []string{}
			for _, id := range strings.Split(raw, ",") {
				if id = strings.TrimSpace(id); id != "" {
					links = append(links, id)
				}
			}
			fields[name] = links
		}
	}

	return fields, nil
}

// fieldReader collects the first type error while decoding one record
type fieldReader struct {
	err    error
	fields api.Fields
	entity models.EntityType
	id     string
}

func (r *fieldReader) fail(name, want string, got any) {
	if r.err == nil {
		r.err = &FieldError{Entity: r.entity.String(), RecordID: r.id, Field: name, Want: want, Got: got}
	}
}

func (r *fieldReader) text(name string) string {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, "text", v)
		return ""
	}
	return s
}

func (r *fieldReader) number(name string) float64 {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		r.fail(name, "number", v)
		return 0
	}
}

func (r *fieldReader) integer(name string) int {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			r.fail(name, "integer", v)
			return 0
		}
		return int(n)
	case int:
		return n
	default:
		r.fail(name, "integer", v)
		return 0
	}
}

func (r *fieldReader) links(name string) []string {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...)
	case []any:
		ids := make([]string, 0, len(list))
		for _, item := range list {
			id, ok := item.(string)
			if !ok {
				r.fail(name, "linked record ids", v)
				return []string{}
			}
			ids = append(ids, id)
		}
		return ids
	default:
		r.fail(name, "linked record ids", v)
		return []string{}
	}
}

// Wire column names
const (
	FieldName              = "Name"
	FieldReference         = "Reference"
	FieldCategory          = "Category"
	FieldBrand             = "Brand"
	FieldUnit              = "Unit"
	FieldPrice             = "Price"
	FieldPowerW            = "Power (W)"
	FieldEmail             = "Email"
	FieldPhone             = "Phone"
	FieldAddress           = "Address"
	FieldCity              = "City"
	FieldPostalCode        = "Postal Code"
	FieldNotes             = "Notes"
	FieldInstallations     = "Installations"
	FieldPowerKWp          = "Power (kWp)"
	FieldPanelCount        = "Panel Count"
	FieldInverter          = "Inverter"
	FieldCommissioningDate = "Commissioning Date"
	FieldStatus            = "Status"
	FieldClients           = "Clients"
	FieldSessions          = "Sessions"
	FieldTitle             = "Title"
	FieldDate              = "Date"
	FieldTechnician        = "Technician"
	FieldReport            = "Report"
	FieldInstallation      = "Installation"
)

// ProductSchema прайс-лист
var ProductSchema = Schema[models.Product]{
	Entity:       models.EntityProducts,
	DefaultTable: "Products",
	Fields: []Field{
		{FieldName, KindText},
		{FieldReference, KindText},
		{FieldCategory, KindText},
		{FieldBrand, KindText},
		{FieldUnit, KindText},
		{FieldPrice, KindNumber},
		{FieldPowerW, KindNumber},
	},
	decode: func(r *fieldReader) models.Product {
		return models.Product{
			ID:        r.id,
			Name:      r.text(FieldName),
			Reference: r.text(FieldReference),
			Category:  r.text(FieldCategory),
			Brand:     r.text(FieldBrand),
			Unit:      r.text(FieldUnit),
			Price:     r.number(FieldPrice),
			PowerW:    r.number(FieldPowerW),
		}
	},
}

// ClientSchema клиенты
var ClientSchema = Schema[models.Client]{
	Entity:       models.EntityClients,
	DefaultTable: "Clients",
	Fields: []Field{
		{FieldName, KindText},
		{FieldEmail, KindText},
		{FieldPhone, KindText},
		{FieldAddress, KindText},
		{FieldCity, KindText},
		{FieldPostalCode, KindText},
		{FieldNotes, KindText},
		{FieldInstallations, KindLinks},
	},
	decode: func(r *fieldReader) models.Client {
		return models.Client{
			ID:            r.id,
			Name:          r.text(FieldName),
			Email:         r.text(FieldEmail),
			Phone:         r.text(FieldPhone),
			Address:       r.text(FieldAddress),
			City:          r.text(FieldCity),
			PostalCode:    r.text(FieldPostalCode),
			Notes:         r.text(FieldNotes),
			Installations: r.links(FieldInstallations),
		}
	},
}

// InstallationSchema установки
var InstallationSchema = Schema[models.Installation]{
	Entity:       models.EntityInstallations,
	DefaultTable: "Installations",
	Fields: []Field{
		{FieldName, KindText},
		{FieldAddress, KindText},
		{FieldCity, KindText},
		{FieldPowerKWp, KindNumber},
		{FieldPanelCount, KindInt},
		{FieldInverter, KindText},
		{FieldCommissioningDate, KindText},
		{FieldStatus, KindText},
		{FieldClients, KindLinks},
		{FieldSessions, KindLinks},
	},
	decode: func(r *fieldReader) models.Installation {
		return models.Installation{
			ID:             r.id,
			Name:           r.text(FieldName),
			Address:        r.text(FieldAddress),
			City:           r.text(FieldCity),
			PowerKWp:       r.number(FieldPowerKWp),
			PanelCount:     r.integer(FieldPanelCount),
			Inverter:       r.text(FieldInverter),
			CommissionedOn: r.text(FieldCommissioningDate),
			Status:         r.text(FieldStatus),
			Clients:        r.links(FieldClients),
			Sessions:       r.links(FieldSessions),
		}
	},
}

// SessionSchema выезды на обслуживание
var SessionSchema = Schema[models.Session]{
	Entity:       models.EntitySessions,
	DefaultTable: "Sessions",
	Fields: []Field{
		{FieldTitle, KindText},
		{FieldDate, KindText},
		{FieldTechnician, KindText},
		{FieldStatus, KindText},
		{FieldReport, KindText},
		{FieldInstallation, KindLinks},
	},
	decode: func(r *fieldReader) models.Session {
		return models.Session{
			ID:            r.id,
			Title:         r.text(FieldTitle),
			Date:          r.text(FieldDate),
			Technician:    r.text(FieldTechnician),
			Status:        r.text(FieldStatus),
			Report:        r.text(FieldReport),
			Installations: r.links(FieldInstallation),
		}
	},
}
