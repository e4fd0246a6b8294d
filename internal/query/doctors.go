// Package query holds the read-only operations over the doctor catalog:
// filtering, lookups, and the scripted chat and symptom responders.
package query

import (
	"sort"
	"strings"

	"telehealth-server/internal/catalog"
	"telehealth-server/internal/models"
)

// Sort orders accepted by Search.
const (
	SortRating    = "rating"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortDistance  = "distance"
)

// Doctors answers queries over a catalog.
type Doctors struct {
	catalog *catalog.Catalog
}

// NewDoctors creates a query layer over c.
func NewDoctors(c *catalog.Catalog) *Doctors {
	return &Doctors{catalog: c}
}

// Filter returns the doctors matching specialty (exact, or "all"/empty for
// every specialty) whose name, specialty, hospital or address contains
// search, case-insensitively. Only an empty search matches everything;
// whitespace in search is matched like any other character.
func (q *Doctors) Filter(specialty models.Specialty, search string) []models.Doctor {
	needle := strings.ToLower(search)
	out := make([]models.Doctor, 0)
	for _, d := range q.catalog.Doctors() {
		if specialty != "" && specialty != models.SpecialtyAll && d.Specialty != specialty {
			continue
		}
		if needle != "" && !matchesSearch(d, needle) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesSearch(d models.Doctor, needle string) bool {
	for _, field := range []string{d.Name, string(d.Specialty), d.Hospital, d.Location.Address} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SearchOptions narrows and orders a Filter result.
type SearchOptions struct {
	Specialty   models.Specialty
	Query       string
	MinFee      int
	MaxFee      int // 0 means no upper bound
	AvailableOn string
	Sort        string
}

// Search applies Filter, the fee range and the weekday availability, then
// sorts. Unknown sort values fall back to rating.
func (q *Doctors) Search(opts SearchOptions) []models.Doctor {
	filtered := q.Filter(opts.Specialty, opts.Query)
	out := filtered[:0]
	for _, d := range filtered {
		if d.ConsultationFee < opts.MinFee {
			continue
		}
		if opts.MaxFee > 0 && d.ConsultationFee > opts.MaxFee {
			continue
		}
		if opts.AvailableOn != "" && !d.AvailableOn(opts.AvailableOn) {
			continue
		}
		out = append(out, d)
	}

	switch opts.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ConsultationFee < out[j].ConsultationFee })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ConsultationFee > out[j].ConsultationFee })
	case SortDistance:
		// no user location; catalog order
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// ByID returns the doctor with id; ok is false when absent.
func (q *Doctors) ByID(id string) (models.Doctor, bool) {
	if id == "" {
		return models.Doctor{}, false
	}
	return q.catalog.Doctor(id)
}

// Reviews returns the reviews of a doctor, never nil.
func (q *Doctors) Reviews(id string) []models.Review {
	reviews := q.catalog.Reviews(id)
	if reviews == nil {
		return []models.Review{}
	}
	return reviews
}
