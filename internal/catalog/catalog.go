// Package catalog generates the in-memory doctor and review catalog.
package catalog

import (
	"math/rand"
	"time"

	"telehealth-server/internal/models"
)

// Catalog is the immutable doctor and review data of one process.
type Catalog struct {
	doctors []models.Doctor
	byID    map[string]int
	reviews map[string][]models.Review
}

// New generates a catalog from seed. The same seed and day give the same
// catalog.
func New(seed int64, now time.Time) *Catalog {
	r := rand.New(rand.NewSource(seed))
	doctors := generateDoctors(r)
	return FromData(doctors, generateReviews(r, doctors, now))
}

// FromData builds a catalog from fixed records.
func FromData(doctors []models.Doctor, reviews map[string][]models.Review) *Catalog {
	c := &Catalog{
		doctors: doctors,
		byID:    make(map[string]int, len(doctors)),
		reviews: reviews,
	}
	for i, d := range doctors {
		c.byID[d.ID] = i
	}
	return c
}

// Doctors returns the catalog in generation order. Callers must not
// modify the returned records.
func (c *Catalog) Doctors() []models.Doctor {
	return c.doctors
}

// Doctor looks a doctor up by id.
func (c *Catalog) Doctor(id string) (models.Doctor, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Doctor{}, false
	}
	return c.doctors[i], true
}

// Reviews returns the reviews of a doctor, or nil.
func (c *Catalog) Reviews(doctorID string) []models.Review {
	return c.reviews[doctorID]
}
