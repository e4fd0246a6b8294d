package query

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telehealth-server/internal/catalog"
	"telehealth-server/internal/models"
)

func fixtureDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "d1", Name: "Amara Okafor", Specialty: models.SpecialtyGynecologist, Hospital: "Kenyatta National Hospital",
			Rating: 4.1, ConsultationFee: 120, Education: []string{"M.D., Nairobi University, 2004"}, Experience: 12,
			Availability: map[string][]string{"Monday": {"9:00 AM"}, "Tuesday": {}},
			Location:     models.Location{Address: "101 Ngong Road, Nairobi, Kenya"}},
		{ID: "d2", Name: "Makena Kimani", Specialty: models.SpecialtyPsychiatrist, Hospital: "Aga Khan University Hospital",
			Rating: 4.8, ConsultationFee: 200, Availability: map[string][]string{"Monday": {}},
			Location: models.Location{Address: "202 Moi Avenue, Nairobi, Kenya"}},
		{ID: "d3", Name: "Eshe Githinji", Specialty: models.SpecialtyTherapist, Hospital: "Mayo Clinic",
			Rating: 4.8, ConsultationFee: 150, Availability: map[string][]string{"Monday": {"10:00 AM"}},
			Location: models.Location{Address: "303 Main Street, Rochester, USA"}},
	}
}

func newFixture() *Doctors {
	return NewDoctors(catalog.FromData(fixtureDoctors(), map[string][]models.Review{
		"d1": {{ID: "r1", Rating: 5}},
	}))
}

func ids(doctors []models.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	q := newFixture()

	tests := []struct {
		name      string
		specialty models.Specialty
		search    string
		want      []string
	}{
		{"all empty", models.SpecialtyAll, "", []string{"d1", "d2", "d3"}},
		{"single space matches names", models.SpecialtyAll, " ", []string{"d1", "d2", "d3"}},
		{"blank query is not trimmed", models.SpecialtyAll, "   ", []string{}},
		{"trailing space is significant", models.SpecialtyAll, "okafor ", []string{}},
		{"inner space", models.SpecialtyAll, "amara okafor", []string{"d1"}},
		{"specialty only", models.SpecialtyTherapist, "", []string{"d3"}},
		{"name case-insensitive", models.SpecialtyAll, "oKaFoR", []string{"d1"}},
		{"hospital", models.SpecialtyAll, "aga khan", []string{"d2"}},
		{"address", models.SpecialtyAll, "nairobi", []string{"d1", "d2"}},
		{"specialty text", models.SpecialtyAll, "psych", []string{"d2"}},
		{"specialty and query", models.SpecialtyGynecologist, "nairobi", []string{"d1"}},
		{"no match", models.SpecialtyAll, "cardiology", []string{}},
		{"unknown specialty", models.Specialty("dentist"), "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(q.Filter(tt.specialty, tt.search)))
		})
	}
}

func TestFilterResultsSatisfyPredicates(t *testing.T) {
	q := NewDoctors(catalog.New(3, time.Now()))
	specialties := append([]models.Specialty{models.SpecialtyAll}, models.Specialties...)
	queries := []string{"", "a", "Nairobi", "CLINIC", "hospital", "zz", "kenya", "dr"}

	all := map[string]bool{}
	for _, d := range q.Filter(models.SpecialtyAll, "") {
		all[d.ID] = true
	}

	for _, sp := range specialties {
		for _, qs := range queries {
			for _, d := range q.Filter(sp, qs) {
				require.True(t, all[d.ID])
				if sp != models.SpecialtyAll {
					require.Equal(t, sp, d.Specialty)
				}
				if qs != "" {
					require.True(t, matchesSearch(d, strings.ToLower(qs)), "%s does not match %q", d.ID, qs)
				}
			}
		}
	}
}

func TestSearch(t *testing.T) {
	q := newFixture()

	assert.Equal(t, []string{"d2", "d3", "d1"}, ids(q.Search(SearchOptions{})), "rating desc, stable")
	assert.Equal(t, []string{"d1", "d3", "d2"}, ids(q.Search(SearchOptions{Sort: SortPriceLow})))
	assert.Equal(t, []string{"d2", "d3", "d1"}, ids(q.Search(SearchOptions{Sort: SortPriceHigh})))
	assert.Equal(t, []string{"d1", "d2", "d3"}, ids(q.Search(SearchOptions{Sort: SortDistance})))
	assert.Equal(t, []string{"d3", "d1"}, ids(q.Search(SearchOptions{MaxFee: 150})))
	assert.Equal(t, []string{"d2"}, ids(q.Search(SearchOptions{MinFee: 160})))
	assert.Equal(t, []string{"d3", "d1"}, ids(q.Search(SearchOptions{AvailableOn: "Monday"})))
}

func TestByIDIsTotalAndIdempotent(t *testing.T) {
	q := newFixture()

	a, ok := q.ByID("d2")
	require.True(t, ok)
	b, ok := q.ByID("d2")
	require.True(t, ok)
	assert.Equal(t, a, b)

	for _, id := range []string{"", "d99", "D2", "../d1"} {
		_, ok := q.ByID(id)
		assert.False(t, ok, id)
	}
}

func TestReviewsNeverNil(t *testing.T) {
	q := newFixture()
	assert.Len(t, q.Reviews("d1"), 1)
	assert.NotNil(t, q.Reviews("d2"))
	assert.Empty(t, q.Reviews("nope"))
}
