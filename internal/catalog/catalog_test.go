package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telehealth-server/internal/models"
)

func TestNewShape(t *testing.T) {
	c := New(7, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	doctors := c.Doctors()
	require.Len(t, doctors, 50)

	for i, d := range doctors {
		assert.Equal(t, models.Specialties[i%3], d.Specialty, d.ID)
		assert.NotEmpty(t, d.Hospital)
		assert.NotContains(t, d.Hospital, ",")
		assert.GreaterOrEqual(t, d.Rating, 3.5)
		assert.LessOrEqual(t, d.Rating, 5.0)
		assert.GreaterOrEqual(t, d.ConsultationFee, 100)
		assert.Less(t, d.ConsultationFee, 250)
		assert.Equal(t, "English", d.Languages[0])
		assert.GreaterOrEqual(t, len(d.Education), 2)
		assert.Len(t, d.Availability, len(models.Weekdays))
		for _, slots := range d.Availability {
			assert.LessOrEqual(t, len(slots), 5)
		}
		assert.NotEmpty(t, c.Reviews(d.ID), d.ID)
	}

	d2, ok := c.Doctor("d2")
	require.True(t, ok)
	assert.Equal(t, models.SpecialtyPsychiatrist, d2.Specialty)
	assert.Equal(t, "Makena Kimani", d2.Name)
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := New(99, now)
	b := New(99, now)
	assert.Equal(t, a.Doctors(), b.Doctors())
	assert.Equal(t, a.Reviews("d20"), b.Reviews("d20"))
}

func TestCuratedReviewsKept(t *testing.T) {
	c := New(1, time.Now())
	reviews := c.Reviews("d3")
	require.Len(t, reviews, 3)
	assert.Equal(t, "r6", reviews[0].ID)
	assert.Nil(t, c.Reviews("unknown"))

	_, ok := c.Doctor("d51")
	assert.False(t, ok)
}
