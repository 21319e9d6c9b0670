package programs

import (
	"testing"
	"time"

	"api/schemas"

	"github.com/stretchr/testify/assert"
)

func enrollmentStartedDaysAgo(days int) schemas.Enrollment {
	return schemas.Enrollment{
		StartDate:  time.Now().Add(-time.Duration(days) * 24 * time.Hour),
		CurrentDay: 1,
		Status:     schemas.ENROLLMENT_STATUS_ACTIVE,
	}
}

func TestAdvanceEnrollmentDay(t *testing.T) {
	now := time.Now()

	t.Run("avança conforme os dias corridos", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(3)
		day, status := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, 4, day)
		assert.Equal(t, schemas.ENROLLMENT_STATUS_ACTIVE, status)
	})

	t.Run("começa no dia um", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(0)
		day, status := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, 1, day)
		assert.Equal(t, schemas.ENROLLMENT_STATUS_ACTIVE, status)
	})

	t.Run("nunca passa do tamanho do programa", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(90)
		day, status := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, 30, day)
		assert.Equal(t, schemas.ENROLLMENT_STATUS_COMPLETED, status)
	})

	t.Run("pausada não anda", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(10)
		enrollment.Paused = true
		enrollment.Status = schemas.ENROLLMENT_STATUS_PAUSED
		enrollment.CurrentDay = 5

		day, status := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, 5, day)
		assert.Equal(t, schemas.ENROLLMENT_STATUS_PAUSED, status)
	})

	t.Run("nunca volta", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(2)
		enrollment.CurrentDay = 10

		day, _ := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, 10, day)
	})

	t.Run("idempotente dentro do mesmo dia", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(7)

		day1, status1 := AdvanceEnrollmentDay(enrollment, 30, now)
		enrollment.CurrentDay = day1
		enrollment.Status = status1

		day2, status2 := AdvanceEnrollmentDay(enrollment, 30, now)
		assert.Equal(t, day1, day2)
		assert.Equal(t, status1, status2)
	})

	t.Run("programa sem duração não mexe em nada", func(t *testing.T) {
		enrollment := enrollmentStartedDaysAgo(5)
		enrollment.CurrentDay = 2

		day, status := AdvanceEnrollmentDay(enrollment, 0, now)
		assert.Equal(t, 2, day)
		assert.Equal(t, schemas.ENROLLMENT_STATUS_ACTIVE, status)
	})
}
