package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorkingHoursWithTimes(t *testing.T) {
	from := "09:00"
	to := "18:00"

	hours := GenerateWorkingHours(&from, &to)
	require.Len(t, hours, 7)

	// Пн-Пт рабочие с временем из контактов
	for day := 0; day <= 4; day++ {
		wh := hours[day]
		assert.Equal(t, day, wh.DayOfWeek)
		assert.True(t, wh.IsActive, "day %d must be active", day)
		require.NotNil(t, wh.StartTime)
		require.NotNil(t, wh.EndTime)
		assert.Equal(t, "09:00", *wh.StartTime)
		assert.Equal(t, "18:00", *wh.EndTime)
	}

	// Сб-Вс выходные без времени
	for day := 5; day <= 6; day++ {
		wh := hours[day]
		assert.Equal(t, day, wh.DayOfWeek)
		assert.False(t, wh.IsActive, "day %d must be inactive", day)
		assert.Nil(t, wh.StartTime)
		assert.Nil(t, wh.EndTime)
	}
}

func TestGenerateWorkingHoursWithoutTimes(t *testing.T) {
	from := "09:00"

	for _, hours := range [][]WorkingHour{
		GenerateWorkingHours(nil, nil),
		GenerateWorkingHours(&from, nil),
		GenerateWorkingHours(nil, &from),
	} {
		require.Len(t, hours, 7)
		for day, wh := range hours {
			assert.Equal(t, day, wh.DayOfWeek)
			assert.False(t, wh.IsActive)
			assert.Nil(t, wh.StartTime)
			assert.Nil(t, wh.EndTime)
		}
	}
}
