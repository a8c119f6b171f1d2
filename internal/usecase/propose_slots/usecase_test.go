package propose_slots

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	saturated []time.Time
	err       error
	capacity  int
}

func (f *fakeRepo) ListSaturatedSlots(_ context.Context, from, to time.Time, capacity int) ([]time.Time, error) {
	f.capacity = capacity
	out := make([]time.Time, 0)
	for _, s := range f.saturated {
		if !s.Before(from) && s.Before(to) {
			out = append(out, s)
		}
	}
	return out, f.err
}

// понедельник 19.10.2026 15:30
var monday = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func newUseCase(repo AppointmentRepository) *UseCase {
	uc := NewUseCase(repo, domain.DefaultSlotWindow(), time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: monday}
	return uc
}

func TestCandidateDays_SkipsSundayAndToday(t *testing.T) {
	// суббота: следующий день воскресенье должен быть пропущен
	saturday := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

	days := slices.Collect(CandidateDays(saturday, 5, time.Sunday))

	require.Len(t, days, 5)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC), days[4])
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.True(t, d.After(domain.StartOfDay(saturday)))
	}
}

func TestCandidateDays_PropertyOverManyStarts(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		now := start.AddDate(0, 0, i)
		count := 0
		for d := range CandidateDays(now, 5, time.Sunday) {
			count++
			assert.NotEqual(t, time.Sunday, d.Weekday())
			assert.False(t, d.Before(domain.StartOfDay(now).AddDate(0, 0, 1)))
		}
		assert.Equal(t, 5, count)
	}
}

func TestCandidateDays_Restartable(t *testing.T) {
	seq := CandidateDays(monday, 3, time.Sunday)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// ранний выход из цикла
	for range seq {
		break
	}
}

func TestUseCase_Days(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	days := slices.Collect(uc.Days())

	require.Len(t, days, 5)
	// вторник, среда, четверг, пятница, суббота
	assert.Equal(t, time.Tuesday, days[0].Weekday())
	assert.Equal(t, time.Saturday, days[4].Weekday())
}

func TestUseCase_Hours_ExcludesSaturated(t *testing.T) {
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{saturated: []time.Time{
		tuesday.Add(9 * time.Hour),
		tuesday.Add(14 * time.Hour),
		tuesday.AddDate(0, 0, 1).Add(10 * time.Hour),
	}}
	uc := newUseCase(repo)

	hours, err := uc.Hours(context.Background(), tuesday)

	require.NoError(t, err)
	assert.Len(t, hours, 8)
	assert.Equal(t, 10, hours[0].Hour())
	assert.Equal(t, 18, hours[len(hours)-1].Hour())
	for _, h := range hours {
		assert.NotEqual(t, 14, h.Hour())
	}
	assert.Equal(t, 3, repo.capacity)
}

func TestUseCase_Hours_Rejections(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	_, err := uc.Hours(context.Background(), monday)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Hours(context.Background(), monday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDate)

	sunday := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	_, err = uc.Hours(context.Background(), sunday)
	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestUseCase_Hours_RepoError(t *testing.T) {
	uc := newUseCase(&fakeRepo{err: errors.New("db down")})

	_, err := uc.Hours(context.Background(), time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInternal)
}
