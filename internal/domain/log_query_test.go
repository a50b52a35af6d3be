package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func exercise(username, desc, date string) Exercise {
	return Exercise{
		ID:          primitive.NewObjectID(),
		Username:    username,
		Description: desc,
		Duration:    10,
		Date:        day(date),
	}
}

func descriptions(records []Exercise) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Description
	}
	return out
}

func TestResolveDefaults(t *testing.T) {
	now := time.Date(2023, time.March, 5, 17, 45, 0, 0, time.UTC)

	w := LogFilter{}.Resolve(now, 0)

	assert.Equal(t, BeginningOfTime, w.From)
	assert.Equal(t, day("2023-03-05"), w.To)
	assert.Zero(t, w.Limit)
}

func TestResolveKeepsSuppliedValues(t *testing.T) {
	now := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)

	w := LogFilter{From: dayPtr("2023-01-01"), To: dayPtr("2023-01-31"), Limit: 3}.Resolve(now, 30)

	assert.Equal(t, day("2023-01-01"), w.From)
	assert.Equal(t, day("2023-01-31"), w.To)
	assert.Equal(t, 3, w.Limit)
}

func TestResolveLimitFallback(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 30, LogFilter{Limit: 0}.Resolve(now, 30).Limit)
	assert.Equal(t, 30, LogFilter{Limit: -4}.Resolve(now, 30).Limit)
	assert.Zero(t, LogFilter{Limit: -4}.Resolve(now, 0).Limit)
	assert.Zero(t, LogFilter{}.Resolve(now, -1).Limit)
}

func TestWindowContainsIsInclusive(t *testing.T) {
	w := LogWindow{From: day("2023-01-01"), To: day("2023-01-31")}

	assert.True(t, w.Contains(day("2023-01-01")))
	assert.True(t, w.Contains(day("2023-01-31")))
	assert.True(t, w.Contains(day("2023-01-31").Add(23*time.Hour)))
	assert.False(t, w.Contains(day("2022-12-31")))
	assert.False(t, w.Contains(day("2023-02-01")))
}

func TestSelectLogFiltersByUserAndWindow(t *testing.T) {
	records := []Exercise{
		exercise("alice", "run", "2023-01-10"),
		exercise("bob", "swim", "2023-01-11"),
		exercise("alice", "bike", "2023-02-01"),
		exercise("alice", "row", "2022-12-31"),
	}
	w := LogWindow{From: day("2023-01-01"), To: day("2023-01-31")}

	got := SelectLog(records, "alice", w)

	assert.Equal(t, []string{"run"}, descriptions(got))
}

func TestSelectLogOrdersMostRecentFirst(t *testing.T) {
	records := []Exercise{
		exercise("alice", "oldest", "2023-01-01"),
		exercise("alice", "newest", "2023-03-01"),
		exercise("alice", "middle-a", "2023-02-01"),
		exercise("alice", "middle-b", "2023-02-01"),
	}
	w := LogFilter{}.Resolve(day("2023-12-31"), 0)

	got := SelectLog(records, "alice", w)

	// same-day records: later-created first
	assert.Equal(t, []string{"newest", "middle-b", "middle-a", "oldest"}, descriptions(got))
}

func TestSelectLogLimitKeepsMostRecent(t *testing.T) {
	records := []Exercise{
		exercise("alice", "a", "2023-01-01"),
		exercise("alice", "b", "2023-01-02"),
		exercise("alice", "c", "2023-01-03"),
	}
	w := LogFilter{Limit: 2}.Resolve(day("2023-12-31"), 0)

	got := SelectLog(records, "alice", w)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"c", "b"}, descriptions(got))
}

func TestSelectLogNoLimitReturnsEverything(t *testing.T) {
	records := []Exercise{
		exercise("alice", "a", "1900-06-01"),
		exercise("alice", "b", "2023-01-02"),
	}
	w := LogFilter{}.Resolve(day("2023-12-31"), 0)

	assert.Len(t, SelectLog(records, "alice", w), 2)
}

func TestSelectLogDoesNotMutateInput(t *testing.T) {
	records := []Exercise{
		exercise("alice", "a", "2023-01-01"),
		exercise("alice", "b", "2023-01-02"),
	}
	SelectLog(records, "alice", LogFilter{}.Resolve(day("2023-12-31"), 0))

	assert.Equal(t, []string{"a", "b"}, descriptions(records))
}

func TestSelectLogEmpty(t *testing.T) {
	got := SelectLog(nil, "alice", LogFilter{}.Resolve(time.Now(), 0))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheckExerciseDate(t *testing.T) {
	assert.NoError(t, CheckExerciseDate(BeginningOfTime))
	assert.NoError(t, CheckExerciseDate(day("2023-01-10")))
	assert.ErrorIs(t, CheckExerciseDate(day("1799-12-31")), ErrDateOutOfRange)
	assert.ErrorIs(t, CheckExerciseDate(time.Time{}), ErrDateOutOfRange)
}

func TestEarliestStorableDayIsInDefaultWindow(t *testing.T) {
	w := LogFilter{}.Resolve(time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC), 0)
	assert.True(t, w.Contains(BeginningOfTime))
}
