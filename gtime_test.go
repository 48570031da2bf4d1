package gpsutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCorrectWeeklyTime(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"upper boundary inclusive", 302400, 302400},
		{"lower boundary inclusive", -302400, -302400},
		{"just over half week", 302401, -302399},
		{"just under minus half week", -302401, 302399},
		{"fraction over", 302400.5, -302399.5},
		{"full week", 604800, 0},
		{"week and a half", 907200, 302400},
		{"inside range", -1234.5, -1234.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectWeeklyTime(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CorrectWeeklyTime(got))
		})
	}
}

func TestCorrectWeeklyTime_SingleWrap(t *testing.T) {
	// More than 1.5 weeks is only corrected once
	assert.Equal(t, 907201.0-604800, CorrectWeeklyTime(907201))
}

func TestNewGTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want GTime
	}{
		{"epoch", time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC), GTime{Week: 0, Sec: 0}},
		{"week 2296", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), GTime{Week: 2296, Sec: 0}},
		{"mid week", time.Date(2024, 1, 9, 1, 2, 3, 500000000, time.UTC), GTime{Week: 2296, Sec: 2*86400 + 3723.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGTime(tt.in)
			assert.Equal(t, tt.want, *got)
			assert.True(t, tt.in.Equal(got.ToTime()), "%v != %v", tt.in, got.ToTime())
			assert.Equal(t, time.UTC, got.ToTime().Location())
		})
	}
}

func TestGTime_Add(t *testing.T) {
	assert.Equal(t, GTime{Week: 101, Sec: 400}, GTime{Week: 100, Sec: 604000}.Add(1200))
	assert.Equal(t, GTime{Week: 99, Sec: 604300}, GTime{Week: 100, Sec: 500}.Add(-1000))
	assert.Equal(t, GTime{Week: 100, Sec: 1500}, GTime{Week: 100, Sec: 500}.Add(1000))
}

func TestGTime_SubAndTowDiff(t *testing.T) {
	a := GTime{Week: 101, Sec: 100}
	b := GTime{Week: 100, Sec: 604700}
	assert.Equal(t, 200.0, a.Sub(b))
	assert.Equal(t, -200.0, b.Sub(a))
	assert.Equal(t, 200.0, a.TowDiff(b))
	assert.Equal(t, -200.0, b.TowDiff(a))

	c := GTime{Week: 101, Sec: 7200}
	assert.Equal(t, 7100.0, c.TowDiff(a))
}
