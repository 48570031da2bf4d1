// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package gpsutil

import (
	"math"
	"time"
)

// Correct a time-of-week difference [s] for the beginning or end of week crossover
// - Only a single week wraparound is corrected
// - Result is in [-HalfWeek, HalfWeek] for inputs within 1.5 weeks
func CorrectWeeklyTime(t float64) float64 {
	if t > HalfWeek {
		return t - WeekSec
	} else if t < -HalfWeek {
		return t + WeekSec
	}
	return t
}

// GPS time as week number and seconds of week
type GTime struct {
	Week int
	Sec  float64
}

var gpsEpoch = time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC) // GPS time starts from 1980/1/6 00:00:00

func NewGTime(dt time.Time) *GTime {
	t := dt.Unix() - gpsEpoch.Unix() // Elapsed seconds since the GPS epoch
	return &GTime{
		Week: int(t / WeekSec),
		Sec:  float64(t%WeekSec) + float64(dt.Nanosecond())/1e9,
	}
}

func (p GTime) ToTime() time.Time {
	d := time.Duration(p.Week)*WeekSec*time.Second + time.Duration(math.Round(p.Sec*1e9))
	return gpsEpoch.Add(d)
}

// Advance by sec seconds, keeping Sec in [0, WeekSec)
func (p GTime) Add(sec float64) GTime {
	s := p.Sec + sec
	w := math.Floor(s / WeekSec)
	return GTime{Week: p.Week + int(w), Sec: s - w*WeekSec}
}

// Elapsed seconds from b to p
func (p GTime) Sub(b GTime) float64 {
	return float64(p.Week-b.Week)*WeekSec + (p.Sec - b.Sec)
}

// Difference of the seconds of week only, corrected for week crossover.
// Used when the week number of one side is unknown, as with ephemeris toe.
func (p GTime) TowDiff(b GTime) float64 {
	return CorrectWeeklyTime(p.Sec - b.Sec)
}
