// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package gpsutil

import (
	"cmp"
	"math"

	"golang.org/x/exp/slices"
)

// Distance between two points on a sphere of radius Re [m]
// - Coordinates are in degrees
// - Haversine formula
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = ToRad(lat1)
	lat2 = ToRad(lat2)
	dLat := lat2 - lat1
	dLon := ToRad(lon2) - ToRad(lon1)

	a := SQ(math.Sin(0.5*dLat)) + SQ(math.Sin(0.5*dLon))*math.Cos(lat1)*math.Cos(lat2)
	a = clamp(a, 0, 1) // Rounding can push a out of range near identical or antipodal points
	c := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1.0-a))
	return Re * c
}

// Initial bearing from point 1 to point 2 [deg], in range [0, 360)
// - Coordinates are in degrees
// - Bearing from a point to itself is 0
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = ToRad(lat1)
	lat2 = ToRad(lat2)
	dLon := ToRad(lon2) - ToRad(lon1)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brg := ToDeg(math.Atan2(y, x))
	if brg < 0 {
		brg += 360.0
	}
	if brg >= 360.0 { // -tiny + 360 rounds up
		brg = 0
	}
	return brg
}

func (llh PosLLH) DistanceTo(to PosLLH) float64 {
	return Distance(llh.Lat, llh.Lon, to.Lat, to.Lon)
}

func (llh PosLLH) BearingTo(to PosLLH) float64 {
	return Bearing(llh.Lat, llh.Lon, to.Lat, to.Lon)
}

// Total length of a track along great circles [m]
func TrackLength(track []PosLLH) float64 {
	d := 0.0
	for i := 1; i < len(track); i++ {
		d += track[i-1].DistanceTo(track[i])
	}
	return d
}

// Sort points by distance from the origin, nearest first
// - The input slice is not modified
// - Points at equal distance keep their order
func SortByDistance(origin PosLLH, pts []PosLLH) []PosLLH {
	s := slices.Clone(pts)
	slices.SortStableFunc(s, func(a, b PosLLH) int {
		return cmp.Compare(origin.DistanceTo(a), origin.DistanceTo(b))
	})
	return s
}
