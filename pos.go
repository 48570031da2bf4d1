// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package gpsutil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//-------------------------------------------------------------------
// PosLLH
//-------------------------------------------------------------------

// Geodetic position. Lat and Lon are in degrees, Hei in meters.
type PosLLH struct {
	Lat float64
	Lon float64
	Hei float64
}

func NewPosLLH(lat, lon, hei float64) *PosLLH {
	return &PosLLH{
		Lat: lat,
		Lon: lon,
		Hei: hei,
	}
}

// Forward conversion on the same ellipsoid used by PosXYZ.ToLLH
func (llh PosLLH) ToXYZ() PosXYZ {
	a := Re
	e := Ecc
	lat := gpsRad(llh.Lat)
	lon := gpsRad(llh.Lon)

	n := a / math.Sqrt(1-e*e*SQ(math.Sin(lat))) // Radius of curvature in the prime vertical
	return PosXYZ{
		X: (n + llh.Hei) * math.Cos(lat) * math.Cos(lon),
		Y: (n + llh.Hei) * math.Cos(lat) * math.Sin(lon),
		Z: (n*(1-e*e) + llh.Hei) * math.Sin(lat),
	}
}

// Convert to string
func (llh PosLLH) String() string {
	return fmt.Sprintf("(%f, %f, %f)", llh.Lat, llh.Lon, llh.Hei)
}

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

// ECEF position [m]
type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

func NewPosXYZ(x, y, z float64) *PosXYZ {
	return &PosXYZ{
		X: x,
		Y: y,
		Z: z,
	}
}

func (pos PosXYZ) vec() r3.Vec {
	return r3.Vec{X: pos.X, Y: pos.Y, Z: pos.Z}
}

func fromVec(v r3.Vec) PosXYZ {
	return PosXYZ{X: v.X, Y: v.Y, Z: v.Z}
}

func (pos PosXYZ) Add(v PosXYZ) PosXYZ {
	return fromVec(r3.Add(pos.vec(), v.vec()))
}

func (pos PosXYZ) Sub(v PosXYZ) PosXYZ {
	return fromVec(r3.Sub(pos.vec(), v.vec()))
}

func (pos PosXYZ) Scale(k float64) PosXYZ {
	return fromVec(r3.Scale(k, pos.vec()))
}

// Component-wise division. Division by zero follows IEEE-754 (Inf or NaN).
func (pos PosXYZ) Div(k float64) PosXYZ {
	return PosXYZ{
		X: pos.X / k,
		Y: pos.Y / k,
		Z: pos.Z / k,
	}
}

// Euclidean distance [m]
func (pos PosXYZ) Distance(v PosXYZ) float64 {
	return r3.Norm(r3.Sub(pos.vec(), v.vec()))
}

// Mean position. Empty input gives NaN components.
func Centroid(ps ...PosXYZ) PosXYZ {
	var sum PosXYZ
	for _, p := range ps {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(ps)))
}

// Convert to latitude [deg], longitude [deg] and height [m]
// - Closed form (Bowring), no iteration
func (pos PosXYZ) ToLLH() PosLLH {
	// Ellipsoid parameters
	a := Re                             // Semi-major axis
	e := Ecc                            // Eccentricity
	b := math.Sqrt(SQ(a) * (1 - SQ(e))) // Semi-minor axis

	// In case of origin
	if pos.X == 0 && pos.Y == 0 && pos.Z == 0 {
		return PosLLH{Lat: 0, Lon: 0, Hei: -Re}
	}
	// On the rotation axis, longitude is undefined and cos(lat) is zero
	if pos.X == 0 && pos.Y == 0 {
		return PosLLH{Lat: math.Copysign(90, pos.Z), Lon: 0, Hei: math.Abs(pos.Z) - b}
	}

	// Parameters for coordinate transformation
	ep := math.Sqrt((SQ(a) - SQ(b)) / SQ(b)) // Second eccentricity
	p := math.Sqrt(SQ(pos.X) + SQ(pos.Y))
	th := math.Atan2(a*pos.Z, b*p)

	// Conversion to latitude and longitude
	lon := math.Atan2(pos.Y, pos.X)
	lat := math.Atan2(pos.Z+ep*ep*b*CB(math.Sin(th)), p-e*e*a*CB(math.Cos(th)))
	n := a / math.Sqrt(1-e*e*SQ(math.Sin(lat))) // Radius of curvature in the prime vertical
	hei := p/math.Cos(lat) - n
	return PosLLH{Lat: gpsDeg(lat), Lon: gpsDeg(lon), Hei: hei}
}

// Rotation from ECEF to local ENU at the given latitude and longitude [rad]
func enuRot(lat, lon float64) *mat.Dense {
	s1 := math.Sin(lon)
	c1 := math.Cos(lon)
	s2 := math.Sin(lat)
	c2 := math.Cos(lat)
	return mat.NewDense(3, 3, []float64{
		-s1, c1, 0,
		-c1 * s2, -s1 * s2, c2,
		c1 * c2, s1 * c2, s2,
	})
}

func (pos PosXYZ) ToENU(base PosXYZ) PosENU {
	// Relative position from the reference location
	d := pos.Sub(base)

	// Rotate the relative position to convert to ENU coordinates
	llh := base.ToLLH()
	var v mat.VecDense
	v.MulVec(enuRot(gpsRad(llh.Lat), gpsRad(llh.Lon)), mat.NewVecDense(3, []float64{d.X, d.Y, d.Z}))
	return PosENU{E: v.AtVec(0), N: v.AtVec(1), U: v.AtVec(2)}
}

// Elevation angle of sat seen from usr [rad]
func (usr PosXYZ) Elevation(sat PosXYZ) float64 {
	return sat.ToENU(usr).Elevation()
}

// Azimuth of sat seen from usr [rad]
func (usr PosXYZ) Azimuth(sat PosXYZ) float64 {
	return sat.ToENU(usr).Azimuth()
}

//-------------------------------------------------------------------
// PosENU
//-------------------------------------------------------------------

type PosENU struct {
	E float64
	N float64
	U float64
}

func (enu PosENU) ToXYZ(base PosXYZ) PosXYZ {
	// Inverse rotation is the transpose
	llh := base.ToLLH()
	var v mat.VecDense
	v.MulVec(enuRot(gpsRad(llh.Lat), gpsRad(llh.Lon)).T(), mat.NewVecDense(3, []float64{enu.E, enu.N, enu.U}))

	// Add to the reference location
	return base.Add(PosXYZ{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)})
}

// Angle above the local horizon [rad]
func (enu PosENU) Elevation() float64 {
	return math.Atan2(enu.U, math.Hypot(enu.E, enu.N))
}

// Clockwise from north [rad], in range (-pi, pi]
func (enu PosENU) Azimuth() float64 {
	return math.Atan2(enu.E, enu.N)
}
