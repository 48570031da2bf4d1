// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package gpsutil

const (
	Re       = 6378137.0          // Earth's radius, WGS84 semi-major axis [m]
	C        = 299792458.0        // Speed of light [m/s]
	GpsPi    = 3.1415926535898    // Pi as defined by the GPS interface specification
	Ecc      = 8.1819190842622e-2 // Eccentricity of the reference ellipsoid
	HalfWeek = 302400             // Half a GPS week [s]
	WeekSec  = 2 * HalfWeek       // One GPS week [s]
)
