package gpsutil

import (
	"fmt"
)

func ExampleDistance() {
	fmt.Printf("%.2f m, %.1f deg\n", Distance(0, 0, 0, 1), Bearing(0, 0, 0, 1))
	// Output:
	// 111319.49 m, 90.0 deg
}

func ExamplePosLLH_String() {
	fmt.Println(PosLLH{Lat: 35.5, Lon: 139.25, Hei: 12.5})
	// Output:
	// (35.500000, 139.250000, 12.500000)
}

func ExampleCorrectWeeklyTime() {
	fmt.Println(CorrectWeeklyTime(302401), CorrectWeeklyTime(-302401), CorrectWeeklyTime(302400))
	// Output:
	// -302399 302399 302400
}
