package geodata

import "github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"

// Built-in campus reference data, used whenever the corresponding database
// table is empty. Values surveyed from campus infrastructure records and
// nighttime imagery.

// DefaultEstimates is the location-keyed luminance fallback table.
func DefaultEstimates() []EstimateZone {
	return []EstimateZone{
		// Core campus: well lit
		{Lat: 38.9404, Lon: -92.3277, RadiusMiles: 0.05, Value: 6.2}, // Memorial Union
		{Lat: 38.9445, Lon: -92.3263, RadiusMiles: 0.05, Value: 5.8}, // Ellis Library
		{Lat: 38.9423, Lon: -92.3268, RadiusMiles: 0.05, Value: 5.5}, // Student Center
		{Lat: 38.9441, Lon: -92.3269, RadiusMiles: 0.05, Value: 4.8}, // Jesse Hall
		{Lat: 38.9438, Lon: -92.3256, RadiusMiles: 0.05, Value: 4.5}, // Engineering
		// Rec & athletics: moderate
		{Lat: 38.9389, Lon: -92.3301, RadiusMiles: 0.05, Value: 3.2}, // Rec Center
		{Lat: 38.9356, Lon: -92.3332, RadiusMiles: 0.06, Value: 4.1}, // Arena
		{Lat: 38.9355, Lon: -92.3306, RadiusMiles: 0.06, Value: 2.8}, // Stadium
		// Residential & social: variable
		{Lat: 38.9395, Lon: -92.3320, RadiusMiles: 0.06, Value: 2.1}, // Greek Town
		{Lat: 38.9430, Lon: -92.3275, RadiusMiles: 0.04, Value: 3.8}, // Tiger Plaza
		{Lat: 38.9415, Lon: -92.3280, RadiusMiles: 0.04, Value: 3.1}, // Hitt Street
		// Parking: poorly lit
		{Lat: 38.9450, Lon: -92.3240, RadiusMiles: 0.06, Value: 1.4}, // Lot A1
		{Lat: 38.9380, Lon: -92.3350, RadiusMiles: 0.06, Value: 0.9}, // Lot C2
		// Perimeter: dark
		{Lat: 38.9380, Lon: -92.3250, RadiusMiles: 0.05, Value: 1.8}, // Conley Ave
		{Lat: 38.9360, Lon: -92.3270, RadiusMiles: 0.05, Value: 1.2}, // South Path
		{Lat: 38.9465, Lon: -92.3270, RadiusMiles: 0.05, Value: 2.3}, // North Campus
		{Lat: 38.9420, Lon: -92.3220, RadiusMiles: 0.06, Value: 1.6}, // East Entrance
		{Lat: 38.9410, Lon: -92.3340, RadiusMiles: 0.06, Value: 0.8}, // West Connector
	}
}

// DefaultInfrastructure is the static campus pole / call box / corridor map.
func DefaultInfrastructure() *InfrastructureTable {
	return &InfrastructureTable{
		Poles: []spatial.Point{
			{Name: "Light - Memorial Union North", Lat: 38.9408, Lon: -92.3280},
			{Name: "Light - Memorial Union South", Lat: 38.9400, Lon: -92.3275},
			{Name: "Light - Ellis Library East", Lat: 38.9443, Lon: -92.3258},
			{Name: "Light - Student Center", Lat: 38.9420, Lon: -92.3265},
			{Name: "Light - Rec Center Path", Lat: 38.9392, Lon: -92.3298},
			{Name: "Light - Engineering Quad", Lat: 38.9440, Lon: -92.3252},
			{Name: "Light - Conley Ave", Lat: 38.9382, Lon: -92.3252},
			{Name: "Light - Greek Town Main", Lat: 38.9398, Lon: -92.3318},
			{Name: "Light - Parking Garage A", Lat: 38.9452, Lon: -92.3242},
			{Name: "Light - Virginia Ave", Lat: 38.9455, Lon: -92.3260},
			{Name: "Light - Hitt St North", Lat: 38.9418, Lon: -92.3282},
			{Name: "Light - Tiger Plaza", Lat: 38.9432, Lon: -92.3273},
		},
		CallBoxes: []spatial.Point{
			{Name: "Call Box - Memorial Union", Lat: 38.9404, Lon: -92.3277},
			{Name: "Call Box - Ellis Library", Lat: 38.9445, Lon: -92.3263},
			{Name: "Call Box - Rec Center", Lat: 38.9389, Lon: -92.3301},
			{Name: "Call Box - Parking Garage A", Lat: 38.9450, Lon: -92.3240},
			{Name: "Call Box - Student Center", Lat: 38.9423, Lon: -92.3268},
			{Name: "Call Box - Engineering", Lat: 38.9438, Lon: -92.3256},
			{Name: "Call Box - Conley Ave", Lat: 38.9380, Lon: -92.3250},
			{Name: "Call Box - Hitt St", Lat: 38.9415, Lon: -92.3280},
			{Name: "Call Box - Virginia Ave", Lat: 38.9456, Lon: -92.3264},
			{Name: "Call Box - Greek Town", Lat: 38.9395, Lon: -92.3320},
		},
		Corridors: []spatial.Point{
			{Name: "Memorial Union to Jesse Hall", Lat: 38.9422, Lon: -92.3273},
			{Name: "Student Center to Rec Center", Lat: 38.9406, Lon: -92.3284},
			{Name: "Engineering Quad", Lat: 38.9439, Lon: -92.3255},
			{Name: "Greek Town Main Strip", Lat: 38.9397, Lon: -92.3322},
		},
	}
}
