package scan

import "github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"

// DefaultCampusLocations is the built-in candidate set, used when the
// candidate_locations table is empty. Named campus buildings, corridors, and
// parking areas eligible for hotspot selection.
func DefaultCampusLocations() []models.CandidateLocation {
	return []models.CandidateLocation{
		{ID: "memorial-union", Name: "Memorial Union", Lat: 38.9404, Lon: -92.3277, Zone: "core"},
		{ID: "jesse-hall", Name: "Jesse Hall", Lat: 38.9441, Lon: -92.3269, Zone: "core"},
		{ID: "ellis-library", Name: "Ellis Library", Lat: 38.9445, Lon: -92.3263, Zone: "core"},
		{ID: "engineering-building", Name: "Engineering Building", Lat: 38.9438, Lon: -92.3256, Zone: "core"},
		{ID: "trulaske-college", Name: "Trulaske College", Lat: 38.9398, Lon: -92.3271, Zone: "core"},
		{ID: "student-center", Name: "Student Center", Lat: 38.9423, Lon: -92.3268, Zone: "core"},
		{ID: "rec-center", Name: "Rec Center", Lat: 38.9389, Lon: -92.3301, Zone: "athletics"},
		{ID: "mizzou-arena", Name: "Mizzou Arena", Lat: 38.9356, Lon: -92.3332, Zone: "athletics"},
		{ID: "faurot-field", Name: "Faurot Field", Lat: 38.9355, Lon: -92.3306, Zone: "athletics"},
		{ID: "greek-town", Name: "Greek Town", Lat: 38.9395, Lon: -92.3320, Zone: "residential"},
		{ID: "tiger-plaza", Name: "Tiger Plaza", Lat: 38.9430, Lon: -92.3275, Zone: "core"},
		{ID: "hitt-street-corridor", Name: "Hitt Street Corridor", Lat: 38.9415, Lon: -92.3280, Zone: "corridor"},
		{ID: "conley-ave-corridor", Name: "Conley Ave Corridor", Lat: 38.9380, Lon: -92.3250, Zone: "corridor"},
		{ID: "virginia-ave-corridor", Name: "Virginia Ave Corridor", Lat: 38.9456, Lon: -92.3264, Zone: "corridor"},
		{ID: "parking-lot-a1", Name: "Parking Lot A1", Lat: 38.9450, Lon: -92.3240, Zone: "parking"},
		{ID: "parking-lot-c2", Name: "Parking Lot C2", Lat: 38.9380, Lon: -92.3350, Zone: "parking"},
		{ID: "university-hospital", Name: "University Hospital", Lat: 38.9403, Lon: -92.3245, Zone: "medical"},
		{ID: "mupd-headquarters", Name: "MUPD Headquarters", Lat: 38.9456, Lon: -92.3264, Zone: "safety"},
		{ID: "north-campus-green", Name: "North Campus Green", Lat: 38.9465, Lon: -92.3270, Zone: "perimeter"},
		{ID: "south-campus-path", Name: "South Campus Path", Lat: 38.9360, Lon: -92.3270, Zone: "perimeter"},
		{ID: "east-campus-entrance", Name: "East Campus Entrance", Lat: 38.9420, Lon: -92.3220, Zone: "perimeter"},
		{ID: "west-campus-connector", Name: "West Campus Connector", Lat: 38.9410, Lon: -92.3340, Zone: "perimeter"},
	}
}
