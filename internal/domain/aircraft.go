package domain

// AircraftStatus tracks fleet availability.
type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "ACTIVE"
	AircraftStatusMaintenance AircraftStatus = "MAINTENANCE"
	AircraftStatusRetired     AircraftStatus = "RETIRED"
)

// Aircraft is a fleet unit referenced by flights.
type Aircraft struct {
	ID              string
	Model           string
	Capacity        int
	Airline         string
	ManufactureYear int
	Status          AircraftStatus
}
