package model

// Coordinates is a device-reported geographic position. Produced once per
// session by the client and passed to every location-dependent lookup.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
