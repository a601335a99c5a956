// This file declares Metadata, sentinel errors, and the header/marker
// vocabulary of the scenario format.
package scenario

import "errors"

// Sentinel errors for scenario parsing.
var (
	// ErrCapacityMissing indicates the mandatory VEHICLE CAPACITY header was
	// absent. Fatal for the file: no battery range, no coverage radius.
	ErrCapacityMissing = errors.New("scenario: VEHICLE CAPACITY not found")

	// ErrBadHeaderValue indicates a header field carried a non-numeric value.
	ErrBadHeaderValue = errors.New("scenario: malformed header value")

	// ErrBadEdgeLine indicates an edge line whose (u,v) endpoint marker
	// could not be parsed.
	ErrBadEdgeLine = errors.New("scenario: malformed edge line")
)

// Header keys and section markers of the text format.
const (
	KeyName             = "NAME"
	KeyVertices         = "NUMBER OF VERTICES"
	KeyCapacity         = "VEHICLE CAPACITY"
	KeyRequiredCount    = "NUMBER OF REQUIRED_EDGES:"
	KeyNonRequiredCount = "NUMBER OF NON_REQUIRED_EDGES:"
	KeyVehicles         = "NUMBER OF VEHICLES"
	KeyDepot            = "DEPOT:"

	MarkRequired    = "LIST_REQUIRED_EDGES:"
	MarkNonRequired = "LIST_NON_REQUIRED_EDGES:"
	MarkFailure     = "FAILURE_SCENARIO:"
)

// DefaultWeight substitutes for edge annotations without a recognizable
// weight or cost token.
const DefaultWeight = 1.0

// Metadata carries the non-graph content of a scenario file.
type Metadata struct {
	// Name is the instance label from the NAME header, if present.
	Name string

	// Capacity is the battery capacity in travel-time units. Mandatory.
	Capacity float64

	// Depots lists depot vertex ids in file order. May be empty.
	Depots []int

	// VehicleCount is derived from Depots via VehicleCountFor.
	VehicleCount int

	// Failure holds the FAILURE_SCENARIO block lines verbatim. The block is
	// recognized so its lines are not mistaken for edges, but its contents
	// are not interpreted here.
	Failure []string
}

// VehicleCountFor converts a depot count into a vehicle count. A single
// depot still needs two vehicle tours for failure-scenario feasibility, so
// one depot forces two vehicles; otherwise the counts match.
func VehicleCountFor(depotCount int) int {
	if depotCount == 1 {
		return 2
	}

	return depotCount
}
