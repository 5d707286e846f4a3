package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks the physical progress of an order's delivery trip.
// It is a secondary sub-state independent of the order's lifecycle status:
// it only advances when the order enters TripPlanned, InTransit, or Delivered.
type TripStatus string

const (
	// TripNone means no trip has been planned for the order yet.
	TripNone TripStatus = ""

	// TripPlannedStatus means a trip has been planned and a trip ID assigned.
	TripPlannedStatus TripStatus = "PLANNED"

	// TripInTransit means the trip is underway.
	TripInTransit TripStatus = "IN_TRANSIT"

	// TripCompleted means the trip finished and the order was delivered.
	TripCompleted TripStatus = "COMPLETED"
)

// tripIDSuffixLength is the number of random hex characters appended to a trip ID.
const tripIDSuffixLength = 8

// newTripID generates an opaque trip identifier of the form
// TRIP-YYYYMMDD-XXXXXXXX, where the suffix is drawn from a v4 UUID.
// Unique in practice; uniqueness is not cryptographically enforced.
func newTripID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:tripIDSuffixLength])
	return fmt.Sprintf("TRIP-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
