package model

import (
	"fmt"

	"clearance/shared/failure"
)

var (
	ErrBookingNotFound   = failure.NotFound("booking not found")
	ErrJobNotFound       = failure.NotFound("job not found")
	ErrVehicleNotFound   = failure.NotFound("vehicle not found")
	ErrCargoItemNotFound = failure.NotFound("cargo item not found")

	ErrVersionConflict = failure.Conflict("booking was modified by another request")

	ErrInvalidBookingStatus       = failure.BadRequestFromString("invalid booking status")
	ErrInvalidJobStatus           = failure.BadRequestFromString("invalid job status")
	ErrInvalidJobTransition       = failure.BadRequestFromString("job status can only move forward")
	ErrInvalidFleet               = failure.BadRequestFromString("invalid fleet")
	ErrFleetOnlyField             = failure.BadRequestFromString("field does not apply to this fleet")
	ErrInvalidCargoMode           = failure.BadRequestFromString("invalid cargo mode")
	ErrBulkSingleItem             = failure.BadRequestFromString("bulk cargo holds exactly one item")
	ErrPackingListBulkOnly        = failure.BadRequestFromString("aggregate packing list requires bulk cargo")
	ErrPerformDateRequired        = failure.BadRequestFromString("perform_date is required")
	ErrInvalidJobType             = failure.BadRequestFromString("invalid job type")
	ErrInvalidTransshipmentMethod = failure.BadRequestFromString("invalid transshipment method")
	ErrUnknownRequirement         = failure.BadRequestFromString("requirement is not in the catalog")
)

// invalidValue keeps the sentinel matchable with errors.Is while naming the bad value.
func invalidValue(sentinel error, value string) error {
	return fmt.Errorf("%w: %q", sentinel, value)
}
