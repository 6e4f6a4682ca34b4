package model

import gDto "clearance/shared/dto"

// Columns a listing may be sorted on.
var SortableFields = []string{FieldCreatedAt, FieldModifiedAt, FieldBookingNumber, FieldStatus}

// ListFilter narrows a booking listing. Zero values match everything and a
// non-positive limit returns every match.
type ListFilter struct {
	Params     gDto.QueryParams
	Status     BookingStatus
	CustomerID string
	// Search matches a booking number prefix, case insensitive.
	Search string
	// CreatedFrom and CreatedTo bound CreatedDate, inclusive, as YYYY-MM-DD.
	CreatedFrom string
	CreatedTo   string
}
