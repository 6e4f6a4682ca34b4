package model

import (
	"fmt"
	"slices"
	"strconv"
)

type Fleet string

const (
	// FleetOrigin is the Chinese side of the border.
	FleetOrigin Fleet = "origin"
	// FleetDestination is the Vietnamese side of the border.
	FleetDestination Fleet = "destination"
)

const (
	DefaultOriginVehicleType      = "Container 40ft"
	DefaultDestinationVehicleType = "Xe tải thùng"
)

func (f Fleet) Valid() bool {
	return f == FleetOrigin || f == FleetDestination
}

func ParseFleet(value string) (Fleet, error) {
	fleet := Fleet(value)
	if !fleet.Valid() {
		return "", invalidValue(ErrInvalidFleet, value)
	}

	return fleet, nil
}

func (f Fleet) idPrefix() string {
	if f == FleetOrigin {
		return "cn"
	}

	return "vn"
}

func (f Fleet) DefaultVehicleType() string {
	if f == FleetOrigin {
		return DefaultOriginVehicleType
	}

	return DefaultDestinationVehicleType
}

type VehicleInfo struct {
	ID              string `json:"id"`
	LicensePlate    string `json:"license_plate"`
	VehicleType     string `json:"vehicle_type"`
	Payload         string `json:"payload"`
	TrailerPlate    string `json:"trailer_plate,omitempty"`
	ContainerNumber string `json:"container_number,omitempty"`
	DriverName      string `json:"driver_name"`
	DriverPhone     string `json:"driver_phone"`
	ETA             string `json:"eta"`

	// Origin fleet only.
	ExportLoadingLink string `json:"export_loading_link,omitempty"`

	// Destination fleet only.
	CPermitDocs    bool `json:"c_permit_docs,omitempty"`
	DriverPassport bool `json:"driver_passport,omitempty"`
}

// VehiclePatch is a partial update. Nil fields are left untouched.
type VehiclePatch struct {
	LicensePlate      *string `json:"license_plate"       validate:"omitempty,max=20"`
	VehicleType       *string `json:"vehicle_type"        validate:"omitempty,max=50"`
	Payload           *string `json:"payload"             validate:"omitempty,max=50"`
	TrailerPlate      *string `json:"trailer_plate"       validate:"omitempty,max=20"`
	ContainerNumber   *string `json:"container_number"    validate:"omitempty,max=20"`
	DriverName        *string `json:"driver_name"         validate:"omitempty,max=100"`
	DriverPhone       *string `json:"driver_phone"        validate:"omitempty,max=20"`
	ETA               *string `json:"eta"                 validate:"omitempty,max=50"`
	ExportLoadingLink *string `json:"export_loading_link" validate:"omitempty,max=500"`
	CPermitDocs       *bool   `json:"c_permit_docs"`
	DriverPassport    *bool   `json:"driver_passport"`
}

func (p VehiclePatch) validateFor(fleet Fleet) error {
	if fleet == FleetDestination && p.ExportLoadingLink != nil {
		return fmt.Errorf("%w: export_loading_link", ErrFleetOnlyField)
	}

	if fleet == FleetOrigin && (p.CPermitDocs != nil || p.DriverPassport != nil) {
		return fmt.Errorf("%w: c_permit_docs and driver_passport", ErrFleetOnlyField)
	}

	return nil
}

func (p VehiclePatch) apply(v *VehicleInfo) {
	assign(&v.LicensePlate, p.LicensePlate)
	assign(&v.VehicleType, p.VehicleType)
	assign(&v.Payload, p.Payload)
	assign(&v.TrailerPlate, p.TrailerPlate)
	assign(&v.ContainerNumber, p.ContainerNumber)
	assign(&v.DriverName, p.DriverName)
	assign(&v.DriverPhone, p.DriverPhone)
	assign(&v.ETA, p.ETA)
	assign(&v.ExportLoadingLink, p.ExportLoadingLink)
	assign(&v.CPermitDocs, p.CPermitDocs)
	assign(&v.DriverPassport, p.DriverPassport)
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// VehicleRegistry holds both fleets of a booking. Seq is shared by the two
// fleets and only grows, so an id is never handed out twice.
type VehicleRegistry struct {
	Origin      []VehicleInfo `json:"origin"`
	Destination []VehicleInfo `json:"destination"`
	Seq         int           `json:"seq"`
}

func (r *VehicleRegistry) list(fleet Fleet) (*[]VehicleInfo, error) {
	switch fleet {
	case FleetOrigin:
		return &r.Origin, nil
	case FleetDestination:
		return &r.Destination, nil
	}

	return nil, invalidValue(ErrInvalidFleet, string(fleet))
}

// Fleet returns the vehicles of one fleet. An unknown fleet has none.
func (r *VehicleRegistry) Fleet(fleet Fleet) []VehicleInfo {
	vehicles, err := r.list(fleet)
	if err != nil {
		return nil
	}

	return *vehicles
}

func (r *VehicleRegistry) has(id string) bool {
	match := func(v VehicleInfo) bool { return v.ID == id }

	return slices.ContainsFunc(r.Origin, match) || slices.ContainsFunc(r.Destination, match)
}

func (r *VehicleRegistry) nextID(fleet Fleet) string {
	for {
		r.Seq++

		id := fleet.idPrefix() + "-" + strconv.Itoa(r.Seq)
		if !r.has(id) {
			return id
		}
	}
}

// Add appends a blank vehicle with a fresh id and the fleet's default type.
func (r *VehicleRegistry) Add(fleet Fleet) (VehicleInfo, error) {
	vehicles, err := r.list(fleet)
	if err != nil {
		return VehicleInfo{}, err
	}

	vehicle := VehicleInfo{
		ID:          r.nextID(fleet),
		VehicleType: fleet.DefaultVehicleType(),
	}

	*vehicles = append(*vehicles, vehicle)

	return vehicle, nil
}

func (r *VehicleRegistry) index(fleet Fleet, id string) (*[]VehicleInfo, int, error) {
	vehicles, err := r.list(fleet)
	if err != nil {
		return nil, -1, err
	}

	idx := slices.IndexFunc(*vehicles, func(v VehicleInfo) bool { return v.ID == id })
	if idx == -1 {
		return nil, -1, fmt.Errorf("%w: %s %s", ErrVehicleNotFound, fleet, id)
	}

	return vehicles, idx, nil
}

func (r *VehicleRegistry) Find(fleet Fleet, id string) (VehicleInfo, bool) {
	vehicles, idx, err := r.index(fleet, id)
	if err != nil {
		return VehicleInfo{}, false
	}

	return (*vehicles)[idx], true
}

// Remove deletes by id so positions of other vehicles do not matter.
func (r *VehicleRegistry) Remove(fleet Fleet, id string) error {
	vehicles, idx, err := r.index(fleet, id)
	if err != nil {
		return err
	}

	*vehicles = slices.Delete(*vehicles, idx, idx+1)

	return nil
}

func (r *VehicleRegistry) Update(fleet Fleet, id string, patch VehiclePatch) (VehicleInfo, error) {
	vehicles, idx, err := r.index(fleet, id)
	if err != nil {
		return VehicleInfo{}, err
	}

	if err = patch.validateFor(fleet); err != nil {
		return VehicleInfo{}, err
	}

	patch.apply(&(*vehicles)[idx])

	return (*vehicles)[idx], nil
}

func (r *VehicleRegistry) Count() int {
	return len(r.Origin) + len(r.Destination)
}

// Plates lists non-empty plates, origin fleet first.
func (r *VehicleRegistry) Plates() []string {
	plates := make([]string, 0, r.Count())

	for _, v := range slices.Concat(r.Origin, r.Destination) {
		if v.LicensePlate != "" {
			plates = append(plates, v.LicensePlate)
		}
	}

	return plates
}

func (r VehicleRegistry) Clone() VehicleRegistry {
	return VehicleRegistry{
		Origin:      slices.Clone(r.Origin),
		Destination: slices.Clone(r.Destination),
		Seq:         r.Seq,
	}
}
