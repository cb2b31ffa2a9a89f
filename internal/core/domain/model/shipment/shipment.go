package shipment

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for shipment tracking. It holds the
// denormalized current state (status, current location, derived delivery
// dates) together with the embedded append-only timeline of status events,
// so an update to status and its corresponding timeline append always travel
// in one atomic write.
//
// Shipment follows these invariants:
//   - Belongs to exactly one tenant and references exactly one customer
//   - The tracking number is issued once and never mutated
//   - The timeline's first entry is always the Pending creation entry
//   - Subsequent entries exist only for status values that actually changed
//   - actualDelivery is stamped when Delivered is reached and never cleared
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through Apply.
type Shipment struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	customerID kernel.UUID

	trackingNumber TrackingNumber

	status          Status
	origin          string
	destination     string
	currentLocation string

	estimatedDelivery *time.Time
	actualDelivery    *time.Time

	shipmentType    string
	transportMethod TransportMethod
	cargoUnits      *CargoUnits
	notes           string

	timeline []TimelineEntry

	createdAt time.Time

	// version supports the persistence layer's optimistic concurrency check.
	version int

	isConstructed bool
}

// Details carries the optional attributes a shipment may be created with.
type Details struct {
	EstimatedDelivery *time.Time
	ShipmentType      string
	TransportMethod   TransportMethod
	CargoUnits        *CargoUnits
	Notes             string
}

// NewShipment creates a new Shipment in Pending status with its timeline
// seeded with the creation entry. The caller supplies the freshly issued
// tracking number and the creation time; both become immutable.
func NewShipment(
	id, tenantID, customerID kernel.UUID,
	trackingNumber TrackingNumber,
	origin, destination string,
	details Details,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		customerID.Validate(),
		trackingNumber.Validate(),
	); err != nil {
		return nil, err
	}

	if origin == "" {
		return nil, errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}
	if err := details.TransportMethod.Validate(); err != nil {
		return nil, err
	}
	if details.CargoUnits != nil {
		if err := details.CargoUnits.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shipment{
		id:                id,
		tenantID:          tenantID,
		customerID:        customerID,
		trackingNumber:    trackingNumber,
		status:            Pending,
		origin:            origin,
		destination:       destination,
		estimatedDelivery: details.EstimatedDelivery,
		shipmentType:      details.ShipmentType,
		transportMethod:   details.TransportMethod,
		cargoUnits:        details.CargoUnits,
		notes:             details.Notes,
		timeline:          []TimelineEntry{newCreationEntry(now)},
		createdAt:         now,
		version:           1,
		isConstructed:     true,
	}, nil
}

// RestoreShipmentParams carries the full persisted state of a shipment for
// reconstruction from storage.
type RestoreShipmentParams struct {
	ID                kernel.UUID
	TenantID          kernel.UUID
	CustomerID        kernel.UUID
	TrackingNumber    TrackingNumber
	Status            Status
	Origin            string
	Destination       string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	ShipmentType      string
	TransportMethod   TransportMethod
	CargoUnits        *CargoUnits
	Notes             string
	Timeline          []TimelineEntry
	CreatedAt         time.Time
	Version           int
}

// RestoreShipment reconstructs a Shipment from persisted state.
// Used by repositories only; it validates identity and status but trusts
// the stored field values otherwise.
func RestoreShipment(p RestoreShipmentParams) (*Shipment, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.CustomerID.Validate(),
		p.TrackingNumber.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                p.ID,
		tenantID:          p.TenantID,
		customerID:        p.CustomerID,
		trackingNumber:    p.TrackingNumber,
		status:            p.Status,
		origin:            p.Origin,
		destination:       p.Destination,
		currentLocation:   p.CurrentLocation,
		estimatedDelivery: p.EstimatedDelivery,
		actualDelivery:    p.ActualDelivery,
		shipmentType:      p.ShipmentType,
		transportMethod:   p.TransportMethod,
		cargoUnits:        p.CargoUnits,
		notes:             p.Notes,
		timeline:          p.Timeline,
		createdAt:         p.CreatedAt,
		version:           p.Version,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Shipment was created through a factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// TenantID returns the owning tenant's identifier.
func (s *Shipment) TenantID() kernel.UUID { return s.tenantID }

// CustomerID returns the referenced customer's identifier.
func (s *Shipment) CustomerID() kernel.UUID { return s.customerID }

// TrackingNumber returns the public tracking number.
func (s *Shipment) TrackingNumber() TrackingNumber { return s.trackingNumber }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Origin returns the free-text origin location.
func (s *Shipment) Origin() string { return s.origin }

// Destination returns the free-text destination location.
func (s *Shipment) Destination() string { return s.destination }

// CurrentLocation returns the most recent known location, or the empty
// string when none has been reported.
func (s *Shipment) CurrentLocation() string { return s.currentLocation }

// EstimatedDelivery returns the estimated delivery date, or nil.
func (s *Shipment) EstimatedDelivery() *time.Time { return s.estimatedDelivery }

// ActualDelivery returns the time Delivered was reached, or nil.
func (s *Shipment) ActualDelivery() *time.Time { return s.actualDelivery }

// ShipmentType returns the free-text cargo classification.
func (s *Shipment) ShipmentType() string { return s.shipmentType }

// TransportMethod returns the transport method, or the zero value.
func (s *Shipment) TransportMethod() TransportMethod { return s.transportMethod }

// CargoUnits returns the cargo units, or nil.
func (s *Shipment) CargoUnits() *CargoUnits { return s.cargoUnits }

// Notes returns the shipment-level free-text notes.
func (s *Shipment) Notes() string { return s.notes }

// CreatedAt returns the shipment creation time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// Version returns the optimistic-concurrency version counter.
func (s *Shipment) Version() int { return s.version }

// IncrementVersion advances the version counter. Called by the persistence
// layer after a successful optimistic write so the in-memory aggregate
// matches the stored row.
func (s *Shipment) IncrementVersion() { s.version++ }

// Timeline returns a copy of the append-only timeline in chronological
// order.
func (s *Shipment) Timeline() []TimelineEntry {
	timeline := make([]TimelineEntry, len(s.timeline))
	copy(timeline, s.timeline)
	return timeline
}

// Update describes a partial mutation of a shipment. Nil pointer fields are
// left untouched; ClearEstimatedDelivery forces the estimated delivery date
// to null regardless of EstimatedDelivery.
type Update struct {
	Status                 *Status
	CurrentLocation        *string
	Notes                  *string
	EstimatedDelivery      *time.Time
	ClearEstimatedDelivery bool

	// TimelineNotes and Images decorate the timeline entry appended when
	// Status actually changes; they are ignored otherwise.
	TimelineNotes string
	Images        []string
}

// Apply mutates the shipment according to upd, using now as the server
// time for the timeline entry and delivery stamping.
//
// Behavior:
//   - A status equal to the current one appends nothing (no-op idempotence);
//     a different status appends exactly one timeline entry and overwrites
//     the stored status.
//   - Reaching Delivered stamps actualDelivery with now. A repeated
//     transition into Delivered re-stamps it.
//   - A non-empty CurrentLocation always overwrites the stored value,
//     independent of whether the status changed.
//   - Notes overwrite whenever present; EstimatedDelivery overwrites
//     whenever present, and ClearEstimatedDelivery nulls it.
//
// The policy hook is consulted for every requested status value, changed or
// not; pass nil for AllowAnyTransition. Returns whether the status changed.
func (s *Shipment) Apply(upd Update, policy TransitionPolicy, now time.Time) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if policy == nil {
		policy = AllowAnyTransition
	}

	statusChanged := false
	if upd.Status != nil {
		newStatus := *upd.Status
		if err := newStatus.Validate(); err != nil {
			return false, err
		}
		if err := policy(s.status, newStatus); err != nil {
			return false, err
		}

		if newStatus != s.status {
			location := s.currentLocation
			if upd.CurrentLocation != nil && *upd.CurrentLocation != "" {
				location = *upd.CurrentLocation
			}

			s.timeline = append(s.timeline, newStatusEntry(
				newStatus, location, upd.TimelineNotes, upd.Images, now))
			s.status = newStatus
			statusChanged = true

			if newStatus == Delivered {
				delivered := now
				s.actualDelivery = &delivered
			}
		}
	}

	if upd.CurrentLocation != nil && *upd.CurrentLocation != "" {
		s.currentLocation = *upd.CurrentLocation
	}

	if upd.Notes != nil {
		s.notes = *upd.Notes
	}

	if upd.ClearEstimatedDelivery {
		s.estimatedDelivery = nil
	} else if upd.EstimatedDelivery != nil {
		estimated := *upd.EstimatedDelivery
		s.estimatedDelivery = &estimated
	}

	return statusChanged, nil
}
