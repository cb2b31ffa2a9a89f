// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment aggregate, handling the conversion between domain
// entities and database representations, including the jsonb-embedded
// timeline.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The timeline lives in a jsonb column on the same row so a
// status change and its timeline append always commit atomically.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID          uuid.UUID `gorm:"type:uuid;index"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber    string    `gorm:"size:13;uniqueIndex"`
	Status            string    `gorm:"size:32;index"`
	Origin            string
	Destination       string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	ShipmentType      string
	TransportMethod   string
	CargoType         *string
	CargoQuantity     *int
	Notes             string
	Timeline          []byte `gorm:"type:jsonb"`
	CreatedAt         time.Time
	Version           int
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TimelineEntryDTO is the JSON shape of one timeline element inside the
// timeline column. Query handlers read the same shape with raw SQL, so the
// field tags are part of the storage contract.
type TimelineEntryDTO struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	entries := aggregate.Timeline()
	timelineDTOs := make([]TimelineEntryDTO, 0, len(entries))
	for _, entry := range entries {
		timelineDTOs = append(timelineDTOs, TimelineEntryDTO{
			Status:      entry.Status.String(),
			Timestamp:   entry.Timestamp,
			Location:    entry.Location,
			Description: entry.Description,
			Notes:       entry.Notes,
			Images:      entry.Images,
		})
	}

	rawTimeline, err := json.Marshal(timelineDTOs)
	if err != nil {
		return ShipmentDTO{}, err
	}

	var cargoType *string
	var cargoQuantity *int
	if cargo := aggregate.CargoUnits(); cargo != nil {
		ct := string(cargo.Type())
		qty := cargo.Quantity()
		cargoType = &ct
		cargoQuantity = &qty
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		TenantID:          aggregate.TenantID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Status:            aggregate.Status().String(),
		Origin:            aggregate.Origin(),
		Destination:       aggregate.Destination(),
		CurrentLocation:   aggregate.CurrentLocation(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		ShipmentType:      aggregate.ShipmentType(),
		TransportMethod:   aggregate.TransportMethod().String(),
		CargoType:         cargoType,
		CargoQuantity:     cargoQuantity,
		Notes:             aggregate.Notes(),
		Timeline:          rawTimeline,
		CreatedAt:         aggregate.CreatedAt(),
		Version:           aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to a shipment aggregate.
// Reconstructs the complete aggregate including the timeline using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var transportMethod shipment.TransportMethod
	if dto.TransportMethod != "" {
		transportMethod, err = shipment.TransportMethodFromString(dto.TransportMethod)
		if err != nil {
			return nil, err
		}
	}

	var cargoUnits *shipment.CargoUnits
	if dto.CargoType != nil && dto.CargoQuantity != nil {
		cargo, cargoErr := shipment.NewCargoUnits(
			shipment.CargoType(*dto.CargoType), *dto.CargoQuantity)
		if cargoErr != nil {
			return nil, cargoErr
		}
		cargoUnits = &cargo
	}

	timeline, err := timelineToDomain(dto.Timeline)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.RestoreShipmentParams{
		ID:                id,
		TenantID:          tenantID,
		CustomerID:        customerID,
		TrackingNumber:    trackingNumber,
		Status:            status,
		Origin:            dto.Origin,
		Destination:       dto.Destination,
		CurrentLocation:   dto.CurrentLocation,
		EstimatedDelivery: dto.EstimatedDelivery,
		ActualDelivery:    dto.ActualDelivery,
		ShipmentType:      dto.ShipmentType,
		TransportMethod:   transportMethod,
		CargoUnits:        cargoUnits,
		Notes:             dto.Notes,
		Timeline:          timeline,
		CreatedAt:         dto.CreatedAt,
		Version:           dto.Version,
	})
}

func timelineToDomain(raw []byte) ([]shipment.TimelineEntry, error) {
	var dtos []TimelineEntryDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	entries := make([]shipment.TimelineEntry, 0, len(dtos))
	for _, dto := range dtos {
		status, err := shipment.StatusFromString(dto.Status)
		if err != nil {
			return nil, err
		}
		entries = append(entries, shipment.TimelineEntry{
			Status:      status,
			Timestamp:   dto.Timestamp,
			Location:    dto.Location,
			Description: dto.Description,
			Notes:       dto.Notes,
			Images:      dto.Images,
		})
	}

	return entries, nil
}
