package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/shipment"
)

// Error is the uniform error body for all non-2xx responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateShipmentRequest struct {
	CustomerID        string      `json:"customerId"`
	Origin            string      `json:"origin"`
	Destination       string      `json:"destination"`
	EstimatedDelivery *types.Date `json:"estimatedDelivery,omitempty"`
	ShipmentType      string      `json:"shipmentType,omitempty"`
	TransportMethod   string      `json:"transportMethod,omitempty"`
	CargoType         string      `json:"cargoType,omitempty"`
	CargoQuantity     int         `json:"cargoQuantity,omitempty"`
	Notes             string      `json:"notes,omitempty"`
}

// UpdateShipmentRequest carries a partial update. Pointer fields distinguish
// "absent" from "set to empty"; ClearEstimatedDelivery nulls the estimate.
type UpdateShipmentRequest struct {
	Status                 *string     `json:"status,omitempty"`
	CurrentLocation        *string     `json:"currentLocation,omitempty"`
	Notes                  *string     `json:"notes,omitempty"`
	EstimatedDelivery      *types.Date `json:"estimatedDelivery,omitempty"`
	ClearEstimatedDelivery bool        `json:"clearEstimatedDelivery,omitempty"`
	TimelineNotes          string      `json:"timelineNotes,omitempty"`
	Images                 []string    `json:"images,omitempty"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ShipmentResponse is the internal (authenticated) view of a shipment,
// including customer contact details and the full timeline.
type ShipmentResponse struct {
	ID                string                          `json:"id"`
	TrackingNumber    string                          `json:"trackingNumber"`
	Status            string                          `json:"status"`
	StatusLabel       string                          `json:"statusLabel"`
	StatusStep        int                             `json:"statusStep"`
	Origin            string                          `json:"origin"`
	Destination       string                          `json:"destination"`
	CurrentLocation   string                          `json:"currentLocation,omitempty"`
	EstimatedDelivery *time.Time                      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time                      `json:"actualDelivery,omitempty"`
	ShipmentType      string                          `json:"shipmentType,omitempty"`
	TransportMethod   string                          `json:"transportMethod,omitempty"`
	CargoType         string                          `json:"cargoType,omitempty"`
	CargoQuantity     int                             `json:"cargoQuantity,omitempty"`
	Notes             string                          `json:"notes,omitempty"`
	Version           int                             `json:"version"`
	CreatedAt         time.Time                       `json:"createdAt"`
	Customer          CustomerResponse                `json:"customer"`
	Timeline          []queries.TimelineEntryResponse `json:"timeline"`
}

type ShipmentListItemResponse struct {
	ID                string     `json:"id"`
	TrackingNumber    string     `json:"trackingNumber"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"statusLabel"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	CurrentLocation   string     `json:"currentLocation,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	CustomerName      string     `json:"customerName"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func shipmentResponseFromQuery(r queries.GetShipmentQueryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                r.ID.String(),
		TrackingNumber:    r.TrackingNumber,
		Status:            r.Status,
		StatusLabel:       r.StatusLabel,
		StatusStep:        r.StatusStep,
		Origin:            r.Origin,
		Destination:       r.Destination,
		CurrentLocation:   r.CurrentLocation,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		ShipmentType:      r.ShipmentType,
		TransportMethod:   r.TransportMethod,
		CargoType:         r.CargoType,
		CargoQuantity:     r.CargoQuantity,
		Notes:             r.Notes,
		Version:           r.Version,
		CreatedAt:         r.CreatedAt,
		Customer: CustomerResponse{
			ID:      r.Customer.ID.String(),
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
		Timeline: r.Timeline,
	}
}

func listItemFromQuery(r queries.ListShipmentsQueryResponse) ShipmentListItemResponse {
	return ShipmentListItemResponse{
		ID:                r.ID.String(),
		TrackingNumber:    r.TrackingNumber,
		Status:            r.Status,
		StatusLabel:       r.StatusLabel,
		Origin:            r.Origin,
		Destination:       r.Destination,
		CurrentLocation:   r.CurrentLocation,
		EstimatedDelivery: r.EstimatedDelivery,
		CustomerName:      r.CustomerName,
		CreatedAt:         r.CreatedAt,
	}
}

func customerResponseFromAggregate(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func detailsFromRequest(req CreateShipmentRequest) (shipment.Details, error) {
	details := shipment.Details{
		ShipmentType: req.ShipmentType,
		Notes:        req.Notes,
	}

	if req.TransportMethod != "" {
		method, err := shipment.TransportMethodFromString(req.TransportMethod)
		if err != nil {
			return shipment.Details{}, err
		}
		details.TransportMethod = method
	}

	if req.CargoType != "" || req.CargoQuantity != 0 {
		units, err := shipment.NewCargoUnits(shipment.CargoType(req.CargoType), req.CargoQuantity)
		if err != nil {
			return shipment.Details{}, err
		}
		details.CargoUnits = &units
	}

	if req.EstimatedDelivery != nil {
		estimate := req.EstimatedDelivery.Time.UTC()
		details.EstimatedDelivery = &estimate
	}

	return details, nil
}

func updateFromRequest(req UpdateShipmentRequest) (shipment.Update, error) {
	upd := shipment.Update{
		CurrentLocation:        req.CurrentLocation,
		Notes:                  req.Notes,
		ClearEstimatedDelivery: req.ClearEstimatedDelivery,
		TimelineNotes:          req.TimelineNotes,
		Images:                 req.Images,
	}

	if req.Status != nil {
		status, err := shipment.StatusFromString(*req.Status)
		if err != nil {
			return shipment.Update{}, err
		}
		upd.Status = &status
	}

	if req.EstimatedDelivery != nil {
		estimate := req.EstimatedDelivery.Time.UTC()
		upd.EstimatedDelivery = &estimate
	}

	return upd, nil
}
