// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       entity.ID().Bytes(),
		TenantID: entity.TenantID().Bytes(),
		Name:     entity.Name(),
		Email:    entity.Email(),
		Phone:    entity.Phone(),
		Address:  entity.Address(),
	}
}

// toDomain converts a database DTO to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, tenantID, dto.Name, dto.Email, dto.Phone, dto.Address)
}
