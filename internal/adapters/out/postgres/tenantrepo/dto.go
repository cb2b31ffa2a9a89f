// Package tenantrepo provides data transfer objects and mapping functions
// for tenant persistence. The API token lookup backs session resolution for
// every authenticated request.
package tenantrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// TenantDTO represents the database structure for persisting tenants.
type TenantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string
	APIToken    string `gorm:"column:api_token;uniqueIndex"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for tenant entities.
func (TenantDTO) TableName() string {
	return "tenants"
}

// fromDomain converts a tenant entity to its database representation.
func fromDomain(entity *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:          entity.ID().Bytes(),
		CompanyName: entity.CompanyName(),
		APIToken:    entity.APIToken(),
	}
}

// toDomain converts a database DTO to a tenant entity.
func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tenant.RestoreTenant(id, dto.CompanyName, dto.APIToken)
}
