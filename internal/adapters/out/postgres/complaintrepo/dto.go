// Package complaintrepo provides data transfer objects and mapping functions
// for complaint persistence.
package complaintrepo

import (
	"time"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
)

// ComplaintDTO represents the database model for complaints.
type ComplaintDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64 `gorm:"index"`
	OrderID     *int64
	Description string
	Status      string `gorm:"index"`
	RaisedAt    time.Time
}

// TableName specifies the database table name for complaints.
func (ComplaintDTO) TableName() string {
	return "complaints"
}

// fromDomain converts a complaint aggregate to its database representation.
func fromDomain(c *complaint.Complaint) ComplaintDTO {
	dto := ComplaintDTO{
		ID:          c.ID().Value(),
		CustomerID:  c.CustomerID().Value(),
		Description: c.Description(),
		Status:      c.Status().String(),
		RaisedAt:    c.RaisedAt(),
	}

	if orderID := c.OrderID(); orderID != nil {
		v := orderID.Value()
		dto.OrderID = &v
	}

	return dto
}

// toDomain reconstructs the complaint aggregate from its row.
func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.ID
	if dto.OrderID != nil {
		v, err := kernel.NewID(*dto.OrderID)
		if err != nil {
			return nil, err
		}
		orderID = &v
	}

	status, err := complaint.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return complaint.RestoreComplaint(id, customerID, orderID, dto.Description, status, dto.RaisedAt)
}
