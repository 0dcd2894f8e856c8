// Package contactrepo resolves notification audiences to concrete delivery
// endpoints. Customers keep their contacts here; translator endpoints live on
// the translator profile.
package contactrepo

import (
	"github.com/google/uuid"
)

// CustomerContactDTO represents the database structure for customer contact
// endpoints.
type CustomerContactDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	PushToken string
}

// TableName specifies the database table name for customer contacts.
func (CustomerContactDTO) TableName() string {
	return "customer_contacts"
}
