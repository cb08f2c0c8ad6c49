// AngelaMos | 2026
// entity.go

package plates

import (
	"time"
)

// LicensePlate registers a vehicle plate and its owner's identity details.
// Plate numbers are globally unique; the repository rejects duplicates.
type LicensePlate struct {
	ID             int       `json:"id"`
	PlateNumber    string    `json:"plateNumber"`
	OwnerName      string    `json:"ownerName"`
	FatherName     *string   `json:"fatherName"`
	MotherName     *string   `json:"motherName"`
	IDNumber       *string   `json:"idNumber"`
	PassportNumber *string   `json:"passportNumber"`
	OwnerImage     *string   `json:"ownerImage"`
	AddedByID      int       `json:"addedById"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
