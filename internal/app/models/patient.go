package models

import (
	"gorm.io/gorm"
)

// Patient is stored with a soft-delete marker: DeletedAt is set by Delete and
// the default scope excludes marked rows, so the identifier stays referenceable
// from historical schedules.
type Patient struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Phone     *string        `json:"phone"`
	Email     *string        `json:"email"`
	Birthdate *string        `json:"birthdate"`
	Sex       *string        `json:"sex"`
	Height    *float64       `json:"height"`
	Weight    *float64       `json:"weight"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (Patient) TableName() string {
	return "patients"
}
