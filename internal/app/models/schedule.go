package models

// Schedule references its patient by identifier only. The row keeps the
// reference even after the patient is soft-deleted; resolution happens at read
// time. Date is a plain YYYY-MM-DD string guarded by a unique index.
type Schedule struct {
	ID        string  `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID string  `json:"patient" gorm:"type:uuid;not null"`
	Date      string  `json:"date" gorm:"not null;uniqueIndex:uq_schedules_date"`
	Notes     *string `json:"notes"`
}

func (Schedule) TableName() string {
	return "schedules"
}
