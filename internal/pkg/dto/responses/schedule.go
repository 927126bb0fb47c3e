package responses

// Schedule is the list/create shape: the patient reference stays a bare
// identifier, or null when the referenced patient was soft-deleted.
type Schedule struct {
	ID      string  `json:"id"`
	Patient *string `json:"patient"`
	Date    string  `json:"date"`
	Notes   *string `json:"notes"`
}

// ScheduleDetail is the single-item shape: the patient reference is resolved
// into the full object, or null when the patient is gone.
type ScheduleDetail struct {
	ID      string   `json:"id"`
	Patient *Patient `json:"patient"`
	Date    string   `json:"date"`
	Notes   *string  `json:"notes"`
}
