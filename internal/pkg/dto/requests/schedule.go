package requests

type CreateSchedule struct {
	Patient string  `json:"patient" validate:"required,uuid"`
	Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
	Notes   *string `json:"notes"`
}

type UpdateSchedule struct {
	Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

func (r *UpdateSchedule) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}
