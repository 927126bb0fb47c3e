package requests

type CreatePatient struct {
	Name      string   `json:"name" validate:"required"`
	Phone     *string  `json:"phone" validate:"omitempty,br_phone"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Birthdate *string  `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Sex       *string  `json:"sex" validate:"omitempty,oneof=M F O"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
}

// UpdatePatient carries only the fields present in the PATCH body. Nil means
// "leave untouched".
type UpdatePatient struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Phone     *string  `json:"phone" validate:"omitempty,br_phone"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Birthdate *string  `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Sex       *string  `json:"sex" validate:"omitempty,oneof=M F O"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
}

// Fields maps the provided values to their column names for a partial update.
func (r *UpdatePatient) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Birthdate != nil {
		fields["birthdate"] = *r.Birthdate
	}
	if r.Sex != nil {
		fields["sex"] = *r.Sex
	}
	if r.Height != nil {
		fields["height"] = *r.Height
	}
	if r.Weight != nil {
		fields["weight"] = *r.Weight
	}
	return fields
}
