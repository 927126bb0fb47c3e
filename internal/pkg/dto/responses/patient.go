package responses

type Patient struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email"`
	Birthdate *string  `json:"birthdate"`
	Sex       *string  `json:"sex"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
}
