package model

// Customer is the contact record attached to a reservation. Field
// validation happens at the request boundary, not here.
type Customer struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
