package domain

// Pet is a pet as returned by the customer-search endpoint.
// Species is usually a catalog token but the endpoint may send free text.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// Tag is the inline label shown next to a customer, e.g. "Rex (dog)".
func (p Pet) Tag() string {
	return p.Name + " (" + p.Species + ")"
}

// Customer is a customer record with its pets in endpoint order.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Pets  []Pet  `json:"pets"`
}

// ContactLine renders "email • phone".
func (c Customer) ContactLine() string {
	return c.Email + " • " + c.Phone
}
