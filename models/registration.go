package models

// Registration is the sign-up form submitted from the landing page. It is
// forwarded as-is to the Clients API.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
