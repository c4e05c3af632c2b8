package models

// Person is the guest who owns a registration.
type Person struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
