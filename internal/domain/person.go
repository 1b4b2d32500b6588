package domain

// Role is the closed set of role tags carried inside session tokens.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// Person is the base identity record shared by users, admins and employees.
type Person struct {
	ID           int64
	NationalID   string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	PasswordHash string
	Role         Role
}

// User extends a person with customer-facing attributes.
type User struct {
	PersonID      int64
	Address       string
	ReservationID *string
}

// Admin extends a person with back-office attributes.
type Admin struct {
	PersonID   int64
	Department string
}

// Employee extends a person with crew attributes.
type Employee struct {
	PersonID    int64
	Position    string
	FlightHours int
}
