package dto

import "github.com/aetheris/airline-platform/internal/domain"

// LoginRequest payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUserRequest payload for unauthenticated customer creation.
type RegisterUserRequest struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Address    string `json:"address"`
}

// RegisterAdminRequest payload for unauthenticated admin creation.
type RegisterAdminRequest struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

// RegisterEmployeeRequest payload for crew creation.
type RegisterEmployeeRequest struct {
	NationalID  string `json:"national_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Position    string `json:"position"`
	FlightHours int    `json:"flight_hours"`
}

// UpdatePersonRequest payload for person updates.
type UpdatePersonRequest struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// UpdatePasswordRequest payload for password changes.
type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// PersonResponse is the public profile of a person. The password hash is
// stripped and never serialized.
type PersonResponse struct {
	ID         int64       `json:"id"`
	NationalID string      `json:"national_id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
}

// FromPerson maps a domain person onto its public profile.
func FromPerson(p *domain.Person) PersonResponse {
	return PersonResponse{
		ID:         p.ID,
		NationalID: p.NationalID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Phone:      p.Phone,
		Email:      p.Email,
		Role:       p.Role,
	}
}

// FromPersons maps a slice of persons onto public profiles.
func FromPersons(persons []domain.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		out = append(out, FromPerson(&persons[i]))
	}
	return out
}
