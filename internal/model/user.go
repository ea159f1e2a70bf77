package model

import "time"

// SustainabilityProfile holds denormalized SRI state on the user record
// so dashboard reads avoid a second collection hit.
type SustainabilityProfile struct {
	LastSRIDate *time.Time `json:"lastSriDate,omitempty" bson:"last_sri_date,omitempty"`
	SRIScore    float64    `json:"sriScore" bson:"sri_score"`
}

// User is a registered account.
type User struct {
	ID               string                `json:"id" bson:"_id,omitempty"`
	Email            string                `json:"email" bson:"email"`
	PasswordHash     string                `json:"-" bson:"password_hash"`
	FirstName        string                `json:"firstName" bson:"first_name"`
	LastName         string                `json:"lastName" bson:"last_name"`
	Company          string                `json:"company" bson:"company"`
	Role             string                `json:"role" bson:"role"`
	IsActive         bool                  `json:"isActive" bson:"is_active"`
	ProfileCompleted bool                  `json:"profileCompleted" bson:"profile_completed"`
	Sustainability   SustainabilityProfile `json:"sustainabilityProfile" bson:"sustainability_profile"`
	CreatedAt        time.Time             `json:"createdAt" bson:"created_at"`
	LastLogin        *time.Time            `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
}

// FullName joins first and last name for display and report headers.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
