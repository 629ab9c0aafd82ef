// Package models contains the records persisted by the clinic service.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Roles derived from the stored account status
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// Account is a registered clinic account (table Account)
type Account struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Status       string    `json:"status" db:"status"`
	Name         string    `json:"name" db:"name"`
	Lastname     string    `json:"lastname" db:"lastname"`
	IdentityID   string    `json:"identityID" db:"identityID"`
	Email        string    `json:"email" db:"email"`
	Day          string    `json:"day" db:"day"`
	Phonenum     string    `json:"phonenum" db:"phonenum"`
	Sex          string    `json:"sex" db:"sex"`
	Address      string    `json:"address" db:"address"`
	PasswordHash string    `json:"-" db:"password"` // Never expose in JSON
}

// Profile is the account view returned after login. It has no password field.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	IdentityID string    `json:"identityID"`
	Status     string    `json:"status"`
	Role       string    `json:"role"`
}

// ToProfile converts an Account to a Profile (safe for API)
func (a *Account) ToProfile() *Profile {
	return &Profile{
		ID:         a.ID,
		Name:       a.Name,
		Lastname:   a.Lastname,
		Email:      a.Email,
		IdentityID: a.IdentityID,
		Status:     a.Status,
		Role:       RoleFromStatus(a.Status),
	}
}

// RoleFromStatus normalizes a stored status marker into a role.
// Unknown markers are passed through lower-cased; a blank status is a patient.
func RoleFromStatus(status string) string {
	role := strings.ToLower(strings.TrimSpace(status))
	if role == "" {
		return RolePatient
	}
	return role
}
