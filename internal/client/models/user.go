// Package models defines the client-side data model: users, product
// requests, and offers, as they appear on the wire and in the UI layer.
package models

import "strings"

// Address is a single delivery address attached to a user profile.
type Address struct {
	ID           string `json:"_id,omitempty"`
	CityName     string `json:"cityName"`
	CountyName   string `json:"countyName"`
	DistrictName string `json:"districtName"`
	AddressText  string `json:"addressText"`
}

// User is the authenticated identity returned by the auth backend.
// Token carries the bearer credential issued at login/registration and is
// persisted together with the identity.
type User struct {
	ID             string   `json:"_id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Addresses      []string `json:"addresses"`
	DefaultAddress string   `json:"defaultAddress"`
	IsSeller       bool     `json:"isSeller"`
	IsVerified     bool     `json:"isVerified"`
	Token          string   `json:"token,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// DisplayName returns the name shown next to the user's activity.
// Falls back to the email local part when the profile has no name.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}
