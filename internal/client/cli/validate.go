package cli

import "strings"

// registrationForm holds the raw registration inputs before they are
// turned into an API request.
type registrationForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	CityName        string
	CountyName      string
	DistrictName    string
	AddressText     string
}

// validateRegistration checks the form synchronously, before any network
// call, and returns field-name → message for everything wrong with it.
func validateRegistration(f registrationForm) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(f.Email)
	if email == "" || !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		errs["email"] = "please enter a valid email address"
	}
	if len(f.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}
	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if strings.TrimSpace(f.AddressText) == "" {
		errs["address"] = "address is required"
	}
	return errs
}
