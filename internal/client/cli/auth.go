package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they can be swapped for stubs.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects the registration form, validates it locally, and
// creates the account. On success the new user id is remembered as
// pending verification and the user is pointed at the verify flow.
func (a *App) Register(ctx context.Context) error {
	var f registrationForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if f.Password, err = getPassword("Enter password", os.Stdout); err != nil {
		return err
	}
	if f.ConfirmPassword, err = getPassword("Confirm password", os.Stdout); err != nil {
		return err
	}
	if f.FirstName, err = getSimpleText(a.reader, "First name", os.Stdout); err != nil {
		return err
	}
	if f.LastName, err = getSimpleText(a.reader, "Last name", os.Stdout); err != nil {
		return err
	}
	if f.CityName, err = getSimpleText(a.reader, "City", os.Stdout); err != nil {
		return err
	}
	if f.CountyName, err = getSimpleText(a.reader, "County", os.Stdout); err != nil {
		return err
	}
	if f.DistrictName, err = getSimpleText(a.reader, "District", os.Stdout); err != nil {
		return err
	}
	if f.AddressText, err = getSimpleText(a.reader, "Address", os.Stdout); err != nil {
		return err
	}

	if errs := validateRegistration(f); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Printf("%s: %s\n", field, msg)
		}
		return nil
	}

	user, message, err := a.auth.Register(ctx, api.RegisterRequest{
		Email:     f.Email,
		Password:  f.Password,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Address: models.Address{
			CityName:     f.CityName,
			CountyName:   f.CountyName,
			DistrictName: f.DistrictName,
			AddressText:  f.AddressText,
		},
	})
	if err != nil {
		log.Printf("Registration failed: %v", err)
		return err
	}

	if user != nil {
		if err := a.session.SetPendingUserID(ctx, user.ID); err != nil {
			log.Printf("error saving pending verification: %v", err)
		}
	}
	if message != "" {
		fmt.Println(message)
	}
	fmt.Println("Check your email for the verification code, then run 'verify'.")
	return nil
}

// Login authenticates and installs the returned identity in the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	a.session.SetLoading(true)
	defer a.session.SetLoading(false)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login failed: %v", err)
		return err
	}
	if err := a.session.SetUser(ctx, user); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", user.DisplayName())
	return nil
}

// Verify confirms the pending registration with the emailed code and
// logs the verified user in.
func (a *App) Verify(ctx context.Context) error {
	pending := a.session.PendingUserID()
	if pending == "" {
		fmt.Println("No registration is awaiting verification.")
		return nil
	}

	code, err := getSimpleText(a.reader, "Enter the 6-digit verification code", os.Stdout)
	if err != nil {
		return err
	}
	if len(code) != 6 {
		fmt.Println("The verification code must be 6 digits.")
		return nil
	}

	a.session.SetLoading(true)
	defer a.session.SetLoading(false)

	user, message, err := a.auth.VerifyEmail(ctx, pending, code)
	if err != nil {
		log.Printf("Verification failed: %v", err)
		return err
	}
	if err := a.session.CompleteVerification(ctx, user); err != nil {
		return err
	}
	if message != "" {
		fmt.Println(message)
	}
	fmt.Printf("Welcome, %s!\n", user.DisplayName())
	return nil
}

// Resend asks the backend to email a fresh verification code for the
// pending registration.
func (a *App) Resend(ctx context.Context) error {
	pending := a.session.PendingUserID()
	if pending == "" {
		fmt.Println("No registration is awaiting verification.")
		return nil
	}

	message, err := a.auth.ResendVerification(ctx, pending)
	if err != nil {
		log.Printf("Resend failed: %v", err)
		return err
	}
	if message == "" {
		message = "Verification code resent"
	}
	fmt.Println(message)
	return nil
}

// Logout clears the session and revokes the credential.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI() {
	u := a.session.User()
	if u == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>", u.DisplayName(), u.Email)
	if u.IsSeller {
		fmt.Print(" [seller]")
	}
	if u.IsVerified {
		fmt.Print(" [verified]")
	}
	fmt.Println()
}

// redirectToAuth is the CLI's equivalent of navigating to the auth entry
// point: the protected action is abandoned and the login flow starts.
func (a *App) redirectToAuth(ctx context.Context) {
	fmt.Println("Authentication required. Please log in.")
	_ = a.Login(ctx)
}
