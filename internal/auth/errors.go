package auth

import "errors"

var (
	// ErrAuthRequired indicates no identity was presented for a gated action.
	ErrAuthRequired = errors.New("authentication required")
	// ErrAdminRequired indicates an authenticated caller without admin rights.
	ErrAdminRequired = errors.New("admin access required")
	// ErrInvalidCredentials indicates a login with an unknown email or a
	// password mismatch. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
