package auth

import "errors"

var (
	InvalidCredentialsErr = errors.New("invalid credentials")
	AccountDisabledErr    = errors.New("account is disabled")
)
