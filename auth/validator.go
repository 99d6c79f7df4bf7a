package auth

import (
	"unicode"

	"biograph/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

// ValidateCredentials checks shape and password complexity before any
// hashing or storage happens.
func ValidateCredentials(creds Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return err
	}
	if !isPasswordComplex(creds.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
