package service

import (
	"errors"
	"fmt"

	"zoomboom/internal/model"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrSameArea            = errors.New("pickup and delivery cannot be in the same area")
	ErrAreaNotCovered      = errors.New("area is not covered")
	ErrFeeNotComputable    = errors.New("delivery fee cannot be computed")
	ErrParcelNotPending    = errors.New("parcel is no longer pending")
	ErrPriceMismatch       = errors.New("price does not match the parcel total")
	ErrPaymentNotSucceeded = errors.New("payment has not succeeded")
	ErrIntentMismatch      = errors.New("payment intent does not match the parcel")
	ErrPaymentExists       = errors.New("payment already recorded")
	ErrApplicationExists   = errors.New("rider application already exists")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrReaderNil           = errors.New("reader is nil")
	ErrUnsupportedImage    = errors.New("only image uploads are accepted")
	ErrImageTooLarge       = errors.New("image is too large")
)

// StructValidator checks tagged request structs.
type StructValidator interface {
	Struct(s any) error
}

// scopeEmail resolves the email a listing is restricted to.
// Members only see their own records; an admin sees everyone's when email is empty.
func scopeEmail(actor model.Actor, email string) (string, error) {
	if email == "" {
		if actor.IsAdmin() {
			return "", nil
		}
		return actor.Email, nil
	}
	if !actor.CanAccess(email) {
		return "", fmt.Errorf("%w: cannot read records of %s", ErrForbidden, email)
	}
	return email, nil
}
