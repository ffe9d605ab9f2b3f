package validation

import (
	"errors"
	"fmt"
)

// Kind identifies the validation check a result failed.
type Kind uint8

const (
	// KindMalformed means the result is missing or structurally unusable.
	KindMalformed Kind = iota + 1
	// KindMembers means the members do not match the selected committee or
	// their hash.
	KindMembers
	// KindIndices means signing or misbehaved indices are out of range or
	// not strictly increasing.
	KindIndices
	// KindQuorum means too few members signed.
	KindQuorum
	// KindSignatures means the signature blob has the wrong length.
	KindSignatures
	// KindSubmitter means the submitter did not sign the result.
	KindSubmitter
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindMembers:
		return "members"
	case KindIndices:
		return "indices"
	case KindQuorum:
		return "quorum"
	case KindSignatures:
		return "signatures"
	case KindSubmitter:
		return "submitter"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ValidationError is returned when a DKG result fails one of the validation
// checks. Kind names the first failing check.
type ValidationError struct {
	Kind Kind
	err  error
}

func NewValidationErrorf(kind Kind, msg string, args ...interface{}) error {
	return ValidationError{
		Kind: kind,
		err:  fmt.Errorf(msg, args...),
	}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid result (%s): %s", e.Kind, e.err.Error())
}

func (e ValidationError) Unwrap() error {
	return e.err
}

// IsValidationError returns true if err is a ValidationError.
func IsValidationError(err error) bool {
	var validationErr ValidationError
	return errors.As(err, &validationErr)
}

// ValidationErrorKind returns the kind of a ValidationError, or false if err
// is not one.
func ValidationErrorKind(err error) (Kind, bool) {
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		return 0, false
	}
	return validationErr.Kind, true
}
