package booking

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the transporter's standing on a booking.
type Status string

const (
	Pending  Status = "PENDING"
	Accepted Status = "ACCEPTED"
	Rejected Status = "REJECTED"
)

// Statuses lists every valid Status.
func Statuses() []Status {
	return []Status{Pending, Accepted, Rejected}
}

// ParseStatus upper-cases s and validates it against the enum.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// ParseOptionalStatus is ParseStatus for fields a caller may leave out:
// an empty string yields ok == false and no error.
func ParseOptionalStatus(s string) (status Status, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	status, err = ParseStatus(s)
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"booking status is invalid",
			fmt.Errorf("%q is not one of PENDING, ACCEPTED, REJECTED", string(s)),
		)
	}
}

func (s Status) String() string {
	return string(s)
}
