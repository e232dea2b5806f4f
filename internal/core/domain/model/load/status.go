package load

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a Load.
//
// The cancelled state is spelled CANCELLED everywhere, including the check that
// refuses bookings against cancelled loads.
type Status string

const (
	Posted    Status = "POSTED"
	Booked    Status = "BOOKED"
	Cancelled Status = "CANCELLED"
)

// Statuses lists every valid Status in lifecycle order.
func Statuses() []Status {
	return []Status{Posted, Booked, Cancelled}
}

// ParseStatus normalises s to upper case and checks it against the enum.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate returns ValueIsInvalidError for any value outside the enum.
func (s Status) Validate() error {
	switch s {
	case Posted, Booked, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"load status is invalid",
			fmt.Errorf("%q is not one of POSTED, BOOKED, CANCELLED", string(s)),
		)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsCancelled reports whether the load can no longer be booked.
func (s Status) IsCancelled() bool {
	return s == Cancelled
}
