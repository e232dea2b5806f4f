package load

import (
	"errors"
	"strings"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrFacilityIsNotConstructed is returned when a Facility was not created via NewFacility.
var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility is the loading and unloading half of a Load: where the cargo is picked
// up and dropped off, and when. It is a value object; Loads replace it wholesale.
//
// Whether the unloading date lies in the future is checked where requests enter
// the system, not here, so stored loads stay readable once that date has passed.
type Facility struct {
	loadingPoint   string
	unloadingPoint string
	loadingDate    time.Time
	unloadingDate  time.Time

	guard guard.ConstructorGuard
}

// NewFacility validates that both points are named and both dates are set.
func NewFacility(loadingPoint, unloadingPoint string, loadingDate, unloadingDate time.Time) (Facility, error) {
	var validationErrs []error
	if strings.TrimSpace(loadingPoint) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("loadingPoint"))
	}
	if strings.TrimSpace(unloadingPoint) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("unloadingPoint"))
	}
	if loadingDate.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("loadingDate"))
	}
	if unloadingDate.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("unloadingDate"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Facility{}, err
	}

	return Facility{
		loadingPoint:   loadingPoint,
		unloadingPoint: unloadingPoint,
		loadingDate:    loadingDate,
		unloadingDate:  unloadingDate,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (f Facility) Validate() error {
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

func (f Facility) LoadingPoint() string {
	return f.loadingPoint
}

func (f Facility) UnloadingPoint() string {
	return f.unloadingPoint
}

func (f Facility) LoadingDate() time.Time {
	return f.loadingDate
}

func (f Facility) UnloadingDate() time.Time {
	return f.unloadingDate
}
