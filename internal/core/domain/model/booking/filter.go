package booking

import "freight/internal/core/domain/model/load"

// Filter is the conjunction of optional exact-match predicates used to list
// bookings. ShipperID constrains the shipper of the referenced load.
type Filter struct {
	TransporterID string
	ShipperID     string
	Status        Status
}

func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Matches reports whether b satisfies f. ref is the load b references, or nil
// when that load does not resolve; a nil ref never satisfies a ShipperID filter.
func (f Filter) Matches(b *Booking, ref *load.Load) bool {
	if b == nil {
		return false
	}
	switch {
	case f.TransporterID != "" && b.terms.TransporterID != f.TransporterID:
		return false
	case f.Status != "" && b.status != f.Status:
		return false
	case f.ShipperID != "" && (ref == nil || ref.ShipperID() != f.ShipperID):
		return false
	}
	return true
}
