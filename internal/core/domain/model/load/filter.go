package load

// Filter is the conjunction of optional exact-match predicates used to list
// loads. An empty field places no constraint; the zero Filter matches every load.
//
// Repositories translate a Filter into a single storage query. Matches is the
// in-memory form of the same predicate.
type Filter struct {
	ShipperID      string
	TruckType      string
	Status         Status
	LoadingPoint   string
	UnloadingPoint string
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Matches reports whether l satisfies every non-empty field of f.
func (f Filter) Matches(l *Load) bool {
	if l == nil {
		return false
	}
	switch {
	case f.ShipperID != "" && l.shipperID != f.ShipperID:
		return false
	case f.TruckType != "" && l.truckType != f.TruckType:
		return false
	case f.Status != "" && l.status != f.Status:
		return false
	case f.LoadingPoint != "" && l.facility.loadingPoint != f.LoadingPoint:
		return false
	case f.UnloadingPoint != "" && l.facility.unloadingPoint != f.UnloadingPoint:
		return false
	}
	return true
}
