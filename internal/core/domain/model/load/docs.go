// Package load provides the Load aggregate: a shipment a shipper has posted to
// the marketplace and that transporters book against.
//
// The package includes:
//   - Load: the aggregate root holding the shipment details and its status
//   - Facility: the loading/unloading locations and dates embedded in a Load
//   - Status: POSTED, BOOKED or CANCELLED
//   - Filter: the conjunctive predicate used by filtered load lookups
//
// Key business rules:
//   - A new Load is always POSTED, whatever the caller asked for
//   - A Load becomes BOOKED when a booking is created against it
//   - A Load becomes CANCELLED when a booking against it is deleted
//   - A CANCELLED Load cannot be booked
//
// Each Load carries a version counter used by repositories for optimistic
// concurrency: two writers racing on the same Load cannot both commit.
package load
