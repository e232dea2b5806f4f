// Package booking provides the Booking aggregate: a transporter's offer to carry a
// Load at a proposed rate.
//
// A Booking references its Load by identifier only. Resolving that reference and
// applying the Load side effects of creating or deleting a Booking is the job of
// the application layer, inside one unit of work.
//
// Key business rules:
//   - The transporter must be identified and the proposed rate must be positive
//   - Status is one of PENDING, ACCEPTED, REJECTED, accepted in any letter case
//   - A Booking without an explicit status starts PENDING
package booking
