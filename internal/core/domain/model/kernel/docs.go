// Package kernel provides core domain primitives shared by the parcel hub model.
//
// The package includes:
//   - Token: the value object identifying a registered parcel
//   - MonotonicTokenGenerator: issues tokens that never repeat within a process
//
// Tokens keep the hub's printed form, a "T" followed by digits, but the digits come
// from a strictly increasing sequence seeded by the wall clock rather than from the
// clock alone, so two parcels registered in the same millisecond still differ.
package kernel
