// Package order provides the parcel aggregate registered at the delivery hub.
//
// The package includes:
//   - Order: one registered parcel, identified by a kernel.Token
//   - Status: the pickup lifecycle (Pending, ReachedHub, PickedUp)
//   - Category: what kind of parcel it is (Food, Courier, Shopping)
//
// Key business rules:
//   - Every field except the status is fixed at registration
//   - Any status may move to any other status; there is no terminal state
//   - Moving to PickedUp stamps the pickup time, refreshing it on every repeat
//   - Moving away from PickedUp keeps the last pickup time
package order
