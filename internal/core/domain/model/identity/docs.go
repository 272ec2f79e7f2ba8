// Package identity models the actor currently signed in to the hub: a student
// identified by register number, or a staff member identified by username.
// At most one identity is active per process.
package identity
