// Package kernel contains shared value objects used across the booking domain:
// UUID identifiers and scheduling time windows. All types in this package are
// immutable and must be created through their constructor functions.
package kernel
