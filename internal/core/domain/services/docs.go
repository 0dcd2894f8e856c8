// Package services contains stateless domain services that coordinate logic
// spanning multiple aggregates or encode cross-cutting domain policy, such as
// the notification fan-out plan for lifecycle transitions.
package services
