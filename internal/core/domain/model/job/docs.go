// Package job contains the Job aggregate and its supporting value objects.
//
// The package implements the booking lifecycle:
//   - Job: the aggregate root with status, translator binding and admin annotations
//   - Status: the state machine governing lifecycle transitions
//   - CancelReason: why a cancelled job was closed
//   - DistanceRecord: admin-recorded travel metrics, keyed by job id
//
// All domain invariants are enforced through validated constructors and
// transition methods. The aggregate holds no persistence concerns; the
// single-winner acceptance guarantee is completed by the storage layer's
// status compare-and-set.
package job
