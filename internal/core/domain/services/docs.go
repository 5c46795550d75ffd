// Package services provides domain services that implement business logic
// spanning more than a single aggregate method in the delivery system.
//
// The package includes:
//   - ConfirmationStrategy: pluggable proof validation for delivery confirmation
//     (one-time password, QR code, recipient signature)
//
// Strategies are selected by the task's confirmation type and transition the
// task aggregate on a successful match, keeping proof validation rules out of
// the application layer.
package services
