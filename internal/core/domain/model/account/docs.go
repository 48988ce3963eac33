// Package account provides the customer account aggregate for the procurement system.
//
// The package includes:
//   - Account: The aggregate root managing account identity, the optional
//     identity document, the delivery location shown on order reports, the
//     bcrypt password hash, and the password-change enforcement flag
//
// The password-change gate is a cross-cutting precondition: gated write
// workflows call EnsurePasswordChangeNotRequired at their entry point,
// before any other business rule runs. The check is an explicit pre-check
// rather than inherited behavior or a global flag so it stays testable in
// isolation.
package account
