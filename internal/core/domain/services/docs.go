// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the procurement system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuotaPolicy: Tunable parameters of the monthly purchase weight quota
//   - QuotaEvaluator: A pure domain service deciding whether a candidate
//     purchase fits into a customer's monthly weight quota
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
