// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - AssignmentSource: Fetches a course's assignments from the LMS
//   - AssignmentStore: Assignment window persistence
//   - DecisionSource: Answers per-assignment metadata questions
//   - ConfigStore: The on-disk configuration document
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SyncRunStore: Sync run history. Without it, runs are only logged.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
