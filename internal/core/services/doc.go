// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Each one depends only on ports, so
// tests run them against the in-memory adapters.
package services
