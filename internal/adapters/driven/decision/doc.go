// Package decision provides driven.DecisionSource implementations.
//
//   - Automatic: fixed answers, for unattended runs
//   - Interactive: asks an operator on a terminal, one line per answer
package decision
