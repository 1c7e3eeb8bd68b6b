// Package cli provides the cobra command tree of the assignment-window tool.
//
// Commands never construct adapters themselves. The entrypoint registers
// factories with SetServices, and each command opens the services it needs
// once the configuration document has been loaded.
package cli
