// Package core defines the uniform filesystem contract shared by every
// backend: the FileSystem capability interface, the FileStat metadata
// model, the closed error taxonomy with its Normalize translator, the
// RelativePattern glob type, and the Watcher subscription contract.
//
// Backends conform structurally; there is no shared base implementation.
// Consumers should depend on this package and select a concrete backend
// (local or host) only at initialization.
package core
