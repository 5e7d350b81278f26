// Package vscodefs provides a uniform filesystem abstraction backed
// interchangeably by the local operating system or by a host
// environment's native file-system provider.
//
// Callers write file-handling code once against core.FileSystem and pick
// the concrete backend at initialization:
//
//	fs := vscodefs.NewLocal()
//
//	// or, inside a host environment exposing a native provider:
//	fs := vscodefs.NewHost(provider)
//
// Both backends translate their native failures into the closed error
// taxonomy in package core, reconcile symbolic-link and existence-check
// semantics, and expose the same glob and watch surface.
package vscodefs

import (
	"github.com/Groupguanfang/vscode-fs/host"
	"github.com/Groupguanfang/vscode-fs/local"
)

// NewLocal creates the local-OS backend.
func NewLocal(opts ...local.Option) *local.FS {
	return local.New(opts...)
}

// NewHost creates the host-provider backend delegating to p.
func NewHost(p host.Provider, opts ...host.Option) *host.FS {
	return host.New(p, opts...)
}
