//go:build linux || freebsd || netbsd || openbsd || dragonfly

package wildcards

// GTK file dialogs match wildcards case-sensitively.
const caseSensitiveDialogs = true
