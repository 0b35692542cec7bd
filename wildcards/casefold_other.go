//go:build !(linux || freebsd || netbsd || openbsd || dragonfly)

package wildcards

const caseSensitiveDialogs = false
