// Package session houses concrete implementations of the core.Session
// contract. The interface itself lives in the core package to centralize
// domain contracts; only implementations belong here, so higher level
// packages never depend on a concrete session type.
package session
