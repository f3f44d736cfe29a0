// internal/realtime/priority_other.go
//go:build !linux

package realtime

// elevate has no real-time scheduling path off Linux; measurements run at
// the default class.
func elevate(Hints) Grant {
	return Grant{Policy: "default"}
}
