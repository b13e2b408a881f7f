package crypto

import "runtime"

// Zeroize overwrites b with zeros. Callers drop cached key material the
// moment it stops being needed; the KeepAlive stops the compiler from
// eliding the wipe as a dead store.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
