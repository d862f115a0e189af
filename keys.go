package netmsg

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

// SessionKeyIterations is the PBKDF2 iteration count used by DeriveSessionKey.
const SessionKeyIterations = 4096

// DeriveSessionKey stretches a shared secret into a 32-bit key for the keyed
// delta fields. Both peers must use the same secret and salt.
//
// Keyed deltas only obfuscate; they are not encryption.
func DeriveSessionKey(secret, salt []byte) int32 {
	k := pbkdf2.Key(secret, salt, SessionKeyIterations, 4, sha256.New)
	return int32(binary.LittleEndian.Uint32(k))
}

// FieldKey derives the key for a named field from a session key, so that
// fields sharing a session do not share a key.
func FieldKey(session int32, field string) int32 {
	return session ^ HashKey(field, MaxStringChars)
}
