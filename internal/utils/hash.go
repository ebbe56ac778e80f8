package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes computes an HMAC-SHA256 signature over the given byte slice
// using the provided hash key and returns the hex-encoded digest.
//
// The client uses it to fingerprint downloaded plaintext before it is
// recorded in the local download history, so later tampering with the saved
// file can be detected against the stored checksum.
//
// Parameters:
//
//	data    - bytes to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	checksum := utils.HashBytes(plaintext, "my-secret-key")
func HashBytes(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
