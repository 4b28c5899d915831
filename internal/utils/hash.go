package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// CSRFToken derives the anti-forgery token bound to a session.
// The same session and key always produce the same token.
func CSRFToken(session, hashKey string) string {
	return HashString("csrf:"+session, hashKey)
}

// VerifyCSRFToken reports whether token was derived from session with hashKey.
// The comparison runs in constant time.
func VerifyCSRFToken(token, session, hashKey string) bool {
	if token == "" || session == "" {
		return false
	}

	got, err := hex.DecodeString(token)
	if err != nil {
		return false
	}

	return hmac.Equal(got, hashString([]byte("csrf:"+session), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
