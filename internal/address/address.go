// Package address derives simplewallet storage addresses in global state.
//
// An address is the 6 hex character namespace prefix, taken from the SHA-512
// digest of the family name, followed by the first 64 hex characters of the
// SHA-512 digest of the wallet owner's public key.
package address

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"sync"
)

const (
	// FamilyName is the transaction family identifier and the namespace seed.
	FamilyName = "simplewallet"

	PrefixLength = 6
	SuffixLength = 64
	Length       = PrefixLength + SuffixLength
)

var namespacePrefix = sync.OnceValue(func() string {
	return hashHex(FamilyName)[:PrefixLength]
})

// NamespacePrefix returns the prefix owned by the simplewallet family.
func NamespacePrefix() string {
	return namespacePrefix()
}

// Derive returns the storage address holding the balance of identityKey.
func Derive(identityKey string) string {
	return NamespacePrefix() + hashHex(identityKey)[:SuffixLength]
}

// Valid reports whether addr is a well-formed simplewallet address.
func Valid(addr string) bool {
	if len(addr) != Length || !strings.HasPrefix(addr, NamespacePrefix()) {
		return false
	}
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func hashHex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
