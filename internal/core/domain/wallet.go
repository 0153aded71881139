package domain

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ShortAddress renders an address as its first 6 and last 4 characters.
// Shorter strings contribute what they have to each side.
func ShortAddress(addr string) string {
	if addr == "" {
		return ""
	}
	head := addr[:min(6, len(addr))]
	tail := addr[max(0, len(addr)-4):]
	return head + "..." + tail
}

// SameAddress reports whether two addresses are equal ignoring case.
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

// IsHexAddress reports whether addr is a 0x-prefixed 20-byte hex string.
func IsHexAddress(addr string) bool {
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return false
	}
	_, err := hex.DecodeString(addr[2:])
	return err == nil
}

// ChecksumAddress returns the EIP-55 mixed-case form of addr, or "" when
// addr is not a hex address. Display only; comparisons use SameAddress.
func ChecksumAddress(addr string) string {
	if !IsHexAddress(addr) {
		return ""
	}
	lower := strings.ToLower(addr[2:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, ch := range out {
		if ch < 'a' || ch > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = ch - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}
