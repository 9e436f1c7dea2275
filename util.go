package stark

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"strings"
)

// readBE64 reads a uint64 in big endian
func readBE64(p []byte) uint64 {
	return binary.BigEndian.Uint64(p)
}

// mustParseHex parses a constant hex string and panics on failure
func mustParseHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(removeHexPrefix(s), 16)
	if !ok {
		panic("invalid hex constant: " + s)
	}
	return v
}

// Hex string helpers.  Values on the wire are lower-case hex, optionally with a
// 0x prefix.

func isHexPrefixed(s string) bool {
	return strings.HasPrefix(s, "0x")
}

func removeHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}

func addHexPrefix(s string) string {
	if isHexPrefixed(s) {
		return s
	}
	return "0x" + s
}

// sanitizeBytes left-pads a hex string with zeros to a multiple of byteSize
// characters.
func sanitizeBytes(s string, byteSize int) string {
	if rem := len(s) % byteSize; rem != 0 {
		s = strings.Repeat("0", byteSize-rem) + s
	}
	return s
}

// sanitizeHex returns s with a 0x prefix and an even number of digits.
func sanitizeHex(s string) string {
	s = removeHexPrefix(s)
	if s == "" {
		return ""
	}
	return addHexPrefix(sanitizeBytes(s, 2))
}

// isHexDigits reports whether s is a non-empty run of hex digits.  Signs,
// underscores and whitespace are all rejected.
func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// parseHexInt parses a hex string, with or without prefix, into a
// non-negative big.Int.
func parseHexInt(s string) (*big.Int, bool) {
	s = removeHexPrefix(s)
	if !isHexDigits(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 16)
}

// bigToHex renders v as lower-case hex without prefix or leading zeros.
func bigToHex(v *big.Int) string {
	return v.Text(16)
}

// bigToHex32 renders v as exactly 64 hex digits.
func bigToHex32(v *big.Int) string {
	var b [32]byte
	v.FillBytes(b[:])
	return hex.EncodeToString(b[:])
}

// byteLen returns the number of bytes needed to hold v, zero for zero.
func byteLen(v *big.Int) int {
	return (v.BitLen() + 7) / 8
}
