package stark

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// TokenType names the asset kinds a token id can be derived for
type TokenType string

// Supported token types
const (
	TokenETH    TokenType = "ETH"
	TokenERC20  TokenType = "ERC20"
	TokenERC721 TokenType = "ERC721"
)

// TokenInput is one of RawFieldElement, CompressedPublicKey or Token.  It is
// what order and transfer messages accept for their asset and counterparty
// slots.
type TokenInput interface {
	tokenInput()
}

// RawFieldElement is a 0x prefixed hex value used as-is, for example a
// counterparty Stark key or a precomputed asset id
type RawFieldElement string

// CompressedPublicKey is a 33-byte compressed public key in hex; it resolves
// to its x coordinate
type CompressedPublicKey string

// Token is an asset whose id is derived by HashTokenID
type Token struct {
	Type TokenType
	// Quantum is the token's quantization unit in base units, carried for
	// callers; it does not enter the id.
	Quantum string
	// Address is the 0x prefixed contract address for ERC20 and ERC721
	Address string
}

func (RawFieldElement) tokenInput()     {}
func (CompressedPublicKey) tokenInput() {}
func (Token) tokenInput()               {}

// ParseTokenString classifies a plain string: 66 hex digits starting with 02
// or 03 is a compressed public key, anything else a raw field element.
func ParseTokenString(s string) TokenInput {
	h := removeHexPrefix(s)
	if len(h) == 66 && (strings.HasPrefix(h, "02") || strings.HasPrefix(h, "03")) {
		return CompressedPublicKey(s)
	}
	return RawFieldElement(s)
}

// ParseTokenInput resolves a token input to the hex field element that enters
// the message hash
func ParseTokenInput(in TokenInput) (string, error) {
	switch v := in.(type) {
	case RawFieldElement:
		if err := checkHexValue(string(v)); err != nil {
			return "", err
		}
		return string(v), nil
	case CompressedPublicKey:
		return XCoordinate(string(v))
	case Token:
		return HashTokenID(v)
	default:
		return "", makeError(ErrUnknownTokenType, fmt.Sprintf("unsupported token input %T", in))
	}
}

// checkHexValue requires s to be 0x prefixed hex below the field prime
func checkHexValue(s string) error {
	if !isHexPrefixed(s) {
		str := fmt.Sprintf("invalid input: %q is not 0x prefixed", s)
		return makeError(ErrInvalidInput, str)
	}
	v, ok := parseHexInt(s)
	if !ok || v.Sign() < 0 || v.Cmp(fieldPrimeBig) >= 0 {
		str := fmt.Sprintf("invalid input: %q is not a field element", s)
		return makeError(ErrInvalidInput, str)
	}
	return nil
}

// HashTokenID derives a token id: Keccak-256 over ETH(), ERC20Token(<addr>) or
// ERC721Token(<addr>), keeping digest bytes 1 through 4, 0x prefixed.
func HashTokenID(t Token) (string, error) {
	var id string
	switch TokenType(strings.ToUpper(string(t.Type))) {
	case TokenETH:
		id = "ETH()"
	case TokenERC20:
		if err := checkHexValue(t.Address); err != nil {
			return "", err
		}
		id = "ERC20Token(" + t.Address + ")"
	case TokenERC721:
		if err := checkHexValue(t.Address); err != nil {
			return "", err
		}
		id = "ERC721Token(" + t.Address + ")"
	default:
		str := fmt.Sprintf("unknown token type: %s", t.Type)
		return "", makeError(ErrUnknownTokenType, str)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(id))
	digest := h.Sum(nil)
	return "0x" + hex.EncodeToString(digest[1:5]), nil
}
