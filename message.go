package stark

import (
	"fmt"
	"math/big"
)

// InstructionType is the leading bit of a packed message
type InstructionType uint8

// Instruction types
const (
	InstructionOrder    InstructionType = 0
	InstructionTransfer InstructionType = 1
)

func (t InstructionType) String() string {
	switch t {
	case InstructionOrder:
		return "order"
	case InstructionTransfer:
		return "transfer"
	default:
		return fmt.Sprintf("InstructionType(%d)", uint8(t))
	}
}

// MessageParams are the fields of a packed order or transfer message
type MessageParams struct {
	InstructionType     InstructionType
	Vault0              uint64
	Vault1              uint64
	Amount0             uint64
	Amount1             uint64
	Nonce               uint64
	ExpirationTimestamp uint64
}

// messageField describes one slot of the packed layout, most significant
// first
type messageField struct {
	name string
	bits uint
	get  func(*MessageParams) uint64
	set  func(*MessageParams, uint64)
}

// messageLayout is the packed message layout.  Serialization and
// deserialization both walk this table.
var messageLayout = []messageField{
	{"instructionType", 1,
		func(p *MessageParams) uint64 { return uint64(p.InstructionType) },
		func(p *MessageParams, v uint64) { p.InstructionType = InstructionType(v) }},
	{"vault0", 31,
		func(p *MessageParams) uint64 { return p.Vault0 },
		func(p *MessageParams, v uint64) { p.Vault0 = v }},
	{"vault1", 31,
		func(p *MessageParams) uint64 { return p.Vault1 },
		func(p *MessageParams, v uint64) { p.Vault1 = v }},
	{"amount0", 63,
		func(p *MessageParams) uint64 { return p.Amount0 },
		func(p *MessageParams, v uint64) { p.Amount0 = v }},
	{"amount1", 63,
		func(p *MessageParams) uint64 { return p.Amount1 },
		func(p *MessageParams, v uint64) { p.Amount1 = v }},
	{"nonce", 31,
		func(p *MessageParams) uint64 { return p.Nonce },
		func(p *MessageParams, v uint64) { p.Nonce = v }},
	{"expirationTimestamp", 22,
		func(p *MessageParams) uint64 { return p.ExpirationTimestamp },
		func(p *MessageParams, v uint64) { p.ExpirationTimestamp = v }},
}

// MessageBits is the width of a packed message
const MessageBits = 242

// SerializeMessage packs p, most significant field first, into 0x prefixed
// even-length hex.  Any field outside its bit width fails with
// ErrFieldOverflow.
func SerializeMessage(p MessageParams) (string, error) {
	acc := new(big.Int)
	for i := range messageLayout {
		f := &messageLayout[i]
		v := f.get(&p)
		if v>>f.bits != 0 {
			str := fmt.Sprintf("%s %d does not fit in %d bits", f.name, v, f.bits)
			return "", makeError(ErrFieldOverflow, str)
		}
		acc.Lsh(acc, f.bits)
		acc.Add(acc, new(big.Int).SetUint64(v))
	}
	return sanitizeHex(bigToHex(acc)), nil
}

// DeserializeMessage unpacks a message produced by SerializeMessage.
func DeserializeMessage(s string) (MessageParams, error) {
	var p MessageParams
	v, ok := parseHexInt(s)
	if !ok {
		str := fmt.Sprintf("invalid message: %q is not hex", s)
		return p, makeError(ErrInvalidInput, str)
	}
	if v.BitLen() > MessageBits {
		str := fmt.Sprintf("invalid message: %d bits exceeds %d", v.BitLen(), MessageBits)
		return p, makeError(ErrFieldOverflow, str)
	}

	mask := new(big.Int)
	field := new(big.Int)
	for i := len(messageLayout) - 1; i >= 0; i-- {
		f := &messageLayout[i]
		mask.Lsh(big.NewInt(1), f.bits)
		mask.Sub(mask, big.NewInt(1))
		field.And(v, mask)
		f.set(&p, field.Uint64())
		v.Rsh(v, f.bits)
	}
	return p, nil
}

// FormatMessage validates decimal field values and packs them.  Every value
// must be a non-negative integer below 2 to the power of its width.
func FormatMessage(kind InstructionType, vault0, vault1, amount0, amount1, nonce, expiration string) (string, error) {
	if kind != InstructionOrder && kind != InstructionTransfer {
		str := fmt.Sprintf("invalid instruction type %d", uint8(kind))
		return "", makeError(ErrInvalidInput, str)
	}
	p := MessageParams{InstructionType: kind}
	values := []string{vault0, vault1, amount0, amount1, nonce, expiration}
	for i, s := range values {
		f := &messageLayout[i+1]
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			str := fmt.Sprintf("%s %q is not a decimal integer", f.name, s)
			return "", makeError(ErrInvalidInput, str)
		}
		if v.Sign() < 0 || v.BitLen() > int(f.bits) {
			str := fmt.Sprintf("%s %s does not fit in %d bits", f.name, s, f.bits)
			return "", makeError(ErrFieldOverflow, str)
		}
		f.set(&p, v.Uint64())
	}
	return SerializeMessage(p)
}

// LimitOrderMsg returns the hash a limit order signature covers
func (ctx *Context) LimitOrderMsg(vaultSell, vaultBuy, amountSell, amountBuy string,
	tokenSell, tokenBuy TokenInput, nonce, expiration string) (string, error) {

	w1, err := ParseTokenInput(tokenSell)
	if err != nil {
		return "", err
	}
	w2, err := ParseTokenInput(tokenBuy)
	if err != nil {
		return "", err
	}
	w3, err := FormatMessage(InstructionOrder, vaultSell, vaultBuy,
		amountSell, amountBuy, nonce, expiration)
	if err != nil {
		return "", err
	}
	return ctx.HashMessage(w1, w2, w3)
}

// TransferMsg returns the hash a transfer signature covers.  The receiver
// key may be a compressed public key or a 0x prefixed Stark key.
func (ctx *Context) TransferMsg(amount, nonce, senderVault string, token TokenInput,
	receiverVault, receiverPublicKey, expiration string) (string, error) {

	w1, err := ParseTokenInput(token)
	if err != nil {
		return "", err
	}
	w2, err := ParseTokenInput(ParseTokenString(receiverPublicKey))
	if err != nil {
		return "", err
	}
	w3, err := FormatMessage(InstructionTransfer, senderVault, receiverVault,
		amount, "0", nonce, expiration)
	if err != nil {
		return "", err
	}
	return ctx.HashMessage(w1, w2, w3)
}
