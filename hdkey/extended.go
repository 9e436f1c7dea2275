package hdkey

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

// HardenedBit marks a hardened child index
const HardenedBit = 0x80000000

// serializedKeyLen is the length of a serialized extended key without the
// checksum
const serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

// ExtendedKey is a BIP32 node on secp256k1
type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte
	ChildNumber uint32 // 0 for the master key
	KeyData     []byte // 32-byte private scalar, or 33-byte compressed public key
	ChainCode   []byte // 32 bytes
}

// FromBitcoinSeed returns the master node for a seed
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

// FromSeed returns the master node for a seed under the given HMAC key
func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	key, chainCode, err := hmacCKD(seed, masterSecret)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSeed, err.Error())
	}
	return &ExtendedKey{
		Version:   BitcoinMainnetPrivate,
		KeyData:   key,
		ChainCode: chainCode,
	}, nil
}

// FromString parses a base58 encoded extended key
func FromString(str string) (*ExtendedKey, error) {
	bin := base58.Decode(str)
	if len(bin) == 0 {
		return nil, errors.Wrap(ErrInvalidKeyLen, "base58 decode")
	}
	e := &ExtendedKey{}
	return e, e.UnmarshalBinary(bin)
}

// IsPrivate returns true if the key holds a private scalar
func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Child derives the extended key at index i.  Indices with HardenedBit set
// are hardened and need a private parent.  A private parent yields a private
// child and a public parent a public child.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if k.Depth == 0xff {
		return nil, ErrMaxDepthExceeded
	}

	hardened := i&HardenedBit == HardenedBit
	if !k.IsPrivate() && hardened {
		return nil, ErrDerivingHardenedFromPublic
	}

	parentPub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}

	const keyLen = 33
	seed := make([]byte, keyLen+4)
	if hardened {
		// 0x00 || ser256(k) || ser32(i)
		copy(seed[1:], k.KeyData)
	} else {
		// serP(K) || ser32(i)
		copy(seed, parentPub)
	}
	binary.BigEndian.PutUint32(seed[keyLen:], i)

	il, chainCode, err := hmacCKD(seed, k.ChainCode)
	if err != nil {
		return nil, err
	}

	child := &ExtendedKey{
		ChainCode:   chainCode,
		Depth:       k.Depth + 1,
		ChildNumber: i,
	}
	copy(child.Fingerprint[:], rmd160sha256(parentPub))

	var ilScalar btcec.ModNScalar
	ilScalar.SetByteSlice(il)

	if k.IsPrivate() {
		// child = parse256(IL) + k mod n
		var parent btcec.ModNScalar
		parent.SetByteSlice(k.KeyData)
		ilScalar.Add(&parent)
		if ilScalar.IsZero() {
			return nil, ErrShaKeyInvalid
		}
		b := ilScalar.Bytes()
		child.KeyData = b[:]
		child.Version = k.Version
		return child, nil
	}

	// child = point(parse256(IL)) + K
	parentKey, err := btcec.ParsePubKey(k.KeyData)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKey, err.Error())
	}
	var ilPoint, parentPoint, sum btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&ilScalar, &ilPoint)
	parentKey.AsJacobian(&parentPoint)
	btcec.AddNonConst(&ilPoint, &parentPoint, &sum)
	if sum.Z.Normalize().IsZero() {
		return nil, ErrShaKeyInvalid
	}
	sum.ToAffine()
	child.KeyData = btcec.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed()
	child.Version = k.Version.ToPublic()
	return child, nil
}

// Derive returns the descendant at the given index path
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	var err error
	extKey := k
	for depth, i := range path {
		extKey, err = extKey.Child(i)
		if err != nil {
			return nil, errors.Wrapf(ErrDerivingChild, "index %d at depth %d: %v", i, depth+1, err)
		}
	}
	return extKey, nil
}

// DerivePath parses a path such as m/44'/60'/0'/0/0 and derives it
func (k *ExtendedKey) DerivePath(path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.Derive(indices)
}

// Public returns the extended public key for k.  A public key is returned
// unaltered.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return &ExtendedKey{
		Version:     k.Version.ToPublic(),
		KeyData:     pub,
		ChainCode:   k.ChainCode,
		Fingerprint: k.Fingerprint,
		Depth:       k.Depth,
		ChildNumber: k.ChildNumber,
	}, nil
}

// PrivateKey returns the 32-byte private scalar
func (k *ExtendedKey) PrivateKey() ([]byte, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	out := make([]byte, 32)
	copy(out[32-len(k.KeyData):], k.KeyData)
	return out, nil
}

// MarshalBinary encodes the key as version || depth || parent fingerprint ||
// child number || chain code || key data || checksum
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, serializedKeyLen+4)
	out = append(out, k.Version[:]...)
	out = append(out, k.Depth)
	out = append(out, k.Fingerprint[:]...)
	out = binary.BigEndian.AppendUint32(out, k.ChildNumber)
	out = append(out, k.ChainCode...)
	if k.IsPrivate() {
		out = append(out, 0x00)
		out = append(out, make([]byte, 32-len(k.KeyData))...)
		out = append(out, k.KeyData...)
	} else {
		out = append(out, k.KeyData...)
	}
	if len(out) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}
	return append(out, doubleSha256(out)[:4]...), nil
}

func (k *ExtendedKey) String() string {
	bin, err := k.MarshalBinary()
	if err != nil {
		return ""
	}
	return base58.Encode(bin)
}

// pubKeyBytes returns the compressed public key for k
func (k *ExtendedKey) pubKeyBytes() ([]byte, error) {
	if !k.IsPrivate() {
		return k.KeyData, nil
	}
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(k.KeyData); overflow || s.IsZero() {
		return nil, ErrInvalidKey
	}
	_, pub := btcec.PrivKeyFromBytes(k.KeyData)
	return pub.SerializeCompressed(), nil
}

// UnmarshalBinary decodes a serialized extended key and checks its checksum
// and key material
func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+4 {
		return ErrInvalidKeyLen
	}

	payload := data[:len(data)-4]
	checkSum := data[len(data)-4:]
	if !bytes.Equal(checkSum, doubleSha256(payload)[:4]) {
		return ErrBadChecksum
	}

	var version KeyVersion
	copy(version[:], payload[:4])
	depth := payload[4]
	var fingerprint [4]byte
	copy(fingerprint[:], payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])
	chainCode := append([]byte(nil), payload[13:45]...)
	keyData := append([]byte(nil), payload[45:78]...)

	// private key data starts with 0x00, compressed points with 0x02 or 0x03
	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}

	if isPrivate {
		keyData = keyData[1:]
		var s btcec.ModNScalar
		if overflow := s.SetByteSlice(keyData); overflow || s.IsZero() {
			return ErrInvalidKey
		}
	} else if _, err := btcec.ParsePubKey(keyData); err != nil {
		return errors.Wrap(ErrInvalidKey, err.Error())
	}

	k.Version = version
	k.KeyData = keyData
	k.ChainCode = chainCode
	k.Fingerprint = fingerprint
	k.Depth = depth
	k.ChildNumber = childNumber
	return nil
}
