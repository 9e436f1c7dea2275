// Package signer wraps Stark curve keys behind the signer interfaces of
// next.orly.dev/pkg/interfaces/signer, so that callers written against those
// interfaces can sign exchange messages.
package signer

import (
	orlysigner "next.orly.dev/pkg/interfaces/signer"
)

// I is an alias for the signer interface from next.orly.dev/pkg/interfaces/signer.
type I = orlysigner.I

// Gen is an alias for the Gen interface from next.orly.dev/pkg/interfaces/signer.
type Gen = orlysigner.Gen

var (
	_ I   = (*StarkSigner)(nil)
	_ Gen = (*StarkGen)(nil)
)
