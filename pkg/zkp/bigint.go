package zkp

import "math/big"

// DecodeBigEndian decodes an unsigned big-endian byte string into a
// big.Int. Both the empty byte string and a single 0x00 byte decode to
// zero; math/big's SetBytes already treats leading zero bytes as
// insignificant, so no special-casing is required beyond documenting the
// accepted zero encodings.
func DecodeBigEndian(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// EncodeBigEndian returns the minimal unsigned big-endian encoding of n: no
// sign byte, no leading zero bytes. Zero encodes to the empty byte string,
// matching big.Int.Bytes' own convention.
func EncodeBigEndian(n *big.Int) []byte {
	return n.Bytes()
}
