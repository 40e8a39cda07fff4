// Package zkp implements the Chaum-Pedersen two-generator zero-knowledge
// identification protocol over a prime-order subgroup of (Z/pZ)*.
package zkp

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// GroupParams holds the generators and modulus/order for one Chaum-Pedersen
// group profile. A and B are generators of the subgroup of order Q modulo
// the prime P, where Q divides P-1.
type GroupParams struct {
	A *big.Int
	B *big.Int
	P *big.Int
	Q *big.Int
}

// DefaultGroup returns the reference 2048-bit group profile, reproduced
// byte-for-byte from the reference group profile. In this profile B equals
// A, which collapses the joint verification to a single effective equation
// (see IndependentGroup).
func DefaultGroup() *GroupParams {
	p := hexBig(
		"AD107E1E9123A9D0D660FAA79559C51FA20D64E5683B9FD1B54B1597B61D0A7" +
			"5E6FA141DF95A56DBAF9A3C407BA1DF15EB3D688A309C180E1DE6B85A1274A0" +
			"A66D3F8152AD6AC2129037C9EDEFDA4DF8D91E8FEF55B7394B7AD5B7D0B6C12" +
			"207C9F98D11ED34DBF6C6BA0B2C8BBC27BE6A00E0A0B9C49708B3BF8A317091" +
			"883681286130BC8985DB1602E714415D9330278273C7DE31EFDC7310F7121F" +
			"D5A07415987D9ADC0A486DCDF93ACC44328387315D75E198C641A480CD86A1" +
			"B9E587E8BE60E69CC928B2B9C52172E413042E9B23F10B0E16E79763C9B53D" +
			"CF4BA80A29E3FB73C16B8E75B97EF363E2FFA31F71CF9DE5384E71B81C0AC4" +
			"DFFE0C10E64F")
	q := hexBig("801C0D34C58D93FE997177101F80535A4738CEBCBF389A99B36371EB")
	a := hexBig(
		"AC4032EF4F2D9AE39DF30B5C8FFDAC506CDEBE7B89998CAF74866A08CFE4FFE" +
			"3A6824A4E10B9A6F0DD921F01A70C4AFAAB739D7700C29F52C57DB17C620A86" +
			"52BE5E9001A8D66AD7C17669101999024AF4D027275AC1348BB8A762D0521BC" +
			"98AE247150422EA1ED409939D54DA7460CDB5F6C6B250717CBEF180EB34118E" +
			"98D119529A45D6F834566E3025E316A330EFBB77A86F0C1AB15B051AE3D428C" +
			"8F8ACB70A8137150B8EEB10E183EDD19963DDD9E263E4770589EF6AA21E7F5F" +
			"2FF381B539CCE3409D13CD566AFBB48D6C019181E1BCFE94B30269EDFE72FE9" +
			"B6AA4BD7B5A0F1C71CFFF4C19C418E1F6EC017981BC087F2A7065B384B890D3" +
			"191F2BFA")
	return &GroupParams{A: a, B: a, P: p, Q: q}
}

// IndependentGroup returns a profile that reuses the reference P and Q but
// derives a second generator B via a nothing-up-my-sleeve hash-to-group
// construction, strengthening the scheme to genuinely require both
// equations to hold (see DESIGN.md's decision on the b-independence open
// question). Because B is produced by hashing a fixed public seed into
// [0, p) and projecting the result into the order-q subgroup, nobody -
// including the profile's author - can write down log_A(B): finding it
// would mean solving a discrete log instance in the subgroup.
func IndependentGroup() *GroupParams {
	g := DefaultGroup()
	cofactor := new(big.Int).Div(new(big.Int).Sub(g.P, big.NewInt(1)), g.Q)
	one := big.NewInt(1)
	seed := []byte("chaum-pedersen/independent-generator/b")
	for i := 0; ; i++ {
		h := sha256.New()
		h.Write(seed)
		h.Write([]byte{byte(i)})
		candidate := new(big.Int).SetBytes(h.Sum(nil))
		candidate.Mod(candidate, g.P)
		b := new(big.Int).Exp(candidate, cofactor, g.P)
		if b.Cmp(one) > 0 && ModExp(b, g.Q, g.P).Cmp(one) == 0 {
			return &GroupParams{A: g.A, B: b, P: g.P, Q: g.Q}
		}
	}
}

// Validate checks the structural invariants a GroupParams value must
// satisfy: 1 < a,b < p, and a^q = b^q = 1 (mod p), i.e. both generators
// lie in the subgroup of order q.
func (g *GroupParams) Validate() error {
	one := big.NewInt(1)
	if g.P == nil || g.Q == nil || g.A == nil || g.B == nil {
		return fmt.Errorf("zkp: group parameters must be non-nil")
	}
	if g.A.Cmp(one) <= 0 || g.A.Cmp(g.P) >= 0 {
		return fmt.Errorf("zkp: generator a out of range (1, p)")
	}
	if g.B.Cmp(one) <= 0 || g.B.Cmp(g.P) >= 0 {
		return fmt.Errorf("zkp: generator b out of range (1, p)")
	}
	if ModExp(g.A, g.Q, g.P).Cmp(one) != 0 {
		return fmt.Errorf("zkp: a^q != 1 (mod p), a is not in the order-q subgroup")
	}
	if ModExp(g.B, g.Q, g.P).Cmp(one) != 0 {
		return fmt.Errorf("zkp: b^q != 1 (mod p), b is not in the order-q subgroup")
	}
	return nil
}

func hexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("zkp: invalid hex constant: " + s)
	}
	return n
}
