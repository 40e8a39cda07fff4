package zkp

import "math/big"

// ModExp returns base^exp mod m. It accepts arbitrarily large operands,
// delegating to math/big's constant-memory modular exponentiation.
func ModExp(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// Response computes s such that s = k - c*x (mod q) and 0 <= s < q.
//
// When k >= c*x the ordinary subtraction reduced mod q suffices. When
// k < c*x the naive subtraction goes negative, so the wrap case computes
// q - ((c*x - k) mod q) instead. Both the reduction of k and of c*x are
// taken mod q before comparison, which is the detail two historical
// versions of this computation got wrong: reducing by p instead of q, and
// forgetting to reduce c*x-k by q before subtracting from q. See
// SPEC_FULL.md section 9 for the two-bug history.
func Response(k, c, x, q *big.Int) *big.Int {
	kModQ := new(big.Int).Mod(k, q)
	cx := new(big.Int).Mul(c, x)
	cxModQ := new(big.Int).Mod(cx, q)

	if kModQ.Cmp(cxModQ) >= 0 {
		return new(big.Int).Mod(new(big.Int).Sub(kModQ, cxModQ), q)
	}

	diff := new(big.Int).Sub(cxModQ, kModQ)
	diff.Mod(diff, q)
	if diff.Sign() == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(q, diff)
}

// Verify returns true iff both r1 = a^s * y1^c (mod p) and
// r2 = b^s * y2^c (mod p) hold. Both checks are always evaluated; the
// result is their logical AND with no short-circuit side effects, so a
// caller can never observe which half failed from timing alone.
func Verify(params *GroupParams, y1, y2, r1, r2, c, s *big.Int) bool {
	leftOK := checkEquation(params.A, y1, r1, c, s, params.P)
	rightOK := checkEquation(params.B, y2, r2, c, s, params.P)
	return leftOK && rightOK
}

func checkEquation(generator, y, r, c, s, p *big.Int) bool {
	gs := ModExp(generator, s, p)
	yc := ModExp(y, c, p)
	expected := new(big.Int).Mul(gs, yc)
	expected.Mod(expected, p)
	return expected.Cmp(new(big.Int).Mod(r, p)) == 0
}
