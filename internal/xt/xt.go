// Package xt packs and unpacks execution tokens.
//
// An execution token is a single float64 cell encoding both a parameter-field
// address (PFA) and a runtime id (RID): XT = Multiplier*PFA + RID. Because
// RID is always smaller than Multiplier, unpacking is exact for every XT this
// package produces.
package xt

import "math"

// Multiplier separates the parameter-field address from the runtime id
// within a packed execution token.
const Multiplier = 100000

// Pack encodes a parameter-field address and a runtime id into an XT.
func Pack(pfa, rid uint) float64 {
	return float64(pfa)*Multiplier + float64(rid)
}

// Unpack recovers the parameter-field address and runtime id from an XT.
func Unpack(token float64) (pfa, rid uint) {
	pfa = uint(math.Floor(token / Multiplier))
	rid = uint(token) - pfa*Multiplier
	return pfa, rid
}
