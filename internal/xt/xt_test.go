package xt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-forth/forth83/internal/xt"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		pfa, rid uint
	}{
		{0, 0},
		{10000, 9800},
		{64000, 9999},
		{48, 0},
	} {
		token := xt.Pack(tc.pfa, tc.rid)
		pfa, rid := xt.Unpack(token)
		assert.Equal(t, tc.pfa, pfa, "pfa round-trip for %v", tc)
		assert.Equal(t, tc.rid, rid, "rid round-trip for %v", tc)
	}
}

func TestUnpackMatchesModulo(t *testing.T) {
	token := xt.Pack(123, 9801)
	_, rid := xt.Unpack(token)
	assert.Equal(t, uint(9801), rid)
}
