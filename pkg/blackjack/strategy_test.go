package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasyDealer_ShouldHit(t *testing.T) {
	a := assert.New(t)
	s := EasyDealer{}

	a.Equal("easy", s.Name())
	a.True(s.ShouldHit(handFromString(RoleDealer, "10s,6h")))
	a.True(s.ShouldHit(handFromString(RoleDealer, "As,5h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "As,6h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,7h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,8h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,6h,9d")))
}

func TestHardDealer_ShouldHit(t *testing.T) {
	a := assert.New(t)
	s := HardDealer{}

	a.Equal("hard", s.Name())

	// below 17
	a.True(s.ShouldHit(handFromString(RoleDealer, "10s,6h")))
	a.True(s.ShouldHit(handFromString(RoleDealer, "As,5h")))

	// soft 17
	a.True(s.ShouldHit(handFromString(RoleDealer, "As,6h")))
	a.True(s.ShouldHit(handFromString(RoleDealer, "6h,As")))
	a.True(s.ShouldHit(handFromString(RoleDealer, "As,2h,4d")))
	a.True(s.ShouldHit(handFromString(RoleDealer, "As,Ah,5d")))

	// hard 17
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,7h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "As,6h,10d")))

	// 18 and above, soft or hard
	a.False(s.ShouldHit(handFromString(RoleDealer, "As,7h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,8h")))
	a.False(s.ShouldHit(handFromString(RoleDealer, "As,Kh")))

	// bust
	a.False(s.ShouldHit(handFromString(RoleDealer, "10s,6h,9d")))
}

func TestStrategyFromString(t *testing.T) {
	a := assert.New(t)

	s, err := StrategyFromString("easy")
	a.NoError(err)
	a.Equal(EasyDealer{}, s)

	s, err = StrategyFromString(" HARD ")
	a.NoError(err)
	a.Equal(HardDealer{}, s)

	s, err = StrategyFromString("impossible")
	a.Nil(s)
	a.EqualError(err, "unknown difficulty: impossible")

	a.Equal([]string{"easy", "hard"}, StrategyNames())
}
