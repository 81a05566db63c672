package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveReveal(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	fromA := PairedResponse{ResponderID: a, ResponseText: "a"}
	fromB := PairedResponse{ResponderID: b, ResponseText: "b"}

	state, mine, theirs := ResolveReveal(a, b, nil)
	assert.Equal(t, RevealUnanswered, state)
	assert.Nil(t, mine)
	assert.Nil(t, theirs)

	state, mine, theirs = ResolveReveal(a, b, []PairedResponse{fromA})
	assert.Equal(t, RevealWaiting, state)
	assert.Equal(t, "a", mine.ResponseText)
	assert.Nil(t, theirs)

	state, mine, theirs = ResolveReveal(b, a, []PairedResponse{fromA})
	assert.Equal(t, RevealUnanswered, state)
	assert.Nil(t, mine)
	assert.Equal(t, "a", theirs.ResponseText)

	for _, order := range [][]PairedResponse{{fromA, fromB}, {fromB, fromA}} {
		state, mine, theirs = ResolveReveal(a, b, order)
		assert.Equal(t, RevealRevealed, state)
		assert.Equal(t, "a", mine.ResponseText)
		assert.Equal(t, "b", theirs.ResponseText)
	}
}

func TestCouplePartnerOf(t *testing.T) {
	c := Couple{ID: uuid.New(), PartnerAID: uuid.New(), PartnerBID: uuid.New()}

	p, ok := c.PartnerOf(c.PartnerAID)
	assert.True(t, ok)
	assert.Equal(t, c.PartnerBID, p)

	_, ok = c.PartnerOf(uuid.New())
	assert.False(t, ok)
	assert.True(t, c.HasMember(c.PartnerBID))
}
