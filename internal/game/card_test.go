// internal/game/card_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanFollow(t *testing.T) {
	redFive := &Card{Color: ColorRed, Value: "5"}
	redSkip := &Card{Color: ColorRed, Value: ValueSkip}
	blueFive := &Card{Color: ColorBlue, Value: "5"}
	greenSeven := &Card{Color: ColorGreen, Value: "7"}
	wild := &Card{Color: ColorWild, Value: ValueWild}
	wildDrawFour := &Card{Color: ColorWild, Value: ValueWildDrawFour}

	t.Run("color match", func(t *testing.T) {
		assert.True(t, redSkip.CanFollow(redFive))
		assert.True(t, redFive.CanFollow(redSkip))
	})

	t.Run("value match", func(t *testing.T) {
		assert.True(t, blueFive.CanFollow(redFive))
		assert.True(t, redFive.CanFollow(blueFive))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, greenSeven.CanFollow(redFive))
		assert.False(t, redFive.CanFollow(greenSeven))
	})

	t.Run("wild follows anything and accepts anything", func(t *testing.T) {
		assert.True(t, wild.CanFollow(redFive))
		assert.True(t, redFive.CanFollow(wild))
		assert.True(t, wildDrawFour.CanFollow(greenSeven))
		assert.True(t, greenSeven.CanFollow(wildDrawFour))
		assert.True(t, wild.CanFollow(wildDrawFour))
	})

	t.Run("wild with a chosen color still accepts its color", func(t *testing.T) {
		chosen := &Card{Color: ColorWild, Value: ValueWild}
		chosen.Color = ColorRed
		assert.True(t, redFive.CanFollow(chosen))
		assert.False(t, greenSeven.CanFollow(chosen))
	})
}

func TestIsWild(t *testing.T) {
	assert.True(t, (&Card{Color: ColorWild, Value: ValueWild}).IsWild())
	assert.True(t, (&Card{Color: ColorWild, Value: ValueWildDrawFour}).IsWild())
	assert.False(t, (&Card{Color: ColorRed, Value: ValueSkip}).IsWild())

	// A wild keeps being wild after a color is applied to it.
	chosen := &Card{Color: ColorBlue, Value: ValueWildDrawFour}
	assert.True(t, chosen.IsWild())
}

func TestValidBaseColor(t *testing.T) {
	for _, c := range BaseColors {
		assert.True(t, ValidBaseColor(c))
	}
	assert.False(t, ValidBaseColor(ColorWild))
	assert.False(t, ValidBaseColor(Color("purple")))
	assert.False(t, ValidBaseColor(Color("")))
}
