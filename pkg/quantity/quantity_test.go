package quantity

import (
	"Recipe-Book-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWholeNumber(t *testing.T) {
	assert.Equal(t, "100", FromInt(100).String())
	assert.Equal(t, "1", FromFraction(2, 2).String())
}

func TestStringNeatFraction(t *testing.T) {
	assert.Equal(t, "1/2", FromFraction(1, 2).String())
	assert.Equal(t, "1/3", FromFraction(1, 3).String())
	assert.Equal(t, "3/4", FromFraction(3, 4).String())
	assert.Equal(t, "7/10", FromFraction(7, 10).String())
}

func TestStringFallsBackToDecimal(t *testing.T) {
	// improper fraction: numerator not smaller than denominator
	assert.Equal(t, "1.5", FromFraction(3, 2).String())
	// denominator too large for a neat fraction
	assert.Equal(t, "0.917", FromFraction(11, 12).String())
	assert.Equal(t, "0.333", FromFraction(333, 1000).String())
}

func TestParse(t *testing.T) {
	a, err := Parse("0.5")
	require.NoError(t, err)
	assert.Equal(t, "1/2", a.String())

	a, err = Parse("500")
	require.NoError(t, err)
	assert.Equal(t, "500", a.String())

	_, err = Parse("half a cup")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestScaleIdentity(t *testing.T) {
	a := FromFraction(7, 3)
	s := FromInt(4)
	got, err := Scale(a, s, s)
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestScaleRoundTrip(t *testing.T) {
	a := FromFraction(500, 1)
	s1 := FromInt(4)
	s2 := FromFraction(3, 2)

	down, err := Scale(a, s1, s2)
	require.NoError(t, err)
	back, err := Scale(down, s2, s1)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestScaleBreadScenario(t *testing.T) {
	// 500 g flour for 4 servings
	flour := FromInt(500)
	servings := FromInt(4)

	half, err := Scale(flour, servings, FromInt(2))
	require.NoError(t, err)
	assert.Equal(t, "250", half.String())

	more, err := Scale(flour, servings, FromInt(6))
	require.NoError(t, err)
	assert.Equal(t, "750", more.String())

	single, err := Scale(flour, servings, FromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "125", single.String())
}

func TestScaleToThird(t *testing.T) {
	got, err := Scale(FromInt(1), FromInt(3), FromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "1/3", got.String())
}

func TestScaleZeroValueAmount(t *testing.T) {
	_, err := Scale(Amount{}, FromInt(4), FromInt(2))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestScaleInvalidServings(t *testing.T) {
	a := FromInt(1)

	_, err := Scale(a, Amount{}, FromInt(2))
	assert.ErrorIs(t, err, domain.ErrInvalidServings)

	_, err = Scale(a, FromInt(0), FromInt(2))
	assert.ErrorIs(t, err, domain.ErrInvalidServings)

	_, err = Scale(a, FromInt(4), FromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidServings)
}
