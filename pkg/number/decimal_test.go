package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestParseUint(t *testing.T) {
	valid := map[string]string{
		"0":     "0",
		"12345": "12345",
		"007":   "7",
	}

	for k, v := range valid {
		t.Run(k, func(t *testing.T) {
			d, err := ParseUint(k)
			assert.Equal(t, nil, err)
			assert.Equal(t, v, Format(d))
		})
	}

	big, err := ParseUint("340282366920938463463374607431768211456")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, big.GreaterThan(MaxUint128))

	for _, k := range []string{"", "-1", "+1", "1.5", "1e3", "abc", " 1"} {
		t.Run("invalid "+k, func(t *testing.T) {
			_, err := ParseUint(k)
			assert.Equal(t, ErrNotUint, err)
		})
	}
}

func TestIsUint(t *testing.T) {
	assert.Equal(t, true, IsUint(Decimal("0")))
	assert.Equal(t, true, IsUint(Decimal("100")))
	assert.Equal(t, false, IsUint(Decimal("-1")))
	assert.Equal(t, false, IsUint(Decimal("0.5")))

	// fractions are printed as is, never rounded
	assert.Equal(t, "0.4", Format(Decimal("0.4")))
}

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(Decimal("100"), Decimal("50"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "150", Format(sum))

	sum, err = CheckedAdd(MaxUint128, Decimal("0"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, sum.Equal(MaxUint128))

	_, err = CheckedAdd(MaxUint128, Decimal("1"))
	assert.Equal(t, ErrOverflow, err)
}

func TestCheckedSub(t *testing.T) {
	diff, err := CheckedSub(Decimal("150"), Decimal("150"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "0", Format(diff))

	_, err = CheckedSub(Decimal("150"), Decimal("200"))
	assert.Equal(t, ErrNegative, err)
}
