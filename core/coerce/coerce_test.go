package coerce

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind Kind
		want any
	}{
		{"Range takes first component", "26001 - 7000 lb", KindInt, 26001},
		{"Spaced range", "6001 - 7000 lb", KindInt, 6001},
		{"En dash range", "6001–7000", KindInt, 6001},
		{"Word range", "10 TO 12", KindInt, 10},
		{"Comma list", "26001, 7000, 27223", KindInt, 26001},
		{"Unit suffix", "5620 lb", KindInt, 5620},
		{"Leading text", "approx. 148 in", KindFloat, 148.0},
		{"Decimal", "3.5", KindFloat, 3.5},
		{"Decimal truncated to int", "3.9", KindInt, 3},
		{"Native int", 28, KindInt, 28},
		{"Native float to int", 28.7, KindInt, 28},
		{"Native int to float", 32, KindFloat, 32.0},
		{"JSON number", json.Number("91.4"), KindFloat, 91.4},
		{"No numeric run", "unknown", KindInt, nil},
		{"Beyond 32 bits", "5000000000", KindInt, 5000000000},
		{"Beyond int range", "99999999999999999999", KindInt, nil},
		{"Native beyond int range", 1e30, KindInt, nil},
		{"NaN", math.NaN(), KindFloat, nil},
		{"Not Applicable string", "Not Applicable", KindString, nil},
		{"Not Applicable int", "Not Applicable", KindInt, nil},
		{"Not Applicable case", " not applicable ", KindBool, nil},
		{"Empty string", "", KindString, nil},
		{"Whitespace only", "   ", KindString, nil},
		{"Nil", nil, KindString, nil},
		{"Trim", "  Ford ", KindString, "Ford"},
		{"Number as string", 2024, KindString, "2024"},
		{"Float as string", 6.7, KindString, "6.7"},
		{"Yes", "Yes", KindBool, true},
		{"True upper", "TRUE", KindBool, true},
		{"Explicit no", "No", KindBool, false},
		{"Other text is false", "Optional", KindBool, false},
		{"Empty bool is nil", "", KindBool, nil},
		{"Nil bool", nil, KindBool, nil},
		{"Native bool", false, KindBool, false},
		{"Composite rejected", map[string]any{"a": 1}, KindString, nil},
		{"Unknown kind", "x", Kind("other"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.raw, tt.kind))
		})
	}
}

func TestTypedHelpers(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v := Int("9500")
		if assert.NotNil(t, v) {
			assert.Equal(t, 9500, *v)
		}
		assert.Nil(t, Int("n/a"))
	})

	t.Run("Bool keeps unknown distinct from false", func(t *testing.T) {
		assert.Nil(t, Bool(nil))
		assert.Nil(t, Bool(""))
		v := Bool("no")
		if assert.NotNil(t, v) {
			assert.False(t, *v)
		}
	})

	t.Run("String pointer input", func(t *testing.T) {
		s := " Transit "
		v := String(&s)
		if assert.NotNil(t, v) {
			assert.Equal(t, "Transit", *v)
		}
		var nilStr *string
		assert.Nil(t, String(nilStr))
	})
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(nil))
	assert.True(t, IsSentinel(""))
	assert.True(t, IsSentinel("Not Applicable"))
	assert.True(t, IsSentinel([]byte(" ")))
	assert.False(t, IsSentinel("0"))
	assert.False(t, IsSentinel(0))
}
