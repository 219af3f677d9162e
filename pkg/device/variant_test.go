package device

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "PHX/HPT", VariantPHX.String())
	assert.Equal(t, "STX", VariantSTX.String())
	assert.Equal(t, "KRK", VariantKRK.String())
	assert.Equal(t, "", VariantUnknown.String())
	assert.Equal(t, "Variant(42)", Variant(42).String())
}

func TestVariant_IsKnown(t *testing.T) {
	for _, v := range Variants {
		assert.True(t, v.IsKnown(), v.String())
	}
	assert.False(t, VariantUnknown.IsKnown())
	assert.False(t, Variant(42).IsKnown())
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"PHX/HPT", VariantPHX, false},
		{"PHX", VariantPHX, false},
		{"HPT", VariantPHX, false},
		{"STX", VariantSTX, false},
		{"KRK", VariantKRK, false},
		{"stx", VariantUnknown, true},
		{"", VariantUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariant_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Variant{"a": VariantPHX, "b": VariantUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"PHX/HPT","b":"unknown"}`, string(b))

	var got map[string]Variant
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, VariantPHX, got["a"])
	assert.Equal(t, VariantUnknown, got["b"])

	assert.Error(t, json.Unmarshal([]byte(`"XYZ"`), new(Variant)))
}
