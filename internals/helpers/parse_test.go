package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantSet bool
		wantErr bool
	}{
		{"json number", `87`, 87, true, false},
		{"json float", `87.5`, 87.5, true, false},
		{"numeric string", `"87"`, 87, true, false},
		{"numeric string with spaces", `" 87.5 "`, 87.5, true, false},
		{"zero", `0`, 0, true, false},
		{"null stays unset", `null`, 0, false, false},
		{"empty string stays unset", `""`, 0, false, false},
		{"word rejected", `"ochenta"`, 0, false, true},
		{"bool rejected", `true`, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexNumber
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, f.Set)
			assert.Equal(t, tt.want, f.Value)
		})
	}
}

func TestFlexNumberPtr(t *testing.T) {
	var unset FlexNumber
	assert.Nil(t, unset.Ptr())

	set := FlexNumber{Value: 42, Set: true}
	require.NotNil(t, set.Ptr())
	assert.Equal(t, 42.0, *set.Ptr())

	// Ptr hands out a copy, not the internal field.
	p := set.Ptr()
	*p = 99
	assert.Equal(t, 42.0, set.Value)
}

func TestFlexNumberMarshal(t *testing.T) {
	b, err := json.Marshal(FlexNumber{Value: 70, Set: true})
	require.NoError(t, err)
	assert.Equal(t, "70", string(b))

	b, err = json.Marshal(FlexNumber{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
