package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceJSONIsANumber(t *testing.T) {
	p, err := ParsePrice("3.49")
	require.NoError(t, err)

	data, err := json.Marshal(WasteRecord{Name: "Milk", Price: p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Milk","price":3.49}`, string(data))
}

func TestPriceUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "number", in: `5`, want: "5.00"},
		{name: "fraction", in: `0.1`, want: "0.10"},
		{name: "quoted string", in: `"2.5"`, want: "2.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPriceAddIsExact(t *testing.T) {
	total := Price{}
	for i := 0; i < 10; i++ {
		total = total.Add(PriceFromFloat(0.1))
	}
	assert.True(t, total.Equal(PriceFromFloat(1)), "got %s", total)
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	_, err := ParsePrice("three")
	assert.Error(t, err)
}
