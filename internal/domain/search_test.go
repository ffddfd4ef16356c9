package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{"", nil, false},
		{"   ", nil, false},
		{"10", ptr(10.0), false},
		{"9.5", ptr(9.5), false},
		{"$12.50", ptr(12.5), false},
		{" 7 ", ptr(7.0), false},
		{"ten", nil, true},
		{"1.2.3", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", FormatPrice(nil))
	assert.Equal(t, "10", FormatPrice(ptr(10.0)))
	assert.Equal(t, "9.5", FormatPrice(ptr(9.5)))
}

func TestSearchCriteria_Summary(t *testing.T) {
	assert.Equal(t, "All products", SearchCriteria{}.Summary())
	assert.True(t, SearchCriteria{}.IsEmpty())

	c := SearchCriteria{Text: "soap", Category: "Beauty", MaxPrice: ptr(10.0)}
	assert.Equal(t, `"soap" · Beauty · <= $10`, c.Summary())
	assert.False(t, c.IsEmpty())

	c = SearchCriteria{MinPrice: ptr(5.0), MaxPrice: ptr(20.0)}
	assert.Equal(t, "$5-$20", c.Summary())
}

func TestSearchCriteria_Value(t *testing.T) {
	c := SearchCriteria{Text: "soap", MinPrice: ptr(2.5), Availability: "In Stock"}
	assert.Equal(t, "soap", c.Value(FieldText))
	assert.Equal(t, "", c.Value(FieldCategory))
	assert.Equal(t, "2.5", c.Value(FieldMinPrice))
	assert.Equal(t, "", c.Value(FieldMaxPrice))
	assert.Equal(t, "In Stock", c.Value(FieldAvailability))
}

func TestPageState_Skip(t *testing.T) {
	assert.Equal(t, 0, PageState{Number: 1, Size: 10}.Skip())
	assert.Equal(t, 10, PageState{Number: 2, Size: 10}.Skip())
	assert.Equal(t, 40, PageState{Number: 5, Size: 10}.Skip())
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "Search", FieldText.String())
	assert.Equal(t, "Min $", FieldMinPrice.String())
	assert.True(t, FieldMaxPrice.IsNumeric())
	assert.False(t, FieldCategory.IsNumeric())
}
