package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	assert.Nil(t, Render(nil))
	assert.Nil(t, Render([]Record{}))
}

func TestRender_AllFields(t *testing.T) {
	items := []Record{{
		"Product Name":     "Galaxy S23",
		"Features":         "AMOLED display",
		"Category":         "Smartphone",
		"Brand":            "Samsung",
		"Price":            float64(899),
		"Specifications":   "256GB",
		"Popularity Score": float64(87),
		"User Reviews":     "Great camera",
	}}

	rows := Render(items)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{
		Name:            "Galaxy S23",
		Features:        "AMOLED display",
		Category:        "Smartphone",
		Brand:           "Samsung",
		Price:           "899",
		Specifications:  "256GB",
		PopularityScore: "87",
		UserReviews:     "Great camera",
	}, rows[0])
	assert.Equal(t, []string{
		"Galaxy S23 - AMOLED display",
		"Category: Smartphone, Brand: Samsung, Price: $899",
		"Specifications: 256GB",
		"Rating: 87, User Review: Great camera",
	}, rows[0].Lines())
}

func TestRender_MissingFieldsAreEmpty(t *testing.T) {
	rows := Render([]Record{{"Product Name": "X"}})
	require.Len(t, rows, 1)
	assert.Equal(t, "X", rows[0].Name)
	assert.Empty(t, rows[0].Price)
	assert.Empty(t, rows[0].UserReviews)
	assert.Equal(t, "Category: , Brand: , Price: $", rows[0].Lines()[1])
}

func TestRecordsFrom(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 0},
		{name: "not a list", in: "items", want: 0},
		{name: "decoded json array", in: []any{map[string]any{"Product Name": "A"}, map[string]any{}}, want: 2},
		{name: "skips non objects", in: []any{map[string]any{"Product Name": "A"}, 3, "x"}, want: 1},
		{name: "typed maps", in: []map[string]any{{"Product Name": "A"}}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecordsFrom(tt.in)
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestRecord_FieldFormatting(t *testing.T) {
	r := Record{"Price": 1299.99, "Popularity Score": 90, "Brand": nil}
	assert.Equal(t, "1299.99", r.Field(FieldPrice))
	assert.Equal(t, "90", r.Field(FieldPopularityScore))
	assert.Equal(t, "", r.Field(FieldBrand))
	assert.Equal(t, "", r.Field(FieldCategory))
}
