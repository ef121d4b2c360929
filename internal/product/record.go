// Package product turns the product records carried in the chat context
// into display rows.
package product

import (
	"fmt"
	"strconv"
)

// Field names used by the recommendation service for each product.
const (
	FieldName            = "Product Name"
	FieldFeatures        = "Features"
	FieldCategory        = "Category"
	FieldBrand           = "Brand"
	FieldPrice           = "Price"
	FieldSpecifications  = "Specifications"
	FieldPopularityScore = "Popularity Score"
	FieldUserReviews     = "User Reviews"
)

// Record is one product as sent by the service. Values are opaque.
type Record map[string]any

// Field returns the display form of key, or "" when the key is missing.
func (r Record) Field(key string) string {
	return displayValue(r[key])
}

// RecordsFrom converts a decoded JSON array into records. Elements that are
// not objects are skipped. It never returns nil.
func RecordsFrom(v any) []Record {
	switch items := v.(type) {
	case []Record:
		return append([]Record{}, items...)
	case []map[string]any:
		out := make([]Record, 0, len(items))
		for _, item := range items {
			out = append(out, Record(item))
		}
		return out
	case []any:
		out := make([]Record, 0, len(items))
		for _, item := range items {
			switch m := item.(type) {
			case map[string]any:
				out = append(out, Record(m))
			case Record:
				out = append(out, m)
			}
		}
		return out
	default:
		return []Record{}
	}
}

func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
