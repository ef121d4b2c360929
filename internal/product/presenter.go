package product

import "fmt"

// Heading is shown above a non-empty product listing.
const Heading = "Recommended Gadgets:"

// Row is the display form of one product.
type Row struct {
	Name            string `json:"name"`
	Features        string `json:"features"`
	Category        string `json:"category"`
	Brand           string `json:"brand"`
	Price           string `json:"price"`
	Specifications  string `json:"specifications"`
	PopularityScore string `json:"popularity_score"`
	UserReviews     string `json:"user_reviews"`
}

// Lines returns the row as the lines shown to the user.
func (r Row) Lines() []string {
	return []string{
		fmt.Sprintf("%s - %s", r.Name, r.Features),
		fmt.Sprintf("Category: %s, Brand: %s, Price: $%s", r.Category, r.Brand, r.Price),
		fmt.Sprintf("Specifications: %s", r.Specifications),
		fmt.Sprintf("Rating: %s, User Review: %s", r.PopularityScore, r.UserReviews),
	}
}

// Render builds one row per item. An empty listing renders nothing.
func Render(items []Record) []Row {
	if len(items) == 0 {
		return nil
	}
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{
			Name:            item.Field(FieldName),
			Features:        item.Field(FieldFeatures),
			Category:        item.Field(FieldCategory),
			Brand:           item.Field(FieldBrand),
			Price:           item.Field(FieldPrice),
			Specifications:  item.Field(FieldSpecifications),
			PopularityScore: item.Field(FieldPopularityScore),
			UserReviews:     item.Field(FieldUserReviews),
		}
	}
	return rows
}
