package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// defaultImage is the sentinel filename used when a row has no image.
const defaultImage = "def.png"

// Action is the bulk operation header line for one document.
type Action struct {
	Index ActionIndex `json:"index"`
}

type ActionIndex struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// Document pairs a bulk header with its source body. ID keeps the numeric row
// id so the final assembly can sort each group ascending.
type Document struct {
	ID     int
	Action Action
	Source any
}

// CategorySource is the indexed shape of one category.
type CategorySource struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Image    string `json:"image"`
}

// ProductSource is the indexed shape of one item. Numeric and boolean fields
// are stored as strings; the three ancestor names stay null when unresolved.
type ProductSource struct {
	Type               string          `json:"type"`
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Image              string          `json:"image"`
	Price              string          `json:"price"`
	Discount           string          `json:"discount"`
	DiscountType       string          `json:"discount_type"`
	Status             string          `json:"status"`
	AvgRating          string          `json:"avg_rating"`
	RatingCount        string          `json:"rating_count"`
	Slug               string          `json:"slug"`
	IsApproved         string          `json:"is_approved"`
	TryAndBuy          string          `json:"try_and_buy"`
	Gender             string          `json:"gender"`
	AgeGroup           json.RawMessage `json:"age_group,omitempty"`
	CategoryID         *string         `json:"category_id,omitempty"`
	CategoryName       *string         `json:"category_name"`
	SubcategoryName    *string         `json:"subcategory_name"`
	SubsubcategoryName *string         `json:"subsubcategory_name"`
	Variations         json.RawMessage `json:"variations"`
	SalePrice          string          `json:"sale_price"`
}

// typeForPosition maps the depth marker to the document type label. Anything
// outside 0/1/2 falls back to subcategory.
func typeForPosition(position int) string {
	switch position {
	case 0:
		return "category"
	case 1:
		return "subcategory"
	case 2:
		return "subsubcategory"
	default:
		return "subcategory"
	}
}

func newCategoryDocument(index string, c Category) Document {
	return Document{
		ID:     c.ID,
		Action: Action{Index: ActionIndex{Index: index, ID: "cat_" + strconv.Itoa(c.ID)}},
		Source: CategorySource{
			Type:     typeForPosition(c.Position),
			ID:       strconv.Itoa(c.ID),
			Name:     c.Name,
			ParentID: strconv.Itoa(c.ParentID),
			Image:    coalesce(c.Image, defaultImage),
		},
	}
}

func newProductDocument(index string, it Item, chain Chain) Document {
	src := ProductSource{
		Type:               "product",
		ID:                 strconv.Itoa(it.ID),
		Name:               it.Name,
		Image:              coalesce(it.Image, defaultImage),
		Price:              it.Price,
		Discount:           it.Discount,
		DiscountType:       it.DiscountType,
		Status:             it.Status,
		AvgRating:          coalesce(it.AvgRating, "0.00000000000000"),
		RatingCount:        coalesce(it.RatingCount, "0"),
		Slug:               it.Slug,
		IsApproved:         coalesce(it.IsApproved, "1"),
		TryAndBuy:          coalesce(it.TryAndBuy, "0"),
		Gender:             coalesce(it.Gender, "unisex"),
		CategoryName:       chain.CategoryName,
		SubcategoryName:    chain.SubcategoryName,
		SubsubcategoryName: chain.SubsubcategoryName,
		Variations:         normalizeVariations(it.Variations),
		SalePrice:          SalePrice(it.Price, it.Discount, it.DiscountType).String(),
	}
	if it.AgeGroup != nil {
		src.AgeGroup = normalizeAgeGroup(*it.AgeGroup)
	}
	if it.CategoryID != nil {
		id := strconv.Itoa(*it.CategoryID)
		src.CategoryID = &id
	}
	return Document{
		ID:     it.ID,
		Action: Action{Index: ActionIndex{Index: index, ID: "prod_" + strconv.Itoa(it.ID)}},
		Source: src,
	}
}

// coalesce mirrors the loose `value || default` the documents were historically
// built with: nil and empty string both fall back.
func coalesce(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// SalePrice applies the discount to the price and returns the resulting sale
// price: percent discounts subtract price*discount/100, amount discounts
// subtract the discount itself, any other type leaves the price unchanged.
// The result is clamped at zero and rounded to the cent, ties away from zero.
// Non-numeric input counts as zero.
func SalePrice(price, discount, discountType string) decimal.Decimal {
	p := parseDecimal(price)
	sale := p

	switch discountType {
	case "percent":
		sale = p.Sub(p.Mul(parseDecimal(discount)).Shift(-2))
	case "amount":
		sale = p.Sub(parseDecimal(discount))
	}

	if sale.IsNegative() {
		sale = decimal.Zero
	}
	return sale.Round(2)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeAgeGroup parses the stored value as JSON; a value that does not
// parse is wrapped into a single-element array instead of failing the export.
func normalizeAgeGroup(raw string) json.RawMessage {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	wrapped, _ := json.Marshal([]string{raw})
	return wrapped
}

// normalizeVariations passes the stored payload through unchanged, defaulting
// to an empty array when the column is null, empty, or not valid JSON.
func normalizeVariations(raw *string) json.RawMessage {
	if raw == nil || *raw == "" || !json.Valid([]byte(*raw)) {
		return json.RawMessage("[]")
	}
	return json.RawMessage(*raw)
}
