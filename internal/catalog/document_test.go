package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalePrice(t *testing.T) {
	tests := []struct {
		name         string
		price        string
		discount     string
		discountType string
		want         string
	}{
		{"percent", "100", "12.5", "percent", "87.5"},
		{"amount", "80", "15", "amount", "65"},
		{"amount clamped at zero", "50", "60", "amount", "0"},
		{"unknown type keeps price", "100", "0", "other", "100"},
		{"empty type keeps price", "49.99", "10", "", "49.99"},
		{"non-numeric price counts as zero", "abc", "10", "percent", "0"},
		{"non-numeric discount counts as zero", "100", "n/a", "amount", "100"},
		{"rounds half away from zero", "10", "33.35", "percent", "6.67"},
		{"rounds to cents", "10", "33.4", "percent", "6.66"},
		{"keeps cents exact", "100.10", "0.05", "amount", "100.05"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SalePrice(tc.price, tc.discount, tc.discountType)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNewCategoryDocument(t *testing.T) {
	doc := newCategoryDocument("dev-catalog-index", Category{
		ID: 12, Name: "Tops", ParentID: 3, Position: 1,
	})

	assert.Equal(t, 12, doc.ID)
	assert.Equal(t, "cat_12", doc.Action.Index.ID)
	assert.Equal(t, "dev-catalog-index", doc.Action.Index.Index)

	src, ok := doc.Source.(CategorySource)
	require.True(t, ok)
	assert.Equal(t, "subcategory", src.Type)
	assert.Equal(t, "12", src.ID)
	assert.Equal(t, "3", src.ParentID)
	assert.Equal(t, "def.png", src.Image, "missing image falls back to sentinel")
}

func TestNewCategoryDocument_TypeLabels(t *testing.T) {
	for position, want := range map[int]string{0: "category", 1: "subcategory", 2: "subsubcategory", 7: "subcategory"} {
		doc := newCategoryDocument("idx", Category{ID: 1, Name: "X", Position: position})
		assert.Equal(t, want, doc.Source.(CategorySource).Type, "position %d", position)
	}
}

func TestNewProductDocument_Defaults(t *testing.T) {
	doc := newProductDocument("idx", Item{
		ID:           10,
		Name:         "Sneaker",
		Price:        "100",
		Discount:     "12.5",
		DiscountType: "percent",
		Status:       "1",
		Slug:         "sneaker",
	}, Chain{})

	assert.Equal(t, "prod_10", doc.Action.Index.ID)

	src, ok := doc.Source.(ProductSource)
	require.True(t, ok)
	assert.Equal(t, "product", src.Type)
	assert.Equal(t, "def.png", src.Image)
	assert.Equal(t, "0.00000000000000", src.AvgRating)
	assert.Equal(t, "0", src.RatingCount)
	assert.Equal(t, "1", src.IsApproved)
	assert.Equal(t, "0", src.TryAndBuy)
	assert.Equal(t, "unisex", src.Gender)
	assert.Equal(t, "87.5", src.SalePrice)
	assert.Nil(t, src.CategoryName)
	assert.Nil(t, src.SubcategoryName)
	assert.Nil(t, src.SubsubcategoryName)
	assert.Nil(t, src.CategoryID)
	assert.Nil(t, src.AgeGroup)
	assert.Equal(t, "[]", string(src.Variations))
}

func TestNewProductDocument_Chain(t *testing.T) {
	catID := 4
	doc := newProductDocument("idx", Item{ID: 1, Name: "P", CategoryID: &catID}, Chain{
		CategoryName:       strPtr("Clothing"),
		SubcategoryName:    strPtr("Tops"),
		SubsubcategoryName: strPtr("T-Shirts"),
	})

	src := doc.Source.(ProductSource)
	require.NotNil(t, src.CategoryID)
	assert.Equal(t, "4", *src.CategoryID)
	assert.Equal(t, "Clothing", *src.CategoryName)
	assert.Equal(t, "Tops", *src.SubcategoryName)
	assert.Equal(t, "T-Shirts", *src.SubsubcategoryName)
}

func TestNormalizeAgeGroup(t *testing.T) {
	assert.Equal(t, `["men","women"]`, string(normalizeAgeGroup(`["men","women"]`)))
	assert.Equal(t, `["men"]`, string(normalizeAgeGroup("men")), "invalid JSON wraps into a single-element array")
	assert.Equal(t, `[""]`, string(normalizeAgeGroup("")))
}

func TestNormalizeVariations(t *testing.T) {
	assert.Equal(t, "[]", string(normalizeVariations(nil)))
	assert.Equal(t, "[]", string(normalizeVariations(strPtr(""))))
	assert.Equal(t, "[]", string(normalizeVariations(strPtr("not json"))))
	payload := `[{"sku":"S-1","stock":3}]`
	assert.Equal(t, payload, string(normalizeVariations(&payload)))
}
