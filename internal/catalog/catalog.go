package catalog

// Category is one row of the `categories` table. ParentID 0 marks a root;
// Position is the depth marker (0 = category, 1 = subcategory,
// 2 = subsubcategory).
type Category struct {
	ID        int
	Name      string
	ParentID  int
	Image     *string
	Slug      *string
	IconImage *string
	Featured  *int
	Position  int
}

// Item is one row of the `items` table. Numeric and boolean columns are kept
// as their raw string form because the bulk documents serialize everything as
// strings anyway; pointers mark nullable columns.
type Item struct {
	ID           int
	Name         string
	Image        *string
	Price        string
	Discount     string
	DiscountType string
	Status       string
	AvgRating    *string
	RatingCount  *string
	Slug         string
	IsApproved   *string
	TryAndBuy    *string
	Gender       *string
	AgeGroup     *string
	CategoryID   *int
	Variations   *string
	CategoryIDs  *string

	// Ancestor names as pre-joined by the items query. The builder recomputes
	// them through the hierarchy resolver; both must agree for the same
	// category set.
	CategoryName       *string
	SubcategoryName    *string
	SubsubcategoryName *string
}

// Chain is the resolved ancestor name triple for one category id. Each level
// is nil when it cannot be resolved.
type Chain struct {
	CategoryName       *string `json:"category_name"`
	SubcategoryName    *string `json:"subcategory_name"`
	SubsubcategoryName *string `json:"subsubcategory_name"`
}
