package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository implements Repository over the relational store.
type PostgresRepository struct {
	db *sql.DB
}

const (
	// The ORDER BY is load-bearing: the hierarchy index preserves input order
	// per parent, which drives the pre-order category emission.
	listCategoriesQuery = `
		SELECT id, name, parent_id, image, slug, icon_image, featured, position
		FROM categories
		ORDER BY parent_id, position
	`
	listItemsQuery = `
		SELECT i.id, i.name, i.image, i.price, i.discount, i.discount_type,
		       i.status, i.avg_rating, i.rating_count, i.slug, i.is_approved,
		       i.try_and_buy, i.gender, i.age_group, i.category_id, i.variations, i.category_ids,
		       c1.name AS category_name,
		       c2.name AS subcategory_name,
		       c3.name AS subsubcategory_name
		FROM items i
		LEFT JOIN categories c1 ON c1.id = i.category_id AND c1.position = 0
		LEFT JOIN categories c2 ON c2.id = i.category_id AND c2.position = 1
		LEFT JOIN categories c3 ON c3.id = i.category_id AND c3.position = 2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Categories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Items(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, listItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(scanner rowScanner) (Category, error) {
	c := Category{}
	var (
		image     sql.NullString
		slug      sql.NullString
		iconImage sql.NullString
		featured  sql.NullInt64
	)
	if err := scanner.Scan(
		&c.ID,
		&c.Name,
		&c.ParentID,
		&image,
		&slug,
		&iconImage,
		&featured,
		&c.Position,
	); err != nil {
		return Category{}, err
	}
	if image.Valid {
		c.Image = &image.String
	}
	if slug.Valid {
		c.Slug = &slug.String
	}
	if iconImage.Valid {
		c.IconImage = &iconImage.String
	}
	if featured.Valid {
		v := int(featured.Int64)
		c.Featured = &v
	}
	return c, nil
}

func scanItem(scanner rowScanner) (Item, error) {
	it := Item{}
	var (
		image           sql.NullString
		price           sql.NullString
		discount        sql.NullString
		discountType    sql.NullString
		status          sql.NullString
		avgRating       sql.NullString
		ratingCount     sql.NullString
		slug            sql.NullString
		isApproved      sql.NullString
		tryAndBuy       sql.NullString
		gender          sql.NullString
		ageGroup        sql.NullString
		categoryID      sql.NullInt64
		variations      sql.NullString
		categoryIDs     sql.NullString
		categoryName    sql.NullString
		subcategoryName sql.NullString
		subsubName      sql.NullString
	)
	if err := scanner.Scan(
		&it.ID,
		&it.Name,
		&image,
		&price,
		&discount,
		&discountType,
		&status,
		&avgRating,
		&ratingCount,
		&slug,
		&isApproved,
		&tryAndBuy,
		&gender,
		&ageGroup,
		&categoryID,
		&variations,
		&categoryIDs,
		&categoryName,
		&subcategoryName,
		&subsubName,
	); err != nil {
		return Item{}, err
	}

	it.Price = price.String
	it.Discount = discount.String
	it.DiscountType = discountType.String
	it.Status = status.String
	it.Slug = slug.String
	if image.Valid {
		it.Image = &image.String
	}
	if avgRating.Valid {
		it.AvgRating = &avgRating.String
	}
	if ratingCount.Valid {
		it.RatingCount = &ratingCount.String
	}
	if isApproved.Valid {
		it.IsApproved = &isApproved.String
	}
	if tryAndBuy.Valid {
		it.TryAndBuy = &tryAndBuy.String
	}
	if gender.Valid {
		it.Gender = &gender.String
	}
	if ageGroup.Valid {
		it.AgeGroup = &ageGroup.String
	}
	if categoryID.Valid {
		v := int(categoryID.Int64)
		it.CategoryID = &v
	}
	if variations.Valid {
		it.Variations = &variations.String
	}
	if categoryIDs.Valid {
		it.CategoryIDs = &categoryIDs.String
	}
	if categoryName.Valid {
		it.CategoryName = &categoryName.String
	}
	if subcategoryName.Valid {
		it.SubcategoryName = &subcategoryName.String
	}
	if subsubName.Valid {
		it.SubsubcategoryName = &subsubName.String
	}
	return it, nil
}
