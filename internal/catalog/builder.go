package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Builder assembles category and item rows into a bulk-indexing payload for
// one target index.
type Builder struct {
	index string
}

func NewBuilder(index string) *Builder {
	return &Builder{index: index}
}

// Bulk is the assembled newline-delimited payload plus its document counts.
// CategoryCount and ProductCount report the fetched rows; TotalCount is the
// number of documents actually emitted (payload line count / 2).
type Bulk struct {
	Payload       []byte
	CategoryCount int
	ProductCount  int
	TotalCount    int
}

// Build walks the category tree pre-order from the roots, emits one document
// per visited category, then one per item with its resolved ancestor chain and
// sale price. Each group is re-sorted by numeric id ascending, categories come
// before products, and every document serializes as a header line followed by
// a body line, with a trailing newline at the end.
func (b *Builder) Build(categories []Category, items []Item) (Bulk, error) {
	h := NewHierarchy(categories)

	categoryDocs := make([]Document, 0, len(categories))
	h.Walk(func(c Category) {
		categoryDocs = append(categoryDocs, newCategoryDocument(b.index, c))
	})

	productDocs := make([]Document, 0, len(items))
	for _, it := range items {
		var chain Chain
		if it.CategoryID != nil {
			chain = h.Chain(*it.CategoryID)
		}
		productDocs = append(productDocs, newProductDocument(b.index, it, chain))
	}

	sort.SliceStable(categoryDocs, func(i, j int) bool { return categoryDocs[i].ID < categoryDocs[j].ID })
	sort.SliceStable(productDocs, func(i, j int) bool { return productDocs[i].ID < productDocs[j].ID })

	var buf bytes.Buffer
	for _, d := range append(categoryDocs, productDocs...) {
		if err := writeDocument(&buf, d); err != nil {
			return Bulk{}, err
		}
	}

	return Bulk{
		Payload:       buf.Bytes(),
		CategoryCount: len(categories),
		ProductCount:  len(items),
		TotalCount:    len(categoryDocs) + len(productDocs),
	}, nil
}

func writeDocument(buf *bytes.Buffer, d Document) error {
	header, err := json.Marshal(d.Action)
	if err != nil {
		return fmt.Errorf("marshal bulk header %q: %w", d.Action.Index.ID, err)
	}
	body, err := json.Marshal(d.Source)
	if err != nil {
		return fmt.Errorf("marshal bulk body %q: %w", d.Action.Index.ID, err)
	}
	buf.Write(header)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')
	return nil
}
