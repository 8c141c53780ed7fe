package catalog

import "sort"

// Hierarchy answers ancestor-chain lookups and pre-order traversal over one
// snapshot of the category table. It owns its indexes; nothing is shared
// between export runs.
type Hierarchy struct {
	byID     map[int]Category
	byParent map[int][]Category
}

// NewHierarchy indexes categories by id and by parent. Input order is
// preserved per parent, so rows must already be sorted by
// (parent_id, position) — the order the categories query produces. Use
// NewHierarchySorted when the source cannot guarantee that.
func NewHierarchy(categories []Category) *Hierarchy {
	h := &Hierarchy{
		byID:     make(map[int]Category, len(categories)),
		byParent: make(map[int][]Category),
	}
	for _, c := range categories {
		h.byID[c.ID] = c
		h.byParent[c.ParentID] = append(h.byParent[c.ParentID], c)
	}
	return h
}

// NewHierarchySorted sorts a copy of the rows by (parent_id, position) before
// indexing. Traversal order depends on this sort, so it is applied explicitly
// instead of trusting the caller.
func NewHierarchySorted(categories []Category) *Hierarchy {
	sorted := make([]Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ParentID != sorted[j].ParentID {
			return sorted[i].ParentID < sorted[j].ParentID
		}
		return sorted[i].Position < sorted[j].Position
	})
	return NewHierarchy(sorted)
}

// Chain resolves up to three ancestor names for a category id. An unknown id
// yields all nils; a dangling parent reference yields nil for that level and
// above. Positions outside 0/1/2 resolve to all nils.
func (h *Hierarchy) Chain(categoryID int) Chain {
	var chain Chain

	current, ok := h.byID[categoryID]
	if !ok {
		return chain
	}

	switch current.Position {
	case 0:
		chain.CategoryName = &current.Name
	case 1:
		chain.SubcategoryName = &current.Name
		if parent, ok := h.byID[current.ParentID]; ok {
			chain.CategoryName = &parent.Name
		}
	case 2:
		chain.SubsubcategoryName = &current.Name
		if parent, ok := h.byID[current.ParentID]; ok {
			chain.SubcategoryName = &parent.Name
			if grandparent, ok := h.byID[parent.ParentID]; ok {
				chain.CategoryName = &grandparent.Name
			}
		}
	}

	return chain
}

// Walk visits every category reachable from the roots (parent id 0) in
// pre-order: a category is always visited before its descendants, siblings in
// index order.
func (h *Hierarchy) Walk(visit func(Category)) {
	var descend func(Category)
	descend = func(c Category) {
		visit(c)
		for _, child := range h.byParent[c.ID] {
			descend(child)
		}
	}
	for _, root := range h.byParent[0] {
		descend(root)
	}
}
