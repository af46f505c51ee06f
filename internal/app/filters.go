package app

import "sporthub/internal/domain"

// FilterSelection is the category picker state machine the map screen
// drives. It starts with every category selected and can never become
// empty: deselecting the last remaining category is rejected so the
// caller can surface a warning instead of an empty map.
//
// Not safe for concurrent use; each consumer owns its own selection.
type FilterSelection struct {
	selected map[domain.Category]bool
}

func NewFilterSelection() *FilterSelection {
	f := &FilterSelection{}
	f.Reset()
	return f
}

// Toggle adds the category when absent and removes it when present,
// except that removing the only selected category returns
// domain.ErrLastCategory and leaves the selection unchanged.
func (f *FilterSelection) Toggle(c domain.Category) error {
	if f.selected[c] {
		if len(f.selected) == 1 {
			return domain.ErrLastCategory
		}
		delete(f.selected, c)
		return nil
	}
	f.selected[c] = true
	return nil
}

// Reset restores the full category set.
func (f *FilterSelection) Reset() {
	f.selected = make(map[domain.Category]bool, 5)
	for _, c := range domain.AllCategories() {
		f.selected[c] = true
	}
}

func (f *FilterSelection) Has(c domain.Category) bool { return f.selected[c] }

// Selected returns the selected categories in declaration order.
func (f *FilterSelection) Selected() []domain.Category {
	out := make([]domain.Category, 0, len(f.selected))
	for _, c := range domain.AllCategories() {
		if f.selected[c] {
			out = append(out, c)
		}
	}
	return out
}
