package workout

import (
	"sort"
	"strings"
)

// OrderStore holds a user-defined display order over the exercise catalog.
type OrderStore struct {
	ids []string
}

func NewOrderStore(catalog []Exercise) *OrderStore {
	o := &OrderStore{}
	o.ResetTo(catalog)
	return o
}

// ResetTo reinitializes the order to catalog order.
func (o *OrderStore) ResetTo(catalog []Exercise) {
	o.ids = make([]string, len(catalog))
	for i, ex := range catalog {
		o.ids[i] = ex.ID
	}
}

// Load replaces the order with a previously persisted one.
func (o *OrderStore) Load(ids []string) {
	o.ids = append([]string(nil), ids...)
}

func (o *OrderStore) IDs() []string {
	return append([]string(nil), o.ids...)
}

// DragResult describes a finished drag gesture. A nil Destination means the
// drag was cancelled.
type DragResult struct {
	Source      int
	Destination *int
}

func (o *OrderStore) Apply(d DragResult) error {
	if d.Destination == nil {
		return nil
	}
	return o.Reorder(d.Source, *d.Destination)
}

// Reorder removes the id at src and reinserts it at dst.
func (o *OrderStore) Reorder(src, dst int) error {
	if src < 0 || src >= len(o.ids) {
		return newValidationError("source_index", "out of range [0, %d): %d", len(o.ids), src)
	}
	if dst < 0 || dst >= len(o.ids) {
		return newValidationError("destination_index", "out of range [0, %d): %d", len(o.ids), dst)
	}
	if src == dst {
		return nil
	}

	moved := o.ids[src]
	ids := append(o.ids[:src:src], o.ids[src+1:]...)
	ids = append(ids[:dst], append([]string{moved}, ids[dst:]...)...)
	o.ids = ids
	return nil
}

// Filter narrows the catalog view. Empty fields match everything.
type Filter struct {
	Search      string
	MuscleGroup string
}

func (f Filter) Matches(ex Exercise) bool {
	if f.MuscleGroup != "" && ex.MuscleGroup != f.MuscleGroup {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(ex.Name), term) ||
		strings.Contains(strings.ToLower(ex.MuscleGroup), term)
}

// Visible returns the catalog filtered by f and sorted by the stored order.
// Exercises missing from the order go last, keeping their catalog order.
func (o *OrderStore) Visible(catalog []Exercise, f Filter) []Exercise {
	rank := make(map[string]int, len(o.ids))
	for i, id := range o.ids {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}

	visible := make([]Exercise, 0, len(catalog))
	for _, ex := range catalog {
		if f.Matches(ex) {
			visible = append(visible, ex)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		ri, iok := rank[visible[i].ID]
		rj, jok := rank[visible[j].ID]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
	return visible
}
