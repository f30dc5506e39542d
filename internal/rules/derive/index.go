// Package derive turns a creator draft's selected parts and scalar form
// inputs into aggregate cost totals: item points, training points, currency
// and rarity for items; energy and training points for powers and techniques.
//
// Like the rest of the rules core it is pure: the caller supplies a snapshot
// of the canonical part catalog on every call and the package never mutates
// or caches it. Unresolvable references degrade to zero-cost placeholder
// contributions flagged for the UI; nothing in this package returns an error
// for malformed draft input.
package derive

import (
	"strconv"

	"golang.org/x/text/cases"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Ref points at a canonical part record by id or, for entries saved before
// ids existed, by name. A zero ID means "unset"; resolution then falls back
// to the case-insensitive name table.
type Ref struct {
	ID   int    `json:"part_id,omitempty"`
	Name string `json:"part_name,omitempty"`
}

// RefByID returns a reference by stable id.
func RefByID(id int) Ref { return Ref{ID: id} }

// RefByName returns a legacy name reference.
func RefByName(name string) Ref { return Ref{Name: name} }

// String returns a display label for warnings.
func (r Ref) String() string {
	if r.Name != "" {
		return r.Name
	}
	return "#" + strconv.Itoa(r.ID)
}

var nameFolder = cases.Fold()

// foldName normalizes a part name for case-insensitive lookup.
func foldName(name string) string {
	return nameFolder.String(name)
}

// Index is a lookup structure over one catalog snapshot. Build it once per
// snapshot with NewIndex and share it freely; it is read-only after
// construction.
type Index struct {
	byID   map[int]*domain.Part
	byName map[string]*domain.Part
	parts  []domain.Part
}

// NewIndex builds an index over the supplied records. The slice is copied;
// later mutation of the caller's slice does not affect the index.
func NewIndex(parts []domain.Part) *Index {
	idx := &Index{
		byID:   make(map[int]*domain.Part, len(parts)),
		byName: make(map[string]*domain.Part, len(parts)),
		parts:  make([]domain.Part, len(parts)),
	}
	copy(idx.parts, parts)
	for i := range idx.parts {
		p := &idx.parts[i]
		if p.ID != 0 {
			idx.byID[p.ID] = p
		}
		idx.byName[foldName(p.Name)] = p
	}
	return idx
}

// Resolve looks a reference up: id table first, then the case-insensitive
// name table. It never panics or errors; a miss returns (nil, false).
func (x *Index) Resolve(ref Ref) (*domain.Part, bool) {
	if x == nil {
		return nil, false
	}
	if ref.ID != 0 {
		if p, ok := x.byID[ref.ID]; ok {
			return p, true
		}
	}
	if ref.Name != "" {
		if p, ok := x.byName[foldName(ref.Name)]; ok {
			return p, true
		}
	}
	return nil, false
}

// ResolveName is a convenience for the system-derived entries, which are
// always addressed by well-known name.
func (x *Index) ResolveName(name string) (*domain.Part, bool) {
	return x.Resolve(RefByName(name))
}

// Parts returns a copy of the indexed records in catalog order.
func (x *Index) Parts() []domain.Part {
	if x == nil {
		return nil
	}
	out := make([]domain.Part, len(x.parts))
	copy(out, x.parts)
	return out
}

// Len returns the number of indexed records.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.parts)
}
