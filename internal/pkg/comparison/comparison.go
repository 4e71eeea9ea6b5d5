package comparison

import (
	"strconv"
	"strings"
)

// ShareableDisplayCap limits how many plan IDs go into a shareable link,
// independent of the account's selection capacity.
const ShareableDisplayCap = 4

// MinCompareCount is the smallest selection a comparison view makes sense for.
const MinCompareCount = 2

// AddStatus tags the outcome of an Add call. Capacity and duplicate cases are
// policy outcomes the caller turns into user-facing messages, not errors.
type AddStatus int

const (
	StatusAdded AddStatus = iota
	StatusDuplicate
	StatusLimitReached
)

func (s AddStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusDuplicate:
		return "duplicate"
	case StatusLimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// AddResult reports what an Add call did. Limit carries the capacity that
// applied when the add was rejected, so the UI can name it.
type AddResult struct {
	Status AddStatus
	Limit  int
}

// Set is the bounded, deduplicated, insertion-ordered selection of plan IDs
// a user is comparing. It is plain in-memory state; callers persist it into
// the session between requests via Encode/Decode.
type Set struct {
	ids   []uint
	index map[uint]struct{}
	limit int
}

// NewSet creates an empty selection with the given capacity.
// A non-positive capacity falls back to the shareable display cap.
func NewSet(limit int) *Set {
	if limit <= 0 {
		limit = ShareableDisplayCap
	}
	return &Set{
		index: make(map[uint]struct{}),
		limit: limit,
	}
}

// Add appends a plan ID to the selection. Duplicates and capacity overflows
// leave the set unchanged and are reported through the result status.
func (s *Set) Add(id uint) AddResult {
	if _, ok := s.index[id]; ok {
		return AddResult{Status: StatusDuplicate, Limit: s.limit}
	}
	if len(s.ids) >= s.limit {
		return AddResult{Status: StatusLimitReached, Limit: s.limit}
	}
	s.ids = append(s.ids, id)
	s.index[id] = struct{}{}
	return AddResult{Status: StatusAdded, Limit: s.limit}
}

// Remove drops the given plan ID if present. Removing an absent ID is a no-op.
func (s *Set) Remove(id uint) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.ids = s.ids[:0]
	s.index = make(map[uint]struct{})
}

// Contains reports membership of a plan ID.
func (s *Set) Contains(id uint) bool {
	_, ok := s.index[id]
	return ok
}

// Size returns the number of selected plans.
func (s *Set) Size() int {
	return len(s.ids)
}

// Capacity returns the applicable selection limit.
func (s *Set) Capacity() int {
	return s.limit
}

// IDs returns the selected plan IDs in insertion order.
func (s *Set) IDs() []uint {
	out := make([]uint, len(s.ids))
	copy(out, s.ids)
	return out
}

// ShareableIDs returns the first ShareableDisplayCap IDs in insertion order,
// for embedding into a shareable comparison link.
func (s *Set) ShareableIDs() []uint {
	n := len(s.ids)
	if n > ShareableDisplayCap {
		n = ShareableDisplayCap
	}
	out := make([]uint, n)
	copy(out, s.ids[:n])
	return out
}

// CanCompare reports whether a comparison view is available: at least two
// plans must remain after shareable truncation.
func (s *Set) CanCompare() bool {
	return len(s.ShareableIDs()) >= MinCompareCount
}

// ShareQuery returns the comma-joined shareable ID list for the `ids`
// query parameter, e.g. "12,7,31".
func (s *Set) ShareQuery() string {
	return JoinIDs(s.ShareableIDs())
}

// Encode serializes the whole selection for session storage.
func (s *Set) Encode() string {
	return JoinIDs(s.ids)
}

// Decode rebuilds a selection from its Encode form. Unparseable entries,
// duplicates and IDs beyond the capacity are silently dropped, so a tier
// downgrade shrinks a stored selection instead of breaking it.
func Decode(encoded string, limit int) *Set {
	set := NewSet(limit)
	for _, id := range ParseIDList(encoded) {
		set.Add(id)
	}
	return set
}

// ParseIDList parses a comma-separated plan ID list, skipping blanks and junk.
func ParseIDList(raw string) []uint {
	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil || v == 0 {
			continue
		}
		out = append(out, uint(v))
	}
	return out
}

// JoinIDs renders IDs as the comma-separated wire form used by the `ids`
// query parameter and the session value.
func JoinIDs(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}
