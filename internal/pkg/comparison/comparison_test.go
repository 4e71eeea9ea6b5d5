package comparison

import "testing"

func TestAddRespectsCapacity(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	for i := uint(1); i <= 4; i++ {
		res := set.Add(i)
		if res.Status != StatusAdded {
			t.Fatalf("add %d: got status %v, want added", i, res.Status)
		}
	}

	res := set.Add(5)
	if res.Status != StatusLimitReached {
		t.Fatalf("expected limit_reached, got %v", res.Status)
	}
	if res.Limit != 4 {
		t.Fatalf("expected reported limit 4, got %d", res.Limit)
	}
	if set.Size() != 4 {
		t.Fatalf("rejected add must not mutate, size = %d", set.Size())
	}
	if set.Contains(5) {
		t.Fatalf("rejected plan must not be contained")
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	set.Add(7)
	res := set.Add(7)
	if res.Status != StatusDuplicate {
		t.Fatalf("expected duplicate, got %v", res.Status)
	}
	if set.Size() != 1 {
		t.Fatalf("duplicate add grew the set to %d", set.Size())
	}
}

func TestRemoveIdempotent(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	set.Add(1)
	set.Add(2)

	if !set.Remove(1) {
		t.Fatalf("expected remove of present ID to report true")
	}
	if set.Remove(1) {
		t.Fatalf("expected remove of absent ID to report false")
	}
	if set.Remove(99) {
		t.Fatalf("expected remove of never-added ID to report false")
	}
	if set.Size() != 1 || !set.Contains(2) {
		t.Fatalf("unexpected state after removes: size=%d", set.Size())
	}
}

func TestOrderPreservedAcrossReAdd(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	set.Add(10) // a
	set.Add(20) // b
	set.Remove(10)
	set.Add(10)

	ids := set.IDs()
	if len(ids) != 2 || ids[0] != 20 || ids[1] != 10 {
		t.Fatalf("expected order [20 10], got %v", ids)
	}
}

func TestShareableIDsTruncation(t *testing.T) {
	t.Parallel()

	set := NewSet(100)
	for i := uint(1); i <= 6; i++ {
		set.Add(i)
	}

	share := set.ShareableIDs()
	if len(share) != ShareableDisplayCap {
		t.Fatalf("expected %d shareable IDs, got %d", ShareableDisplayCap, len(share))
	}
	for i, id := range share {
		if id != uint(i+1) {
			t.Fatalf("expected insertion order, got %v", share)
		}
	}
	if set.ShareQuery() != "1,2,3,4" {
		t.Fatalf("unexpected share query %q", set.ShareQuery())
	}
}

func TestCanCompareNeedsTwo(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	if set.CanCompare() {
		t.Fatalf("empty set must not be comparable")
	}
	set.Add(1)
	if set.CanCompare() {
		t.Fatalf("single plan must not be comparable")
	}
	set.Add(2)
	if !set.CanCompare() {
		t.Fatalf("two plans should be comparable")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	set.Add(1)
	set.Add(2)
	set.Clear()
	if set.Size() != 0 || set.Contains(1) {
		t.Fatalf("clear left state behind")
	}
	if res := set.Add(1); res.Status != StatusAdded {
		t.Fatalf("expected add after clear to work, got %v", res.Status)
	}
}

func TestCapacityInvariantUnderAddSequences(t *testing.T) {
	t.Parallel()

	set := NewSet(3)
	ids := []uint{5, 5, 1, 2, 9, 9, 3, 4, 1}
	for _, id := range ids {
		set.Add(id)
		if set.Size() > set.Capacity() {
			t.Fatalf("capacity invariant violated: size %d > cap %d", set.Size(), set.Capacity())
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	set := NewSet(4)
	set.Add(3)
	set.Add(1)
	set.Add(2)

	decoded := Decode(set.Encode(), 4)
	got := decoded.IDs()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("round trip lost order: %v", got)
	}
}

func TestDecodeDropsJunkAndOverflow(t *testing.T) {
	t.Parallel()

	decoded := Decode("1, x,2,,0,2,3,4,5,6", 4)
	got := decoded.IDs()
	want := []uint{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseIDList(t *testing.T) {
	t.Parallel()

	if got := ParseIDList(""); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %v", got)
	}
	got := ParseIDList("12,7,31")
	if len(got) != 3 || got[0] != 12 || got[1] != 7 || got[2] != 31 {
		t.Fatalf("unexpected parse result %v", got)
	}
}
