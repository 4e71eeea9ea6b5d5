package scoring

import (
	"fmt"
	"testing"
)

type fakeKV struct {
	values map[string]string
	err    error
}

func (f *fakeKV) GetValue(key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func (f *fakeKV) SetValue(key, value string) error {
	if f.err != nil {
		return f.err
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

type fakeMirror struct {
	value string
	err   error
}

func (f *fakeMirror) Get() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.value, nil
}

func (f *fakeMirror) Set(value string) error {
	if f.err != nil {
		return f.err
	}
	f.value = value
	return nil
}

func TestStoreLoadPrefersRemote(t *testing.T) {
	t.Parallel()

	remote := &fakeKV{values: map[string]string{
		SettingKey: `{"price":50,"performance":20,"support":20,"refund":10}`,
	}}
	local := &fakeMirror{value: `{"price":10,"performance":10,"support":10,"refund":70}`}
	store := &Store{remote: remote, local: local}

	res := store.Load()
	if res.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s", res.Source)
	}
	if res.Weights.Price != 50 {
		t.Fatalf("unexpected weights %+v", res.Weights)
	}
}

func TestStoreLoadFallsBackToMirror(t *testing.T) {
	t.Parallel()

	remote := &fakeKV{err: fmt.Errorf("connection refused")}
	local := &fakeMirror{value: `{"price":10,"performance":10,"support":10,"refund":70}`}
	store := &Store{remote: remote, local: local}

	res := store.Load()
	if res.Source != SourceLocal {
		t.Fatalf("expected local source, got %s", res.Source)
	}
	if res.Weights.Refund != 70 {
		t.Fatalf("unexpected weights %+v", res.Weights)
	}
}

func TestStoreLoadDefaultsWhenBothTiersEmpty(t *testing.T) {
	t.Parallel()

	store := &Store{remote: &fakeKV{}, local: &fakeMirror{}}

	res := store.Load()
	if res.Source != SourceDefault {
		t.Fatalf("expected default source, got %s", res.Source)
	}
	if res.Weights != DefaultWeights() {
		t.Fatalf("unexpected weights %+v", res.Weights)
	}
}

func TestStoreSaveRescalesAndMirrors(t *testing.T) {
	t.Parallel()

	remote := &fakeKV{}
	local := &fakeMirror{}
	store := &Store{remote: remote, local: local}

	res, err := store.Save(Weights{Price: 2, Performance: 1, Support: 1, Refund: 0})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if res.Source != SourceRemote {
		t.Fatalf("expected remote save, got %s", res.Source)
	}
	if res.Weights.Sum() != 100 {
		t.Fatalf("persisted weights sum to %d, want 100", res.Weights.Sum())
	}
	if remote.values[SettingKey] == "" {
		t.Fatalf("remote tier did not receive the write")
	}
	if local.value != remote.values[SettingKey] {
		t.Fatalf("mirror out of sync: %q vs %q", local.value, remote.values[SettingKey])
	}
}

func TestStoreSaveDegradesToMirror(t *testing.T) {
	t.Parallel()

	remote := &fakeKV{err: fmt.Errorf("server error")}
	local := &fakeMirror{}
	store := &Store{remote: remote, local: local}

	res, err := store.Save(Weights{Price: 25, Performance: 25, Support: 25, Refund: 25})
	if err != nil {
		t.Fatalf("degraded save should succeed, got %v", err)
	}
	if res.Source != SourceLocal {
		t.Fatalf("expected local source, got %s", res.Source)
	}
	if local.value == "" {
		t.Fatalf("mirror did not receive the fallback write")
	}

	// A later load should serve the mirrored value.
	loaded := store.Load()
	if loaded.Source != SourceLocal || loaded.Weights != res.Weights {
		t.Fatalf("mirror value not served on load: %+v", loaded)
	}
}

func TestStoreSaveFailsWhenBothTiersFail(t *testing.T) {
	t.Parallel()

	store := &Store{
		remote: &fakeKV{err: fmt.Errorf("server error")},
		local:  &fakeMirror{err: fmt.Errorf("cache down")},
	}

	if _, err := store.Save(DefaultWeights()); err == nil {
		t.Fatalf("expected error when both tiers fail")
	}
}

func TestStoreSaveRejectsNegativeWeights(t *testing.T) {
	t.Parallel()

	store := &Store{remote: &fakeKV{}, local: &fakeMirror{}}
	if _, err := store.Save(Weights{Price: -1}); err == nil {
		t.Fatalf("expected validation error")
	}
}
