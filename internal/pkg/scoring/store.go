package scoring

import (
	"fmt"
	"sync"

	"github.com/hostpick/hostpick/internal/pkg/cache"
)

// SettingKey is the settings-table key of the remote weight record.
const SettingKey = "score_weights"

// CacheKey is the local mirror key, shared with the frontend's localStorage name.
const CacheKey = "scoreWeights"

// Source tags where a load/save actually landed, making the degraded
// local-only state observable instead of silently swallowed.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceLocal   Source = "local"
	SourceDefault Source = "default"
)

// KV is the remote tier: the settings repository satisfies it.
type KV interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// mirror is the local fallback tier.
type mirror interface {
	Get() (string, error)
	Set(value string) error
}

// redisMirror keeps the fallback copy in the shared cache.
type redisMirror struct{}

func (redisMirror) Get() (string, error) {
	return cache.Get(CacheKey)
}

func (redisMirror) Set(value string) error {
	return cache.Set(CacheKey, value, 0)
}

// LoadResult carries the weights plus the tier they came from.
type LoadResult struct {
	Weights Weights `json:"weights"`
	Source  Source  `json:"source"`
}

// SaveResult reports the persisted (rescaled) weights and which tier took
// the write. Source == SourceLocal means degraded-but-successful.
type SaveResult struct {
	Weights Weights `json:"weights"`
	Source  Source  `json:"source"`
}

// Store is the two-tier score-weight store: settings table as primary,
// redis mirror as fallback. A write is only lost if both tiers fail.
type Store struct {
	remote KV
	local  mirror

	// saveMu serializes saves so a double-submit cannot interleave the
	// remote write and the mirror refresh.
	saveMu sync.Mutex
}

// NewStore creates a weight store over the given remote tier, mirrored
// into the shared cache.
func NewStore(remote KV) *Store {
	return &Store{remote: remote, local: redisMirror{}}
}

// Load reads the remote tier first, falls back to the local mirror, and
// finally to the defaults. It never fails.
func (s *Store) Load() LoadResult {
	if s.remote != nil {
		if raw, err := s.remote.GetValue(SettingKey); err == nil && raw != "" {
			if w, err := DecodeWeights(raw); err == nil {
				return LoadResult{Weights: w, Source: SourceRemote}
			}
		}
	}

	if s.local != nil {
		if raw, err := s.local.Get(); err == nil && raw != "" {
			if w, err := DecodeWeights(raw); err == nil {
				return LoadResult{Weights: w, Source: SourceLocal}
			}
		}
	}

	return LoadResult{Weights: DefaultWeights(), Source: SourceDefault}
}

// Save rescales the weights to sum 100 and writes them to the remote tier.
// On remote failure the value goes into the local mirror instead, reported
// as a degraded success. Only a double failure returns an error.
func (s *Store) Save(w Weights) (SaveResult, error) {
	if err := w.Validate(); err != nil {
		return SaveResult{}, err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	scaled := RescaleTo100(w)
	raw, err := EncodeWeights(scaled)
	if err != nil {
		return SaveResult{}, err
	}

	var remoteErr error
	if s.remote != nil {
		remoteErr = s.remote.SetValue(SettingKey, raw)
	} else {
		remoteErr = fmt.Errorf("no remote store configured")
	}

	if remoteErr == nil {
		if s.local != nil {
			// Refresh the mirror so a later remote outage serves current data.
			_ = s.local.Set(raw)
		}
		return SaveResult{Weights: scaled, Source: SourceRemote}, nil
	}

	if s.local == nil {
		return SaveResult{}, fmt.Errorf("weights not persisted: %w", remoteErr)
	}
	if err := s.local.Set(raw); err != nil {
		return SaveResult{}, fmt.Errorf("weights not persisted: remote: %v, local: %w", remoteErr, err)
	}
	return SaveResult{Weights: scaled, Source: SourceLocal}, nil
}
