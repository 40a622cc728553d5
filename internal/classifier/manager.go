package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"financeai/internal/cache"
)

var ErrNoModel = errors.New("no model loaded")

const (
	predictionCacheSize = 1024
	predictionCacheTTL  = 10 * time.Minute
)

// Manager owns the serving pipeline. Predictions snapshot an atomic pointer
// and keep using that pipeline for their whole call; Retrain swaps the
// pointer only after the replacement is trained and persisted, so a failed
// retrain leaves the previous model serving.
type Manager struct {
	path    string
	opts    TrainOptions
	current atomic.Pointer[Pipeline]
	trainMu sync.Mutex

	// memo keys include the pipeline ID, so a swapped-in model never serves
	// predictions computed by its predecessor.
	memo *cache.LRUCache[Prediction]
}

// NewManager returns a manager persisting artifacts at path. No model is
// loaded until LoadOrTrain runs.
func NewManager(path string, opts TrainOptions) *Manager {
	return &Manager{
		path: path,
		opts: opts,
		memo: cache.NewLRUCache[Prediction](predictionCacheSize, predictionCacheTTL),
	}
}

// Current returns the serving pipeline, or nil when none is loaded yet.
func (m *Manager) Current() *Pipeline {
	return m.current.Load()
}

// Predict classifies one description with the serving pipeline. Results are
// memoized per model, since the same merchant phrases come back again and
// again through auto-categorization.
func (m *Manager) Predict(description string) (Prediction, error) {
	p := m.current.Load()
	if p == nil {
		return Prediction{}, ErrNoModel
	}

	key := p.ID + "\x00" + strings.TrimSpace(description)
	if pred, ok := m.memo.Get(key); ok {
		return pred, nil
	}

	pred, err := p.Predict(description)
	if err != nil {
		return Prediction{}, err
	}
	m.memo.Set(key, pred)
	return pred, nil
}

// LoadOrTrain loads the artifact from disk and starts serving it. When the
// file is missing or unreadable it trains a fresh pipeline instead and
// persists that.
func (m *Manager) LoadOrTrain(ctx context.Context) (*Pipeline, error) {
	p, err := LoadArtifact(m.path)
	if err == nil {
		m.current.Store(p)
		slog.InfoContext(ctx, "Loaded model artifact",
			"path", m.path,
			"model_id", p.ID,
			"accuracy", p.Accuracy,
		)
		return p, nil
	}

	slog.InfoContext(ctx, "Model artifact unavailable, training from corpus",
		"path", m.path,
		"reason", err,
	)
	return m.Retrain(ctx)
}

// Retrain fits and persists a new pipeline, then swaps it in. Concurrent
// calls are serialized; a failure at any step leaves the current pipeline
// and the on-disk artifact untouched.
func (m *Manager) Retrain(ctx context.Context) (*Pipeline, error) {
	m.trainMu.Lock()
	defer m.trainMu.Unlock()

	p, err := Train(m.opts)
	if err != nil {
		return nil, fmt.Errorf("train pipeline: %w", err)
	}
	if err := SaveArtifact(m.path, p); err != nil {
		return nil, fmt.Errorf("persist pipeline: %w", err)
	}

	m.current.Store(p)
	slog.InfoContext(ctx, "Model trained",
		"model_id", p.ID,
		"accuracy", p.Accuracy,
		"path", m.path,
	)
	return p, nil
}
