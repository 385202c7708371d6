// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ddg/matrix"
)

// Cache owns the factorization of one matrix it does not own. See the package doc
// for the state machine and the caller contract.
type Cache struct {
	mu  sync.Mutex
	a   *matrix.Sparse[float64]
	cfg cacheConfig
	log logrus.FieldLogger

	state  State
	sym    Symbolic
	num    Numeric
	closed bool
	stats  Stats
}

// New binds a cache, in StateEmpty, to a. No work is done until Get.
// Errors: ErrNilMatrix, ErrNonSquare.
func New(a *matrix.Sparse[float64], opts ...Option) (*Cache, error) {
	if a == nil {
		return nil, fmt.Errorf("factor.New: %w", ErrNilMatrix)
	}
	if r, c := a.Shape(); r != c {
		return nil, fmt.Errorf("factor.New: %dx%d: %w", r, c, ErrNonSquare)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache{
		a:   a,
		cfg: cfg,
		log: cfg.log.WithFields(logrus.Fields{"backend": cfg.backend.Name(), "n": a.Rows()}),
	}, nil
}

// Get returns the numeric factorization, computing whatever stage is missing:
// empty runs analysis and factorization, symbolic runs factorization only, numeric
// returns the cached handle. On failure everything built so far is released and the
// cache returns to StateEmpty.
//
// Errors: ErrClosed, or *FactorizationError (errors.Is ErrFactorization and the cause).
func (c *Cache) Get() (Numeric, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLocked()
}

func (c *Cache) getLocked() (Numeric, error) {
	if c.closed {
		return nil, fmt.Errorf("factor.Get: %w", ErrClosed)
	}
	if c.state == StateNumeric {
		c.stats.Hits++

		return c.num, nil
	}

	csc := c.a.CSC()
	if c.state == StateEmpty {
		sym, err := c.cfg.backend.AnalyzePattern(csc)
		if err != nil {
			return nil, c.fail(StageAnalyze, err)
		}
		c.sym = sym
		c.stats.Analyses++
		c.transition(StateSymbolic)
	}

	if err := matrix.ValidateSymmetric(c.a, c.cfg.symTol); err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			err = fmt.Errorf("%w: %v", ErrNotSymmetric, err)
		}

		return nil, c.fail(StageFactorize, err)
	}
	num, err := c.cfg.backend.FactorizeNumeric(csc, c.sym)
	if err != nil {
		return nil, c.fail(StageFactorize, err)
	}
	c.num = num
	c.stats.Factorizations++
	c.transition(StateNumeric)

	return c.num, nil
}

// fail rolls back to empty and wraps err.
func (c *Cache) fail(stage string, err error) error {
	c.releaseLocked()
	c.stats.Failures++
	c.log.WithFields(logrus.Fields{"stage": stage, "error": err}).Warn("factorization failed")

	return &FactorizationError{Stage: stage, Backend: c.cfg.backend.Name(), Err: err}
}

func (c *Cache) transition(to State) {
	c.log.WithFields(logrus.Fields{"from": c.state.String(), "to": to.String()}).Debug("factor state")
	c.state = to
}

func (c *Cache) releaseLocked() {
	if c.sym != nil || c.num != nil {
		c.cfg.backend.Release(c.sym, c.num)
	}
	c.sym, c.num = nil, nil
	if c.state != StateEmpty {
		c.transition(StateEmpty)
	}
}

// InvalidateNumeric drops the numeric factorization after a value change that kept
// the pattern. numeric → symbolic; no-op in the other states.
func (c *Cache) InvalidateNumeric() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateNumeric {
		return
	}
	c.cfg.backend.Release(nil, c.num)
	c.num = nil
	c.transition(StateSymbolic)
}

// InvalidateStructural drops everything after a pattern change. Any state → empty.
func (c *Cache) InvalidateStructural() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()
}

// Close releases all backend resources. Later Get calls fail with ErrClosed.
// Closing twice is a no-op.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.releaseLocked()
	c.closed = true

	return nil
}

// State reports the current validity level.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Stats returns a snapshot of the work counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// Backend returns the kernel in use.
func (c *Cache) Backend() Backend { return c.cfg.backend }

// Solve returns x with A·x = b, factoring first if needed. The cache lock is held
// through the solve, so a concurrent invalidation cannot release the factor in use.
func Solve(c *Cache, b []float64) ([]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	num, err := c.getLocked()
	if err != nil {
		return nil, err
	}

	return c.cfg.backend.Solve(num, b)
}
