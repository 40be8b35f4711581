// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache remembers which (term, ontology) pairs are known to exist.
package cache

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/ols/clog"
	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 100

var (
	mHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ols_cache_hits_total",
		Help: "Number of existence checks answered from the cache.",
	})
	mMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ols_cache_misses_total",
		Help: "Number of existence checks that required a lookup.",
	})
	mRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ols_cache_rejected_total",
		Help: "Number of existing pairs not remembered because the cache was full.",
	})
	mSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ols_cache_entries",
		Help: "Number of pairs remembered across all caches.",
	})
)

// Resolver looks a term up. *ols.Client implements it.
type Resolver interface {
	Term(ctx context.Context, id term.Identifier, ontology string) (*term.Term, error)
}

// Existence answers whether a term exists in an ontology, remembering the
// first pairs found to exist up to a fixed capacity. Pairs that do not exist
// are never remembered, and nothing is ever evicted.
//
// It is safe for concurrent use.
type Existence struct {
	r        Resolver
	capacity int

	mu   sync.Mutex
	keys map[string]struct{}
}

// New creates a cache in front of r.
func New(r Resolver, capacity int) *Existence {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Existence{
		r:        r,
		capacity: capacity,
		keys:     make(map[string]struct{}, capacity),
	}
}

// Key returns the cache key of a pair. The parts are separated so that
// distinct pairs never share a key.
func Key(accession, ontology string) string {
	return accession + "\x00" + ontology
}

func (c *Existence) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.keys[key]
	return ok
}

// insert records key unless the cache is full. The size check and the
// insertion happen under one lock.
func (c *Existence) insert(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.keys[key]; ok {
		return true
	}
	if len(c.keys) >= c.capacity {
		return false
	}
	c.keys[key] = struct{}{}
	mSize.Inc()
	return true
}

// Exists reports whether the OBO accession resolves to a term in ontology.
// Remembered pairs are answered without a lookup. Lookup failures other
// than "not found" are returned with false.
func (c *Existence) Exists(ctx context.Context, accession, ontology string) (bool, error) {
	key := Key(accession, ontology)
	if c.has(key) {
		mHits.Inc()
		return true, nil
	}
	mMisses.Inc()
	t, err := c.r.Term(ctx, term.NewOBO(accession), ontology)
	if ols.IsNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	if c.insert(key) {
		if clog.V(1) {
			clog.Infof("cache: remembered %s in %s", accession, ontology)
		}
	} else {
		mRejected.Inc()
		if clog.V(1) {
			clog.Infof("cache: full at %d entries, not remembering %s in %s", c.capacity, accession, ontology)
		}
	}
	return true, nil
}

// Len returns the number of remembered pairs.
func (c *Existence) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// Cap returns the capacity fixed at construction.
func (c *Existence) Cap() int { return c.capacity }
