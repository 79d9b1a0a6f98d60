// Copyright (c) 2025, Glider Kitchen Authors.  All rights reserved.
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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
	"github.com/gliderkitchen/kitchen/pkg/loader"
)

// Kitchen shares one kitchen.Engine between concurrent requests.
//
// Mutations, reloads and predictions take the exclusive lock since
// prediction reads the live recipe. Catalog and recipe snapshots take the
// shared lock.
type Kitchen struct {
	mu      sync.RWMutex
	engine  *kitchen.Engine
	version string

	// categories mirrors len(engine.Categories()) so probes never wait on mu.
	categories atomic.Int64
}

// NewKitchen wraps engine. version is stamped into response headers.
func NewKitchen(engine *kitchen.Engine, version string) *Kitchen {
	k := &Kitchen{
		engine:  engine,
		version: version,
	}
	k.categories.Store(int64(len(engine.Categories())))
	return k
}

// Ready is a server.ReadyCheck that fails while no catalog is loaded.
func (k *Kitchen) Ready(_ context.Context) error {
	if k.categories.Load() == 0 {
		return fmt.Errorf("no catalogs loaded")
	}
	return nil
}

// Load builds a Kitchen from a configuration document and a catalog document.
func Load(ctx context.Context, configPath, catalogPath, version string) (*Kitchen, error) {
	cfg, err := loader.LoadConfig(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	catalogs, err := loader.LoadCatalogs(ctx, catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewKitchen(kitchen.NewEngine(cfg, kitchen.WithCatalogs(catalogs)), version), nil
}

// ReloadCatalogs replaces every catalog with the document at path. Current
// recipes are dropped. On error the previous catalogs stay in place.
func (k *Kitchen) ReloadCatalogs(ctx context.Context, path string) error {
	catalogs, err := loader.LoadCatalogs(ctx, path)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.engine.LoadCatalogs(catalogs)
	k.categories.Store(int64(len(k.engine.Categories())))

	slog.Info("catalogs reloaded", "path", path, "categories", len(catalogs))
	return nil
}

func (k *Kitchen) read(fn func(e *kitchen.Engine) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return fn(k.engine)
}

func (k *Kitchen) write(fn func(e *kitchen.Engine) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return fn(k.engine)
}

// writeBefore runs fn under the exclusive lock unless ctx expires while
// waiting for it, so a request that already timed out never mutates state.
func (k *Kitchen) writeBefore(ctx context.Context, fn func(e *kitchen.Engine) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(k.engine)
}

// await runs fn under the exclusive lock on its own goroutine and gives up
// waiting when ctx is done. fn keeps running to completion in that case;
// its result is discarded. A panic in fn is returned as an error.
func await[T any](ctx context.Context, k *Kitchen, fn func(e *kitchen.Engine) (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		var res result
		defer func() {
			if p := recover(); p != nil {
				if err, ok := p.(error); ok {
					res.err = err
				} else {
					res.err = kerrors.New(kerrors.ErrCodeInternal, fmt.Sprint(p))
				}
				done <- res
			}
		}()
		res.err = k.write(func(e *kitchen.Engine) error {
			var err error
			res.v, err = fn(e)
			return err
		})
		done <- res
	}()

	select {
	case res := <-done:
		return res.v, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
