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

package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
)

var reloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kitchen_watch_reloads_total",
		Help: "Total number of file-triggered reloads by result",
	},
	[]string{"result"},
)

// ReloadFunc loads the file at path. Returning an error leaves the caller's
// previous state in place.
type ReloadFunc func(ctx context.Context, path string) error

// Option is a functional option for configuring Watcher instances.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithReloadTimeout bounds each call to the reload function.
func WithReloadTimeout(d time.Duration) Option {
	return func(w *Watcher) {
		w.timeout = d
	}
}

// Watcher calls a ReloadFunc whenever one file changes.
type Watcher struct {
	path     string
	reload   ReloadFunc
	debounce time.Duration
	timeout  time.Duration
	ready    chan struct{}
}

// New creates a Watcher for path. The file does not need to exist yet, but
// its directory does once Run is called.
func New(path string, reload ReloadFunc, opts ...Option) (*Watcher, error) {
	if reload == nil {
		return nil, fmt.Errorf("reload function is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		reload:   reload,
		debounce: defaults.WatchDebounce,
		timeout:  defaults.WatchReloadTimeout,
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Ready is closed once Run has registered the watch.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches the file until ctx is done. It returns nil on cancellation
// and an error only when the watch cannot be established or fsnotify
// shuts down unexpectedly. Run must be called at most once.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	close(w.ready)
	slog.Info("watching file for changes", "path", w.path, "debounce", w.debounce.String())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("file watcher stopped", "path", w.path)
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("file event", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			slog.Warn("file watcher error", "path", w.path, "error", err)

		case <-timer.C:
			w.fire(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) fire(ctx context.Context) {
	rctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.reload(rctx, w.path); err != nil {
		reloadsTotal.WithLabelValues("error").Inc()
		slog.Error("reload failed, keeping previous state", "path", w.path, "error", err)
		return
	}
	reloadsTotal.WithLabelValues("success").Inc()
	slog.Info("reloaded", "path", w.path, "duration", time.Since(start).String())
}
