/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package utils holds shared test helpers.
package utils

import (
	"context"
	"testing"

	"go.uber.org/goleak"
)

// LeakCheckContext returns a Context that is cancelled when the test
// ends. If the test finished successfully, it is then checked for
// goroutine leaks after cancellation.
func LeakCheckContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		EnsureNoLeaks(t)
	})
	return ctx
}

// EnsureNoLeaks fails the test if any goroutines leaked. Tests that
// already failed are skipped so the leak report does not drown out the
// original failure.
func EnsureNoLeaks(t testing.TB) {
	if t.Failed() {
		return
	}
	if err := goleak.Find(); err != nil {
		t.Fatal(err)
	}
}
