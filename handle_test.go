/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rpcserver

import "testing"

func TestHandleWorkerCounting(t *testing.T) {
	h := &Handle{}
	if h.ActiveWorkers() != 0 {
		t.Fatal("expected zero workers initially")
	}
	h.workerStarted()
	h.workerStarted()
	if h.ActiveWorkers() != 2 {
		t.Fatalf("expected 2 active workers, got %d", h.ActiveWorkers())
	}
	h.workerFinished()
	if h.ActiveWorkers() != 1 {
		t.Fatalf("expected 1 active worker, got %d", h.ActiveWorkers())
	}
	h.workerFinished()
	if h.ActiveWorkers() != 0 {
		t.Fatalf("expected 0 active workers, got %d", h.ActiveWorkers())
	}
}

func TestHandleRunningTransitionsOnce(t *testing.T) {
	h := &Handle{}
	if h.IsRunning() {
		t.Fatal("expected not running initially")
	}
	h.markRunning()
	if !h.IsRunning() {
		t.Fatal("expected running after markRunning")
	}
}

func TestHandleStopRequested(t *testing.T) {
	h := &Handle{}
	if h.stopRequested() {
		t.Fatal("expected exitNow false initially")
	}
}

func TestHandleRequestCount(t *testing.T) {
	h := &Handle{}
	h.requestCompleted()
	h.requestCompleted()
	if h.RequestCount() != 2 {
		t.Fatalf("expected RequestCount 2, got %d", h.RequestCount())
	}
}
