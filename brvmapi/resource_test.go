package brvmapi

import (
	"context"
	"fmt"
	"testing"
)

func TestResourceLifecycle(t *testing.T) {
	var r Resource[int]

	// initial state: nothing loaded, nothing failed
	s := r.Get()
	if s.Loading || s.Data != nil || s.Err != "" {
		t.Fatalf("initial snapshot = %+v", s)
	}

	v := 42
	s = r.Fetch(context.Background(), func(context.Context) (*int, error) { return &v, nil })
	if s.Loading || s.Data == nil || *s.Data != 42 || s.Err != "" {
		t.Fatalf("after success: %+v", s)
	}

	// a failed refetch replaces data with an error
	s = r.Fetch(context.Background(), func(context.Context) (*int, error) {
		return nil, fmt.Errorf("backend down")
	})
	if s.Data != nil || s.Err != "backend down" {
		t.Fatalf("after failure: %+v", s)
	}
}

func TestResourceDiscardsStaleCompletion(t *testing.T) {
	var r Resource[string]

	// Two requests are issued for the same slot; the older one completes
	// last. Its result must not overwrite the newer one's.
	gen1 := r.Begin()
	gen2 := r.Begin()

	fresh := "séance 27"
	if !r.Complete(gen2, &fresh, nil) {
		t.Fatal("the latest generation must be applied")
	}
	stale := "séance 26"
	if r.Complete(gen1, &stale, nil) {
		t.Fatal("a superseded generation must be discarded")
	}

	s := r.Get()
	if s.Data == nil || *s.Data != "séance 27" {
		t.Errorf("data = %v, want the last-issued request's result", s.Data)
	}

	// Same rule for errors: a stale failure cannot clobber fresh data.
	if r.Complete(gen1, nil, fmt.Errorf("timeout")) {
		t.Fatal("a stale error must be discarded too")
	}
	if s := r.Get(); s.Err != "" {
		t.Errorf("err = %q, want none", s.Err)
	}
}

func TestResourceLoadingWhileInFlight(t *testing.T) {
	var r Resource[int]
	gen := r.Begin()
	if s := r.Get(); !s.Loading {
		t.Error("the slot must report loading while a request is in flight")
	}
	v := 1
	r.Complete(gen, &v, nil)
	if s := r.Get(); s.Loading {
		t.Error("loading must clear once the latest request completes")
	}
}
