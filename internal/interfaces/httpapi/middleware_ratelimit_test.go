package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimit_RejectsBurstOverflowPerClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(0.001, 2, next)

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/giocatori", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if got := do("10.0.0.1:1234"); got != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, got)
		}
	}
	if got := do("10.0.0.1:5678"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", got)
	}
	if got := do("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other clients keep their own bucket, got %d", got)
	}
}

func TestClientLimiter_SharesBucketPerClient(t *testing.T) {
	limiter := newClientLimiter(1, 1)
	ctx := context.Background()

	const workers = 16
	got := make([]*rate.Limiter, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = limiter.get(ctx, "10.0.0.1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d got a different bucket for the same client", i)
		}
	}
	if other := limiter.get(ctx, "10.0.0.2"); other == got[0] {
		t.Fatalf("different clients must not share a bucket")
	}
	if n := limiter.buckets.Len(); n != 2 {
		t.Fatalf("expected 2 buckets, got %d", n)
	}
}
