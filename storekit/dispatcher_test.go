package storekit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogStub serves a product list whose single product is named after the
// incoming brand filter, so tests can tell which request produced a snapshot.
func catalogStub(t *testing.T, block <-chan struct{}, blockBrand string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brand := r.URL.Query().Get("brand")
		if block != nil && brand == blockBrand {
			<-block
		}
		resp := map[string]any{
			"message": "Products fetched successfully",
			"data": []map[string]any{
				{"id": "p-" + brand, "name": brand, "brand": brand, "price": 25.0},
			},
			"meta": map[string]any{"page": 1, "limit": 12, "total": 41},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestDispatchSuccess(t *testing.T) {
	srv := catalogStub(t, nil, "")
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	d.Dispatch(context.Background(), "cat-1", FilterParams{Brand: "acme"})

	require.Eventually(t, func() bool {
		return !d.Snapshot().Loading
	}, 2*time.Second, 10*time.Millisecond)

	snap := d.Snapshot()
	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "acme", snap.Products[0].Brand)
	assert.Equal(t, 41, snap.Total)
}

func TestDispatchLoadingFlag(t *testing.T) {
	release := make(chan struct{})
	srv := catalogStub(t, release, "acme")
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	d.Dispatch(context.Background(), "", FilterParams{Brand: "acme"})

	assert.True(t, d.Snapshot().Loading)

	close(release)
	require.Eventually(t, func() bool {
		return !d.Snapshot().Loading
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDispatchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	d.Dispatch(context.Background(), "", FilterParams{})

	require.Eventually(t, func() bool {
		return !d.Snapshot().Loading
	}, 2*time.Second, 10*time.Millisecond)

	snap := d.Snapshot()
	require.Error(t, snap.Err)
	assert.Empty(t, snap.Products)
	assert.Zero(t, snap.Total)
}

// A slow request issued before a fast one must never overwrite the fast
// request's result, no matter when it resolves.
func TestDispatchStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	srv := catalogStub(t, release, "slow")
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	ctx := context.Background()

	d.Dispatch(ctx, "", FilterParams{Brand: "slow"})
	d.Dispatch(ctx, "", FilterParams{Brand: "fast"})

	require.Eventually(t, func() bool {
		snap := d.Snapshot()
		return !snap.Loading && len(snap.Products) == 1 && snap.Products[0].Brand == "fast"
	}, 2*time.Second, 10*time.Millisecond)

	// Let the superseded request finish; the snapshot must stay "fast".
	close(release)
	assert.Never(t, func() bool {
		snap := d.Snapshot()
		return len(snap.Products) > 0 && snap.Products[0].Brand == "slow"
	}, 300*time.Millisecond, 20*time.Millisecond)

	snap := d.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "fast", snap.Products[0].Brand)
}

func TestCancelDropsInFlightRequest(t *testing.T) {
	release := make(chan struct{})
	srv := catalogStub(t, release, "slow")
	defer srv.Close()

	d := NewDispatcher(srv.URL)
	d.Dispatch(context.Background(), "", FilterParams{Brand: "slow"})
	d.Cancel()

	assert.False(t, d.Snapshot().Loading)

	close(release)
	assert.Never(t, func() bool {
		return len(d.Snapshot().Products) > 0
	}, 300*time.Millisecond, 20*time.Millisecond)
}

func TestOnUpdateReceivesSnapshots(t *testing.T) {
	srv := catalogStub(t, nil, "")
	defer srv.Close()

	updates := make(chan Snapshot, 8)
	d := NewDispatcher(srv.URL, WithOnUpdate(func(s Snapshot) { updates <- s }))
	d.Dispatch(context.Background(), "", FilterParams{Brand: "acme"})

	first := <-updates
	assert.True(t, first.Loading)

	select {
	case second := <-updates:
		assert.False(t, second.Loading)
		require.Len(t, second.Products, 1)
		assert.Equal(t, "acme", second.Products[0].Brand)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for resolved snapshot")
	}
}
