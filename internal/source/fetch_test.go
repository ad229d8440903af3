package source

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll(t *testing.T) {
	src := newTestSource(t)
	ctx := context.Background()

	t.Run("drains every page in order", func(t *testing.T) {
		var progress [][2]int
		records, err := FetchAll(ctx, src, Query{PageSize: 2}, func(fetched, total int) {
			progress = append(progress, [2]int{fetched, total})
		})
		require.NoError(t, err)

		require.Len(t, records, 5)
		assert.Equal(t, "CUST-005", records[0].CustomerID)
		assert.Equal(t, "CUST-001", records[4].CustomerID)

		require.Len(t, progress, 3, "one callback per page")
		assert.Equal(t, [2]int{2, 5}, progress[0])
		assert.Equal(t, [2]int{5, 5}, progress[2])
	})

	t.Run("respects query filters while draining", func(t *testing.T) {
		records, err := FetchAll(ctx, src, Query{Decision: "Accepted", PageSize: 2}, nil)
		require.NoError(t, err)
		require.Len(t, records, 3)
	})

	t.Run("empty result set drains to nothing", func(t *testing.T) {
		records, err := FetchAll(ctx, src, Query{Search: "no-such-customer"}, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestBuildSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches both aggregates from the database", func(t *testing.T) {
		src := newTestSource(t)

		snap, err := BuildSnapshot(ctx, src, Query{}, nil)
		require.NoError(t, err)

		assert.Len(t, snap.Applications, 5)
		require.NotNil(t, snap.Overview)
		assert.Equal(t, 5, snap.Overview.TotalCustomers)
		require.NotNil(t, snap.Statistics)
		assert.Equal(t, 4, snap.Statistics.ProcessedCustomers)
	})

	t.Run("missing aggregates degrade to nil", func(t *testing.T) {
		src, err := NewSnapshotSourceFromReader(strings.NewReader(`{"applications": [
			{"id": 1, "customer_id": "CUST-001", "decision": "Accepted"}
		]}`))
		require.NoError(t, err)

		snap, err := BuildSnapshot(ctx, src, Query{}, nil)
		require.NoError(t, err)

		assert.Len(t, snap.Applications, 1)
		assert.Nil(t, snap.Overview)
		assert.Nil(t, snap.Statistics)
	})
}
