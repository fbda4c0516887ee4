package sequence_test

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNextIDSequential(t *testing.T) {
	db := testutil.SetupDB(t)

	for want := int64(1); want <= 5; want++ {
		var got int64
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			got, err = sequence.NextID(tx, "users")
			return err
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestNextIDPerTable(t *testing.T) {
	db := testutil.SetupDB(t)

	var users1, artworks1 int64
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		users1, err = sequence.NextID(tx, "users")
		return err
	}))
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		artworks1, err = sequence.NextID(tx, "artworks")
		return err
	}))

	// Counters are independent per table.
	require.Equal(t, int64(1), users1)
	require.Equal(t, int64(1), artworks1)
}

func TestNextIDUnseededTable(t *testing.T) {
	db := testutil.SetupDB(t)

	var got int64
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		got, err = sequence.NextID(tx, "somewhere_new")
		return err
	}))
	require.Equal(t, int64(1), got)
}

func TestNextIDConcurrent(t *testing.T) {
	db := testutil.SetupDB(t)

	const n = 50
	ids := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(slot int) {
			defer wg.Done()
			_ = db.Transaction(func(tx *gorm.DB) error {
				id, err := sequence.NextID(tx, "favorites")
				if err != nil {
					return err
				}
				ids[slot] = id
				return nil
			})
		}(i)
	}
	wg.Wait()

	// N allocations yield N distinct ids with no gaps.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 0; i < n; i++ {
		require.Equal(t, int64(i+1), ids[i])
	}
}

func TestNextIDRollbackLeavesNoGap(t *testing.T) {
	db := testutil.SetupDB(t)

	boom := errors.New("insert failed")
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := sequence.NextID(tx, "users"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The failed allocation rolled back with its transaction.
	var got int64
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		got, err = sequence.NextID(tx, "users")
		return err
	}))
	require.Equal(t, int64(1), got)
}
