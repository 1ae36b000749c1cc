// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/petenewcomb/itl-go"
	"github.com/stretchr/testify/require"
)

func TestGetWithoutWorker(t *testing.T) {
	chk := require.New(t)
	ctx := context.Background()
	_, err := testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNoWorker)
	err = testValue.With(ctx, func(int) {
		chk.Fail("should not get here")
	})
	chk.ErrorIs(err, itl.ErrNoWorker)
}

func TestGetWithoutScope(t *testing.T) {
	chk := require.New(t)
	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	_, err := testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNotSet)
}

func TestMustGetPanics(t *testing.T) {
	chk := require.New(t)
	ctx := context.Background()
	chk.PanicsWithValue(itl.ErrNoWorker, func() {
		testValue.MustGet(ctx)
	})
	ctx = itl.WithWorker(ctx, itl.NewWorker())
	chk.PanicsWithValue(itl.ErrNotSet, func() {
		testValue.MustGet(ctx)
	})
}

func TestName(t *testing.T) {
	chk := require.New(t)
	chk.Equal("test-value", testValue.Name())
}

func TestWith(t *testing.T) {
	chk := require.New(t)
	_, err := itl.SyncScope(context.Background(), anotherValue, "tenant-7", func(ctx context.Context) (struct{}, error) {
		var got string
		chk.NoError(anotherValue.With(ctx, func(s string) {
			got = s
		}))
		chk.Equal("tenant-7", got)
		return struct{}{}, nil
	})
	chk.NoError(err)
}

func TestWithResult(t *testing.T) {
	chk := require.New(t)
	_, err := itl.SyncScope(context.Background(), testValue, 21, func(ctx context.Context) (struct{}, error) {
		doubled, err := itl.With(ctx, testValue, func(n int) int {
			return n * 2
		})
		chk.NoError(err)
		chk.Equal(42, doubled)
		return struct{}{}, nil
	})
	chk.NoError(err)

	_, err = itl.With(context.Background(), testValue, func(n int) int {
		chk.Fail("should not get here")
		return 0
	})
	chk.ErrorIs(err, itl.ErrNoWorker)

	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	_, err = itl.With(ctx, testValue, func(n int) int {
		chk.Fail("should not get here")
		return 0
	})
	chk.ErrorIs(err, itl.ErrNotSet)
}

func TestSyncScope(t *testing.T) {
	chk := require.New(t)
	ctx := context.Background()
	result, err := itl.SyncScope(ctx, testValue, 42, func(ctx context.Context) (int, error) {
		return testValue.Get(ctx)
	})
	chk.NoError(err)
	chk.Equal(42, result)

	// The worker SyncScope binds for its body does not leak into the
	// caller's context.
	_, err = testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNoWorker)
}

func TestSyncScopeNesting(t *testing.T) {
	chk := require.New(t)
	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	_, err := itl.SyncScope(ctx, testValue, 1, func(ctx context.Context) (struct{}, error) {
		chk.Equal(1, testValue.MustGet(ctx))
		_, err := itl.SyncScope(ctx, testValue, 2, func(ctx context.Context) (struct{}, error) {
			chk.Equal(2, testValue.MustGet(ctx))
			return struct{}{}, nil
		})
		chk.NoError(err)
		chk.Equal(1, testValue.MustGet(ctx))
		return struct{}{}, nil
	})
	chk.NoError(err)
	_, err = testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNotSet)
}

func TestSyncScopeBothValues(t *testing.T) {
	chk := require.New(t)
	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	_, err := itl.SyncScope(ctx, testValue, 3, func(ctx context.Context) (struct{}, error) {
		_, err := itl.SyncScope(ctx, anotherValue, "three", func(ctx context.Context) (struct{}, error) {
			chk.Equal(3, testValue.MustGet(ctx))
			chk.Equal("three", anotherValue.MustGet(ctx))
			return struct{}{}, nil
		})
		chk.NoError(err)
		chk.Equal(3, testValue.MustGet(ctx))
		_, err = anotherValue.Get(ctx)
		chk.ErrorIs(err, itl.ErrNotSet)
		return struct{}{}, nil
	})
	chk.NoError(err)
}

func TestSyncScopeErrorPath(t *testing.T) {
	chk := require.New(t)
	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	errBoom := errors.New("boom")
	_, err := itl.SyncScope(ctx, testValue, 7, func(ctx context.Context) (int, error) {
		return 0, errBoom
	})
	chk.ErrorIs(err, errBoom)
	_, err = testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNotSet)
}

func TestSyncScopePanicUnwind(t *testing.T) {
	chk := require.New(t)
	ctx := itl.WithWorker(context.Background(), itl.NewWorker())
	chk.PanicsWithValue("boom", func() {
		_, _ = itl.SyncScope(ctx, testValue, 7, func(ctx context.Context) (int, error) {
			panic("boom")
		})
	})
	_, err := testValue.Get(ctx)
	chk.ErrorIs(err, itl.ErrNotSet)
}
