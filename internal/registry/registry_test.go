package registry

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
)

type fakeClient struct {
	id int
}

func newTestRegistry(t *testing.T) (*Registry[any], *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New[any](logger.New(logger.LevelNormal, &buf)), &buf
}

func warnings(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "[WRN] ")
}

func TestRegisterStoresHandle(t *testing.T) {
	reg, buf := newTestRegistry(t)
	c := &fakeClient{id: 1}

	require.False(t, reg.IsRegistered())
	require.NoError(t, reg.Register(c))
	require.True(t, reg.IsRegistered())

	got, ok := reg.Handle()
	require.True(t, ok)
	require.Same(t, c, got)
	require.Zero(t, warnings(buf), "first registration must not warn")
}

func TestRegisterReplacesWithWarning(t *testing.T) {
	reg, buf := newTestRegistry(t)
	c1 := &fakeClient{id: 1}
	c2 := &fakeClient{id: 2}

	require.NoError(t, reg.Register(c1))
	require.NoError(t, reg.Register(c2))

	got, _ := reg.Handle()
	require.Same(t, c2, got)
	require.Equal(t, 1, warnings(buf))
	require.Contains(t, buf.String(), ReplacedWarning)
}

func TestRegisterRejectsNil(t *testing.T) {
	var nilPtr *fakeClient
	var nilMap map[string]string

	tests := []struct {
		name   string
		handle any
	}{
		{"untyped nil", nil},
		{"typed nil pointer", nilPtr},
		{"nil map", nilMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, buf := newTestRegistry(t)

			err := reg.Register(tt.handle)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			require.ErrorIs(t, err, ErrNilClient)
			require.Contains(t, err.Error(), "registration requires a valid client instance")
			require.False(t, reg.IsRegistered())
			require.Zero(t, warnings(buf))
		})
	}
}

func TestRegisterNilKeepsPriorHandle(t *testing.T) {
	reg, _ := newTestRegistry(t)
	c := &fakeClient{id: 7}
	require.NoError(t, reg.Register(c))

	require.Error(t, reg.Register(nil))

	got, ok := reg.Handle()
	require.True(t, ok)
	require.Same(t, c, got)
}

func TestHandleWhenEmpty(t *testing.T) {
	reg, _ := newTestRegistry(t)

	got, ok := reg.Handle()
	require.False(t, ok)
	require.Nil(t, got)

	_, err := reg.Require()
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestResetForTesting(t *testing.T) {
	reg, buf := newTestRegistry(t)
	require.NoError(t, reg.Register(&fakeClient{id: 1}))

	reg.ResetForTesting()
	require.False(t, reg.IsRegistered())
	_, ok := reg.Handle()
	require.False(t, ok)

	// Second reset is a no-op.
	reg.ResetForTesting()
	require.False(t, reg.IsRegistered())

	// After a reset the next registration is a first registration again.
	require.NoError(t, reg.Register(&fakeClient{id: 2}))
	require.Zero(t, warnings(buf))
}

func TestIndependentInstances(t *testing.T) {
	a, _ := newTestRegistry(t)
	b, _ := newTestRegistry(t)

	require.NoError(t, a.Register(&fakeClient{id: 1}))
	require.True(t, a.IsRegistered())
	require.False(t, b.IsRegistered())
}

func TestNonPointerHandles(t *testing.T) {
	reg := New[fakeClient](nil)
	require.NoError(t, reg.Register(fakeClient{id: 3}))
	got, ok := reg.Handle()
	require.True(t, ok)
	require.Equal(t, 3, got.id)
}

func TestConcurrentReadersSeeWholeHandles(t *testing.T) {
	reg := New[*fakeClient](nil)
	require.NoError(t, reg.Register(&fakeClient{id: 0}))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = reg.Register(&fakeClient{id: id})
		}(i)
		go func() {
			defer wg.Done()
			h, ok := reg.Handle()
			if !ok || h == nil {
				t.Error("reader observed an empty slot")
			}
		}()
	}
	wg.Wait()
}

// TestRegisterSequence checks that after any run of registrations the last
// handle wins and exactly one warning was logged per replacement.
func TestRegisterSequence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var buf bytes.Buffer
		reg := New[*fakeClient](logger.New(logger.LevelNormal, &buf))

		n := rapid.IntRange(1, 20).Draw(rt, "n")
		var last *fakeClient
		for i := 0; i < n; i++ {
			last = &fakeClient{id: i}
			if err := reg.Register(last); err != nil {
				rt.Fatalf("register %d: %v", i, err)
			}
		}

		got, ok := reg.Handle()
		if !ok || got != last {
			rt.Fatalf("expected last handle %d, got %v", last.id, got)
		}
		if w := warnings(&buf); w != n-1 {
			rt.Fatalf("expected %d warnings, got %d", n-1, w)
		}
	})
}
