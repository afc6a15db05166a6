package identity

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// seq replays fixed Intn results.
func seq(vals ...int) func(int) int {
	i := 0
	return func(int) int {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestCandidateFormat(t *testing.T) {
	g := New(0)
	pattern := regexp.MustCompile(`^RameshKumar\d{4}$`)
	for i := 0; i < 200; i++ {
		id := g.Candidate("  Ramesh \t Kumar ")
		require.Regexp(t, pattern, id)
	}
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
}

func TestCandidateBounds(t *testing.T) {
	g := &Generator{MaxAttempts: 1, Intn: seq(0)}
	assert.Equal(t, "Sita1000", g.Candidate("Sita"))

	g.Intn = seq(8999)
	assert.Equal(t, "Sita9999", g.Candidate("Sita"))
}

func TestNextRetriesOnCollision(t *testing.T) {
	taken := map[string]bool{"Ramesh1000": true, "Ramesh1001": true}
	var checked []string
	ex := ExistsFunc(func(_ context.Context, id string) (bool, error) {
		checked = append(checked, id)
		return taken[id], nil
	})

	g := &Generator{MaxAttempts: 5, Intn: seq(0, 1, 2)}
	id, err := g.Next(context.Background(), "Ramesh", ex)
	require.NoError(t, err)
	assert.Equal(t, "Ramesh1002", id)
	assert.Equal(t, []string{"Ramesh1000", "Ramesh1001", "Ramesh1002"}, checked)
}

func TestNextExhausted(t *testing.T) {
	calls := 0
	ex := ExistsFunc(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})

	g := &Generator{MaxAttempts: 7, Intn: seq(3)}
	_, err := g.Next(context.Background(), "Ramesh", ex)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 7, calls)
}

func TestNextPropagatesLookupError(t *testing.T) {
	boom := errors.New("store down")
	ex := ExistsFunc(func(context.Context, string) (bool, error) { return false, boom })

	_, err := New(3).Next(context.Background(), "Ramesh", ex)
	assert.ErrorIs(t, err, boom)
}

func TestNextHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ex := ExistsFunc(func(context.Context, string) (bool, error) {
		t.Fatal("lookup after cancel")
		return false, nil
	})

	_, err := New(3).Next(ctx, "Ramesh", ex)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseStripsUnicodeSpaces(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Ramesh\u00a0Kumar", "RameshKumar"},
		{"Sita\u2003Devi", "SitaDevi"},
		{"Ravi\u3000Rao", "RaviRao"},
		{" Asha \t\n", "Asha"},
		{"Ramesh\u200bKumar", "Ramesh\u200bKumar"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Base(tc.in), "input %q", tc.in)
	}

	g := &Generator{MaxAttempts: 1, Intn: seq(234)}
	assert.Equal(t, "RameshKumar1234", g.Candidate("Ramesh\u00a0Kumar"))
}

func TestClaimRetriesRejectedInsert(t *testing.T) {
	var inserted []string
	insert := func(id string) (bool, error) {
		inserted = append(inserted, id)
		return id == "Ramesh1000", nil
	}
	free := ExistsFunc(func(context.Context, string) (bool, error) { return false, nil })

	g := &Generator{MaxAttempts: 5, Intn: seq(0, 7)}
	id, err := g.Claim(context.Background(), "Ramesh", free, insert)
	require.NoError(t, err)
	assert.Equal(t, "Ramesh1007", id)
	assert.Equal(t, []string{"Ramesh1000", "Ramesh1007"}, inserted)
}

func TestClaimSharesBudgetBetweenLookupAndInsert(t *testing.T) {
	lookups, inserts := 0, 0
	// every other draw is already taken; the rest lose the insert race
	ex := ExistsFunc(func(context.Context, string) (bool, error) {
		lookups++
		return lookups%2 == 1, nil
	})
	insert := func(string) (bool, error) {
		inserts++
		return true, nil
	}

	g := &Generator{MaxAttempts: 6, Intn: seq(1, 2, 3)}
	_, err := g.Claim(context.Background(), "Ramesh", ex, insert)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 6, lookups)
	assert.Equal(t, 3, inserts)
}

func TestClaimPropagatesInsertError(t *testing.T) {
	boom := errors.New("disk full")
	free := ExistsFunc(func(context.Context, string) (bool, error) { return false, nil })

	_, err := New(3).Claim(context.Background(), "Ramesh", free, func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
