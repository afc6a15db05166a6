// Package identity builds human-readable farmer ids: the display name with
// whitespace removed followed by a random four digit suffix.
package identity

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

const (
	DefaultMaxAttempts = 50

	suffixMin  = 1000
	suffixSpan = 9000 // [1000, 9999]
)

var ErrExhausted = errors.New("identity: retry budget exhausted")

// Exister reports whether an id is already taken.
type Exister interface {
	IdentityExists(ctx context.Context, id string) (bool, error)
}

type ExistsFunc func(ctx context.Context, id string) (bool, error)

func (f ExistsFunc) IdentityExists(ctx context.Context, id string) (bool, error) { return f(ctx, id) }

type Generator struct {
	MaxAttempts int
	// Intn returns a value in [0, n).
	Intn func(n int) int
}

func New(maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{MaxAttempts: maxAttempts, Intn: rand.IntN}
}

// Base drops every Unicode space from name, including NBSP and ideographic space.
func Base(name string) string { return strings.Join(strings.FieldsFunc(name, unicode.IsSpace), "") }

func (g *Generator) Candidate(name string) string {
	return fmt.Sprintf("%s%d", Base(name), suffixMin+g.Intn(suffixSpan))
}

// Next returns a candidate that ex reported as unused. The result is only
// unique at the moment of the check; use Claim when the store can still
// reject the id.
func (g *Generator) Next(ctx context.Context, name string, ex Exister) (string, error) {
	return g.Claim(ctx, name, ex, func(string) (bool, error) { return false, nil })
}

// Claim draws candidates until one passes the ex lookup and is accepted by
// insert, which reports taken=true on a duplicate-key rejection. Lookup
// hits and insert rejections spend the same MaxAttempts budget.
func (g *Generator) Claim(ctx context.Context, name string, ex Exister, insert func(id string) (taken bool, err error)) (string, error) {
	for i := 0; i < g.MaxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id := g.Candidate(name)
		taken, err := ex.IdentityExists(ctx, id)
		if err != nil {
			return "", err
		}
		if taken {
			continue
		}
		if taken, err = insert(id); err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrExhausted
}
