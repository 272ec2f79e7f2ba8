package kernel

import (
	"strconv"
	"sync/atomic"
	"time"

	"parcelhub/internal/pkg/errs"
)

const tokenPrefix = "T"

// ErrTokenIsNotConstructed is returned when validating a zero-value Token.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError("Token must be created via a TokenGenerator or TokenFromString")

// Token identifies a parcel for its whole life. It is the only key used to look
// orders up for status updates.
type Token struct {
	value string
}

// TokenFromString rebuilds a token received from outside the process,
// e.g. from a request path. Any non-empty string is accepted; whether it names
// an existing order is decided by the store.
func TokenFromString(s string) (Token, error) {
	if s == "" {
		return Token{}, errs.NewValueIsRequiredError("token")
	}
	return Token{value: s}, nil
}

func (t Token) String() string {
	return t.value
}

func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

// Validate reports ErrTokenIsNotConstructed for the zero value.
func (t Token) Validate() error {
	if t.value == "" {
		return ErrTokenIsNotConstructed
	}
	return nil
}

// TokenGenerator issues fresh tokens.
type TokenGenerator interface {
	Next() Token
}

// MonotonicTokenGenerator issues "T<n>" tokens where n is the current Unix time in
// milliseconds, bumped to previous+1 whenever the clock has not advanced (or went
// backwards). It is safe for concurrent use.
type MonotonicTokenGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

// NewMonotonicTokenGenerator creates a generator reading time from now.
// A nil now uses time.Now.
func NewMonotonicTokenGenerator(now func() time.Time) *MonotonicTokenGenerator {
	if now == nil {
		now = time.Now
	}
	return &MonotonicTokenGenerator{now: now}
}

// Next returns a token strictly greater (numerically) than every token this
// generator returned before.
func (g *MonotonicTokenGenerator) Next() Token {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return Token{value: tokenPrefix + strconv.FormatInt(next, 10)}
		}
	}
}
