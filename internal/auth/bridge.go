package auth

import (
	"errors"
	"fmt"
	"time"
)

// ErrVerifierBusy reports that the verification pool could not take the job
// within the queue window. It is a request-level failure, not a rejection.
var ErrVerifierBusy = errors.New("verification pool saturated")

// Outcome is the completed result of an asynchronous verification.
type Outcome struct {
	Claims *Claims
	Err    error
}

// Verifier bridges the blocking signature check off the accept path. Workers
// are spawned on demand up to a fixed cap and released when idle, so a burst
// of verifications never stalls connection handling.
type Verifier struct {
	codec     *TokenCodec
	slots     chan struct{}
	queueWait time.Duration
}

// NewVerifier builds a verifier with at most maxWorkers concurrent checks.
func NewVerifier(codec *TokenCodec, maxWorkers int) *Verifier {
	if maxWorkers <= 0 {
		maxWorkers = 16
	}
	return &Verifier{
		codec:     codec,
		slots:     make(chan struct{}, maxWorkers),
		queueWait: 100 * time.Millisecond,
	}
}

// VerifyAsync dispatches the blocking verification onto the pool and returns
// immediately. The channel receives exactly one Outcome. Outcome.Err is
// ErrInvalidToken for a rejection; anything else is a bridge failure that
// callers must surface as a server error, not a 401.
func (v *Verifier) VerifyAsync(token string) <-chan Outcome {
	out := make(chan Outcome, 1)

	select {
	case v.slots <- struct{}{}:
	default:
		// All workers busy; wait briefly for a slot before giving up.
		select {
		case v.slots <- struct{}{}:
		case <-time.After(v.queueWait):
			out <- Outcome{Err: ErrVerifierBusy}
			return out
		}
	}

	go func() {
		defer func() {
			<-v.slots
			if r := recover(); r != nil {
				out <- Outcome{Err: fmt.Errorf("verification panic: %v", r)}
			}
		}()
		claims, err := v.codec.Verify(token)
		out <- Outcome{Claims: claims, Err: err}
	}()

	return out
}
