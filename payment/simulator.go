// Package payment models the payment gateway collaborator. The core only
// sees the Processor contract; the simulator resolves after a
// method-dependent delay with a configurable success rate.
package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type Method string

const (
	MethodUPI        Method = "upi"
	MethodCard       Method = "card"
	MethodNetBanking Method = "netbanking"
)

// Methods lists the accepted payment methods in display order.
func Methods() []Method {
	return []Method{MethodUPI, MethodCard, MethodNetBanking}
}

// Label returns the user-facing name of a method.
func (m Method) Label() string {
	switch m {
	case MethodUPI:
		return "UPI"
	case MethodCard:
		return "Credit / Debit Card"
	case MethodNetBanking:
		return "Net Banking"
	default:
		return string(m)
	}
}

// Result is the gateway's answer. A decline (including a timeout) is a
// Result, not an error; errors are reserved for misuse of the contract.
type Result struct {
	Approved  bool
	Reference string
	Reason    string
}

// Processor is the contract the booking flow consumes.
type Processor interface {
	Process(ctx context.Context, method Method, amount int) (Result, error)
}

// Simulator is a fake gateway. Fields are set once at construction time.
type Simulator struct {
	SuccessRate float64
	Delays      map[Method]time.Duration
	Timeout     time.Duration

	randFloat func() float64
}

// NewSimulator returns a simulator with the sample defaults: 90% approval,
// per-method delays in the 1.2s-2.5s range, 10s timeout.
func NewSimulator() *Simulator {
	return &Simulator{
		SuccessRate: 0.9,
		Delays: map[Method]time.Duration{
			MethodUPI:        1200 * time.Millisecond,
			MethodCard:       2 * time.Second,
			MethodNetBanking: 2500 * time.Millisecond,
		},
		Timeout:   10 * time.Second,
		randFloat: rand.Float64,
	}
}

// Process waits out the method's delay and then draws an approval. A delay
// exceeding the timeout comes back as a declined result, and context
// cancellation aborts the wait entirely.
func (s *Simulator) Process(ctx context.Context, method Method, amount int) (Result, error) {
	if _, ok := s.Delays[method]; !ok {
		return Result{}, fmt.Errorf("unknown payment method %q", method)
	}
	if amount <= 0 {
		return Result{}, fmt.Errorf("payment amount must be positive, got %d", amount)
	}

	delay := s.Delays[method]
	timer := time.NewTimer(delay)
	defer timer.Stop()

	var timeoutC <-chan time.Time
	if s.Timeout > 0 {
		timeout := time.NewTimer(s.Timeout)
		defer timeout.Stop()
		timeoutC = timeout.C
	}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timeoutC:
		return Result{Approved: false, Reason: "payment timed out, no amount was charged"}, nil
	case <-timer.C:
	}

	draw := rand.Float64
	if s.randFloat != nil {
		draw = s.randFloat
	}
	if draw() < s.SuccessRate {
		return Result{Approved: true, Reference: uuid.NewString()}, nil
	}
	return Result{Approved: false, Reason: "payment was declined by the gateway"}, nil
}
