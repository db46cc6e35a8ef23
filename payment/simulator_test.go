package payment

import (
	"context"
	"testing"
	"time"
)

func fastSimulator(rate float64) *Simulator {
	sim := NewSimulator()
	sim.SuccessRate = rate
	sim.Delays = map[Method]time.Duration{
		MethodUPI:        time.Millisecond,
		MethodCard:       time.Millisecond,
		MethodNetBanking: time.Millisecond,
	}
	sim.Timeout = time.Second
	return sim
}

func TestProcess_Approves(t *testing.T) {
	sim := fastSimulator(1.0)
	sim.randFloat = func() float64 { return 0.5 }

	result, err := sim.Process(context.Background(), MethodUPI, 550)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !result.Approved {
		t.Fatalf("expected approval, got %+v", result)
	}
	if result.Reference == "" {
		t.Fatal("expected a gateway reference")
	}
}

func TestProcess_Declines(t *testing.T) {
	sim := fastSimulator(0.9)
	sim.randFloat = func() float64 { return 0.95 }

	result, err := sim.Process(context.Background(), MethodCard, 550)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Approved {
		t.Fatalf("expected decline, got %+v", result)
	}
	if result.Reason == "" {
		t.Fatal("expected a decline reason")
	}
}

func TestProcess_TimeoutIsADecline(t *testing.T) {
	sim := fastSimulator(1.0)
	sim.Delays[MethodNetBanking] = time.Second
	sim.Timeout = 5 * time.Millisecond

	result, err := sim.Process(context.Background(), MethodNetBanking, 550)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Approved {
		t.Fatalf("expected timeout decline, got %+v", result)
	}
	if result.Reason == "" {
		t.Fatal("expected a timeout reason")
	}
}

func TestProcess_ContextCancel(t *testing.T) {
	sim := fastSimulator(1.0)
	sim.Delays[MethodUPI] = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	if _, err := sim.Process(ctx, MethodUPI, 550); err == nil {
		t.Fatal("expected context error")
	}
}

func TestProcess_ContractMisuse(t *testing.T) {
	sim := fastSimulator(1.0)
	if _, err := sim.Process(context.Background(), Method("cheque"), 550); err == nil {
		t.Fatal("expected error for unknown method")
	}
	if _, err := sim.Process(context.Background(), MethodUPI, 0); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}
