// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package workers

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/veilpost/veilpost-go/internal/logger"
)

// stubDeriver implements crypto.KeyDeriver with configurable behavior.
type stubDeriver struct {
	deriveFn func(password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error)
}

func (s *stubDeriver) GenerateSalt() ([]byte, error) {
	return make([]byte, 16), nil
}

func (s *stubDeriver) Derive(password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
	return s.deriveFn(password, salt, timeCost, memoryCost)
}

func TestDeriveRunner_DeliversDerivedKey(t *testing.T) {
	want := []byte("derived-key-material-32-bytes!!!")
	deriver := &stubDeriver{
		deriveFn: func(password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
			if string(password) != "correct horse" {
				t.Errorf("unexpected password: %q", password)
			}
			if timeCost != 4 || memoryCost != 1<<30 {
				t.Errorf("unexpected costs: t=%d m=%d", timeCost, memoryCost)
			}
			return want, nil
		},
	}

	r := NewDeriveRunner(deriver, 2, logger.Nop())
	r.Run()
	defer r.Stop()

	got, err := r.Derive(context.Background(), []byte("correct horse"), make([]byte, 16), 4, 1<<30)
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Derive() = %x, want %x", got, want)
	}
}

func TestDeriveRunner_PropagatesDeriveError(t *testing.T) {
	wantErr := errors.New("bad cost params")
	deriver := &stubDeriver{
		deriveFn: func(_, _ []byte, _ uint32, _ uint64) ([]byte, error) {
			return nil, wantErr
		},
	}

	r := NewDeriveRunner(deriver, 1, logger.Nop())
	r.Run()
	defer r.Stop()

	_, err := r.Derive(context.Background(), []byte("pw"), make([]byte, 16), 1, 8192)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Derive() error = %v, want %v", err, wantErr)
	}
}

func TestDeriveRunner_SerializesDerivations(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32

	deriver := &stubDeriver{
		deriveFn: func(_, _ []byte, _ uint32, _ uint64) ([]byte, error) {
			n := inFlight.Add(1)
			if m := maxInFlight.Load(); n > m {
				maxInFlight.Store(n)
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return make([]byte, 32), nil
		},
	}

	r := NewDeriveRunner(deriver, 8, logger.Nop())
	r.Run()
	defer r.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Derive(context.Background(), []byte("pw"), make([]byte, 16), 1, 8192); err != nil {
				t.Errorf("Derive() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := maxInFlight.Load(); got != 1 {
		t.Fatalf("max concurrent derivations = %d, want 1", got)
	}
}

func TestDeriveRunner_ContextCanceled(t *testing.T) {
	deriver := &stubDeriver{
		deriveFn: func(_, _ []byte, _ uint32, _ uint64) ([]byte, error) {
			return make([]byte, 32), nil
		},
	}

	r := NewDeriveRunner(deriver, 1, logger.Nop())
	r.Run()
	defer r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Derive(ctx, []byte("pw"), make([]byte, 16), 1, 8192)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Derive() error = %v, want context.Canceled", err)
	}
}

func TestDeriveRunner_Stopped(t *testing.T) {
	deriver := &stubDeriver{
		deriveFn: func(_, _ []byte, _ uint32, _ uint64) ([]byte, error) {
			return make([]byte, 32), nil
		},
	}

	r := NewDeriveRunner(deriver, 1, logger.Nop())
	r.Run()
	r.Stop()

	_, err := r.Derive(context.Background(), []byte("pw"), make([]byte, 16), 1, 8192)
	if !errors.Is(err, ErrRunnerStopped) {
		t.Fatalf("Derive() error = %v, want ErrRunnerStopped", err)
	}
}

func TestDeriveRunner_StopTwice(t *testing.T) {
	r := NewDeriveRunner(&stubDeriver{}, 1, logger.Nop())
	r.Run()

	// Must not panic.
	r.Stop()
	r.Stop()
}
