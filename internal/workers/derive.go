// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
)

// ErrRunnerStopped is returned by Derive after Stop has been called.
var ErrRunnerStopped = errors.New("derive runner stopped")

// DeriveRunner serializes Argon2 key derivations through a single worker
// goroutine. A derivation at the sensitive profile commits a gigabyte of
// memory, so concurrent derivations from several flows would multiply the
// client's peak memory use; the runner bounds it to one derivation's worth.
type DeriveRunner struct {
	deriver crypto.KeyDeriver
	log     *logger.Logger

	jobs     chan *deriveJob
	quit     chan struct{}
	stopOnce sync.Once
}

type deriveJob struct {
	ctx        context.Context
	password   []byte
	salt       []byte
	timeCost   uint32
	memoryCost uint64
	reply      chan deriveResult
}

type deriveResult struct {
	key []byte
	err error
}

// NewDeriveRunner builds a runner over the given deriver. queueSize is the
// number of derivation requests that may wait while one is in progress.
func NewDeriveRunner(deriver crypto.KeyDeriver, queueSize int, log *logger.Logger) *DeriveRunner {
	if queueSize < 1 {
		queueSize = 1
	}

	return &DeriveRunner{
		deriver: deriver,
		log:     log,
		jobs:    make(chan *deriveJob, queueSize),
		quit:    make(chan struct{}),
	}
}

// Run starts the worker goroutine. Implements [Worker].
func (r *DeriveRunner) Run() {
	go r.loop()
}

// Stop shuts the runner down. Queued jobs are abandoned; their callers
// receive [ErrRunnerStopped]. Safe to call more than once.
func (r *DeriveRunner) Stop() {
	r.stopOnce.Do(func() {
		close(r.quit)
		r.log.Debug().Msg("derive runner stopped")
	})
}

// Derive submits a derivation job and waits for its result. It blocks
// until the worker picks the job up and finishes it, the context is
// canceled, or the runner stops.
//
// The returned key is owned by the caller; zeroize it when done.
func (r *DeriveRunner) Derive(ctx context.Context, password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
	// A stopped runner refuses new work immediately, even while the
	// queue still has room.
	select {
	case <-r.quit:
		return nil, ErrRunnerStopped
	default:
	}

	job := &deriveJob{
		ctx:        ctx,
		password:   password,
		salt:       salt,
		timeCost:   timeCost,
		memoryCost: memoryCost,
		reply:      make(chan deriveResult, 1),
	}

	select {
	case r.jobs <- job:
	case <-r.quit:
		return nil, ErrRunnerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-job.reply:
		return res.key, res.err
	case <-r.quit:
		// The in-flight job may have just finished; prefer its result.
		select {
		case res := <-job.reply:
			return res.key, res.err
		default:
			return nil, ErrRunnerStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *DeriveRunner) loop() {
	r.log.Debug().Msg("derive runner started")

	for {
		select {
		case <-r.quit:
			return
		case job := <-r.jobs:
			r.process(job)
		}
	}
}

func (r *DeriveRunner) process(job *deriveJob) {
	// Skip the expensive work if the caller already gave up.
	if err := job.ctx.Err(); err != nil {
		job.reply <- deriveResult{err: err}
		return
	}

	key, err := r.deriver.Derive(job.password, job.salt, job.timeCost, job.memoryCost)

	// The reply channel is buffered, so this send never blocks. If the
	// caller left while we were deriving, scrub the key instead of
	// parking it in an unread channel.
	if job.ctx.Err() != nil {
		crypto.Zeroize(key)
		job.reply <- deriveResult{err: job.ctx.Err()}
		return
	}

	job.reply <- deriveResult{key: key, err: err}
}
