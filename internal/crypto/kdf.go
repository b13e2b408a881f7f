// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrBadCostParams reports derivation cost parameters outside the bounds
// the client is willing to honor.
var ErrBadCostParams = errors.New("derivation cost parameters out of bounds")

// CostProfile is an Argon2id tuning preset. MemoryCost is in bytes, the
// unit the wire format uses.
type CostProfile struct {
	TimeCost   uint32
	MemoryCost uint64
}

// Derivation presets. New accounts always use [ProfileSensitive]; the
// lighter profiles exist for constrained targets that accept a weaker
// offline-attack margin.
var (
	ProfileSensitive   = CostProfile{TimeCost: 4, MemoryCost: 1024 * 1024 * 1024}
	ProfileModerate    = CostProfile{TimeCost: 3, MemoryCost: 256 * 1024 * 1024}
	ProfileInteractive = CostProfile{TimeCost: 2, MemoryCost: 64 * 1024 * 1024}
)

// Bounds applied to cost parameters before any derivation runs. Login
// derives with server-supplied parameters, so the client refuses values a
// hostile or corrupted server could use to stall or exhaust it.
const (
	minTimeCost   = 1
	maxTimeCost   = 16
	minMemoryCost = 8 * 1024               // argon2 floor: 8 KiB per lane
	maxMemoryCost = 4 * 1024 * 1024 * 1024 // 4 GiB
)

// deriveLanes pins Argon2id parallelism. The wire format carries only time
// and memory cost, so the lane count must be a cross-client constant or two
// clients would derive different keys from the same account parameters.
const deriveLanes = 1

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct{}

// NewKeyDeriver constructs a [KeyDeriver] backed by Argon2id.
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{}
}

// GenerateSalt implements [KeyDeriver]. It reads 16 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (k *keyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Derive implements [KeyDeriver]. It bounds-checks the cost parameters,
// converts the byte-denominated memory cost to the KiB unit argon2 expects,
// and runs Argon2id with the pinned lane count.
func (k *keyDeriver) Derive(password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error) {
	if err := checkCostParams(timeCost, memoryCost); err != nil {
		return nil, err
	}
	if len(salt) != saltSize {
		return nil, fmt.Errorf("salt length = %d, want %d", len(salt), saltSize)
	}

	memoryKiB := uint32(memoryCost / 1024)

	return argon2.IDKey(password, salt, timeCost, memoryKiB, deriveLanes, keySize), nil
}

func checkCostParams(timeCost uint32, memoryCost uint64) error {
	if timeCost < minTimeCost || timeCost > maxTimeCost {
		return fmt.Errorf("%w: time cost %d outside [%d, %d]",
			ErrBadCostParams, timeCost, minTimeCost, maxTimeCost)
	}
	if memoryCost < minMemoryCost || memoryCost > maxMemoryCost {
		return fmt.Errorf("%w: memory cost %d outside [%d, %d]",
			ErrBadCostParams, memoryCost, minMemoryCost, uint64(maxMemoryCost))
	}
	if memoryCost%1024 != 0 {
		return fmt.Errorf("%w: memory cost %d is not KiB-aligned", ErrBadCostParams, memoryCost)
	}
	return nil
}
