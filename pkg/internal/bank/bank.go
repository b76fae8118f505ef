// Package bank groups a fixed number of waves with the two generators that
// can drive them, and implements the whole-bank operations.
package bank

import (
	"fmt"
	"sync"

	"github.com/joeydtaylor/wavetable/pkg/internal/basewave"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
	"github.com/joeydtaylor/wavetable/pkg/internal/wave"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
)

// Bank is a fixed array of waves plus a carrier and a modulator generator.
// Regenerating the carrier with broadcast enabled rewrites every slot.
type Bank struct {
	Waves     [types.BankLen]wave.Wave
	Carrier   *basewave.BaseWave
	Modulator *basewave.BaseWave
	Crossmod  CrossmodParams

	componentMetadata types.ComponentMetadata
	sensors           []types.Sensor
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// New returns a cleared bank. The carrier's broadcast observer is bound to
// this bank, so generators are never shared between banks.
func New(options ...types.Option[*Bank]) *Bank {
	b := &Bank{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BANK",
		},
		Carrier:   basewave.New(basewave.WithName("carrier")),
		Modulator: basewave.New(basewave.WithName("modulator")),
	}
	b.Carrier.OnGenerated(b.onCarrierGenerated)

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.Clear()
	return b
}

func (b *Bank) onCarrierGenerated(samples []float64) {
	if b.Crossmod.Active() {
		b.UpdateCrossmod()
		return
	}
	b.BroadcastSamples(samples)
}

// Clear zeroes every wave, resets both generators and the cross-modulation
// settings. Per-wave hooks are kept.
func (b *Bank) Clear() {
	for i := range b.Waves {
		b.Waves[i].Clear()
		b.Waves[i].CommitSamples()
	}
	b.Crossmod = CrossmodParams{}
	b.Carrier.Clear()
	b.Modulator.Clear()
	b.notifyLoggers(types.InfoLevel, "Bank cleared",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventBankCleared,
	)
}

func validID(id int) bool {
	return id >= 0 && id < types.BankLen
}

// Swap exchanges two slots, hooks included. Out of range ids are ignored.
func (b *Bank) Swap(i, j int) {
	if !validID(i) || !validID(j) {
		b.notifyLoggers(types.WarnLevel, "Swap ignored, wave id out of range",
			logschema.FieldComponent, b.componentMetadata,
			"i", i, "j", j,
		)
		return
	}
	b.Waves[i], b.Waves[j] = b.Waves[j], b.Waves[i]
}

// Shuffle permutes slots 3 and above with a Fisher-Yates pass. Slots 0, 1
// and 2 never move. The returned permutation maps each slot to the index
// its wave held before the shuffle.
func (b *Bank) Shuffle(rng types.RandSource) []int {
	perm := make([]int, types.BankLen)
	for i := range perm {
		perm[i] = i
	}
	for j := types.BankLen - 1; j > 3; j-- {
		i := 3 + rng.IntN(j-2)
		b.Swap(i, j)
		perm[i], perm[j] = perm[j], perm[i]
	}

	for _, s := range b.sensors {
		s.InvokeOnShuffle(b.componentMetadata, perm)
	}
	b.notifyLoggers(types.InfoLevel, "Bank shuffled",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventBankShuffle,
	)
	return perm
}

func checkFlat(op string, buf []float64) error {
	if len(buf) != types.BankLen*types.WaveLen {
		return fmt.Errorf("%s: got %d samples, expected %d: %w",
			op, len(buf), types.BankLen*types.WaveLen, types.ErrBufferSize)
	}
	return nil
}

// SetSamples loads a flat buffer of BankLen consecutive waves and commits each one.
func (b *Bank) SetSamples(in []float64) error {
	if err := checkFlat("set samples", in); err != nil {
		return err
	}
	for j := range b.Waves {
		copy(b.Waves[j].Samples[:], in[j*types.WaveLen:(j+1)*types.WaveLen])
		b.Waves[j].CommitSamples()
	}
	return nil
}

// GetPostSamples writes every wave's post samples into out, one after another.
func (b *Bank) GetPostSamples(out []float64) error {
	if err := checkFlat("get post samples", out); err != nil {
		return err
	}
	for j := range b.Waves {
		copy(out[j*types.WaveLen:], b.Waves[j].PostSamples())
	}
	return nil
}

// GetSamples writes every wave's raw samples into out, one after another.
func (b *Bank) GetSamples(out []float64) error {
	if err := checkFlat("get samples", out); err != nil {
		return err
	}
	for j := range b.Waves {
		copy(out[j*types.WaveLen:], b.Waves[j].Samples[:])
	}
	return nil
}

// DuplicateToAll copies the full state of wave id into every other slot.
// The copies are not recommitted since their derived buffers come along.
func (b *Bank) DuplicateToAll(id int) {
	if !validID(id) {
		b.notifyLoggers(types.WarnLevel, "DuplicateToAll ignored, wave id out of range",
			logschema.FieldComponent, b.componentMetadata,
			"id", id,
		)
		return
	}
	for j := range b.Waves {
		if j != id {
			b.Waves[j].Copy(&b.Waves[id])
		}
	}
	b.notifyLoggers(types.InfoLevel, "Wave duplicated to bank",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventDuplicate,
		"id", id,
	)
}

// BroadcastSamples writes samples into every slot and commits them.
func (b *Bank) BroadcastSamples(samples []float64) {
	for j := range b.Waves {
		copy(b.Waves[j].Samples[:], samples)
		b.Waves[j].CommitSamples()
	}
	for _, s := range b.sensors {
		s.InvokeOnBankBroadcast(b.componentMetadata, types.BankLen)
	}
	b.notifyLoggers(types.InfoLevel, "Samples broadcast to bank",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventBankBroadcast,
		"waves", types.BankLen,
	)
}

// Wave returns slot id, or nil when id is out of range.
func (b *Bank) Wave(id int) *wave.Wave {
	if !validID(id) {
		return nil
	}
	return &b.Waves[id]
}

// GridPosition returns the column and row of slot id in the bank grid.
func GridPosition(id int) (x, y int) {
	return id % types.BankGridWidth, id / types.BankGridWidth
}

// GridID is the inverse of GridPosition.
func GridID(x, y int) int {
	return y*types.BankGridWidth + x
}
