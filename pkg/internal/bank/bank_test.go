package bank_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/joeydtaylor/wavetable/pkg/internal/bank"
	"github.com/joeydtaylor/wavetable/pkg/internal/sensor"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/wave"
)

const (
	n     = types.WaveLen
	slots = types.BankLen
)

type countingLogger struct {
	level types.LogLevel
	info  int
	warn  int
}

func (l *countingLogger) GetLevel() types.LogLevel {
	return l.level
}

func (l *countingLogger) SetLevel(level types.LogLevel) {
	l.level = level
}

func (*countingLogger) Debug(string, ...interface{}) {}

func (l *countingLogger) Info(string, ...interface{}) {
	l.info++
}

func (l *countingLogger) Warn(string, ...interface{}) {
	l.warn++
}

func (*countingLogger) Error(string, ...interface{}) {}

func (*countingLogger) DPanic(string, ...interface{}) {}

func (*countingLogger) Panic(string, ...interface{}) {}

func (*countingLogger) Fatal(string, ...interface{}) {}

func (l *countingLogger) Flush() error {
	return nil
}

func (l *countingLogger) AddSink(string, types.SinkConfig) error {
	return nil
}

func (l *countingLogger) RemoveSink(string) error {
	return nil
}

func (l *countingLogger) ListSinks() ([]string, error) {
	return nil, nil
}

// ramp fills the bank so that every slot holds a distinct wave.
func ramp(t *testing.T, b *bank.Bank) {
	t.Helper()
	flat := make([]float64, slots*n)
	for j := 0; j < slots; j++ {
		for i := 0; i < n; i++ {
			flat[j*n+i] = float64(j+1) / slots * math.Sin(2*math.Pi*float64(i)/n)
		}
	}
	if err := b.SetSamples(flat); err != nil {
		t.Fatalf("SetSamples: %v", err)
	}
}

func TestNew_ClearedBank(t *testing.T) {
	b := bank.New()
	for j := range b.Waves {
		for _, v := range b.Waves[j].PostSamples() {
			if v != 0 {
				t.Fatalf("slot %d not silent", j)
			}
		}
	}
	if b.Crossmod.Active() {
		t.Fatalf("crossmod active on a new bank")
	}
}

func TestShuffle_KeepsFirstThreeAndPermutesRest(t *testing.T) {
	b := bank.New()
	ramp(t, b)
	before := make([]string, slots)
	for j := range b.Waves {
		before[j] = b.Waves[j].Fingerprint()
	}

	perm := b.Shuffle(rand.New(rand.NewPCG(11, 12)))

	for j := 0; j < 3; j++ {
		if perm[j] != j || b.Waves[j].Fingerprint() != before[j] {
			t.Fatalf("slot %d moved", j)
		}
	}
	seen := map[string]bool{}
	for j := range b.Waves {
		fp := b.Waves[j].Fingerprint()
		if fp != before[perm[j]] {
			t.Fatalf("slot %d does not hold wave %d", j, perm[j])
		}
		if seen[fp] {
			t.Fatalf("wave duplicated at slot %d", j)
		}
		seen[fp] = true
	}
	if len(seen) != slots {
		t.Fatalf("expected %d distinct waves, got %d", slots, len(seen))
	}
}

func TestShuffle_ReportsToSensor(t *testing.T) {
	var got []int
	s := sensor.NewSensor(sensor.WithOnShuffleFunc(func(c types.ComponentMetadata, perm []int) { got = perm }))
	b := bank.New(bank.WithSensor(s))
	perm := b.Shuffle(rand.New(rand.NewPCG(1, 1)))
	if len(got) != slots || got[slots-1] != perm[slots-1] {
		t.Fatalf("sensor did not receive the permutation")
	}
}

func TestSetSamples_SizeMismatch(t *testing.T) {
	b := bank.New()
	err := b.SetSamples(make([]float64, n))
	if !errors.Is(err, types.ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
	if err := b.GetPostSamples(make([]float64, 3)); !errors.Is(err, types.ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
	if err := b.GetSamples(nil); !errors.Is(err, types.ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
}

func TestSetAndGetSamples(t *testing.T) {
	b := bank.New()
	ramp(t, b)

	raw := make([]float64, slots*n)
	post := make([]float64, slots*n)
	if err := b.GetSamples(raw); err != nil {
		t.Fatalf("GetSamples: %v", err)
	}
	if err := b.GetPostSamples(post); err != nil {
		t.Fatalf("GetPostSamples: %v", err)
	}
	for i := range raw {
		if raw[i] != post[i] {
			t.Fatalf("sample %d: raw %v != post %v with no effects", i, raw[i], post[i])
		}
	}
	if math.Abs(b.Waves[slots-1].Harmonics[1]-1) > 1e-6 {
		t.Fatalf("last slot not committed, harmonic 1 = %v", b.Waves[slots-1].Harmonics[1])
	}
}

func TestDuplicateToAll(t *testing.T) {
	logger := &countingLogger{level: types.InfoLevel}
	b := bank.New(bank.WithLogger(logger))
	ramp(t, b)
	b.Waves[5].Effects[wave.Slew] = 0.5
	b.Waves[5].UpdatePost()

	b.DuplicateToAll(5)
	for j := range b.Waves {
		if b.Waves[j].Fingerprint() != b.Waves[5].Fingerprint() || b.Waves[j].Effects[wave.Slew] != 0.5 {
			t.Fatalf("slot %d not duplicated", j)
		}
		if b.Waves[j].PostSamples()[10] != b.Waves[5].PostSamples()[10] {
			t.Fatalf("slot %d post samples differ", j)
		}
	}

	b.DuplicateToAll(-1)
	b.DuplicateToAll(slots)
	if logger.warn != 2 {
		t.Fatalf("expected 2 warnings, got %d", logger.warn)
	}
}

func TestCarrierBroadcast(t *testing.T) {
	broadcasts := 0
	s := sensor.NewSensor(sensor.WithOnBankBroadcastFunc(func(c types.ComponentMetadata, waves int) {
		broadcasts++
		if waves != slots {
			t.Fatalf("expected %d waves, got %d", slots, waves)
		}
	}))
	b := bank.New(bank.WithSensor(s))

	b.Carrier.LowerShape = 0.3
	b.Carrier.UpdateShape()
	b.Carrier.GenerateSamples(false)
	if broadcasts != 0 || b.Waves[0].Samples[10] != 0 {
		t.Fatalf("generate without broadcast touched the bank")
	}

	b.Carrier.GenerateSamples(true)
	if broadcasts != 1 {
		t.Fatalf("expected 1 broadcast, got %d", broadcasts)
	}
	for j := range b.Waves {
		for i, v := range b.Waves[j].Samples {
			if v != b.Carrier.Samples()[i] {
				t.Fatalf("slot %d sample %d not broadcast", j, i)
			}
		}
	}

	b.Modulator.GenerateSamples(true)
	if broadcasts != 1 {
		t.Fatalf("modulator must not drive the bank")
	}
}

func TestUpdateCrossmod(t *testing.T) {
	crossmods := 0
	s := sensor.NewSensor(sensor.WithOnCrossmodUpdatedFunc(func(types.ComponentMetadata, []float64) { crossmods++ }))
	b := bank.New(bank.WithSensor(s))
	b.Modulator.LowerShape = 0.5
	b.Modulator.UpdateShape()
	b.Modulator.GenerateSamples(false)

	b.Crossmod = bank.CrossmodParams{Ring: 1, Index: 0}
	b.Carrier.GenerateSamples(true)
	if crossmods != 1 {
		t.Fatalf("expected the carrier to route through crossmod, got %d", crossmods)
	}

	peak := 0.0
	differs := false
	for i, v := range b.Waves[7].Samples {
		peak = math.Max(peak, math.Abs(v))
		if v != b.Carrier.Samples()[i] {
			differs = true
		}
	}
	if math.Abs(peak-1) > 1e-9 {
		t.Fatalf("crossmod output not normalized, peak %v", peak)
	}
	if !differs {
		t.Fatalf("ring modulation left the carrier unchanged")
	}
}

func TestCrossmodMixOnly(t *testing.T) {
	b := bank.New()
	b.Crossmod = bank.CrossmodParams{ModulatorMix: 1}
	b.UpdateCrossmod()

	// Carrier and modulator both default to the same sine, so mixing only rescales.
	for i, v := range b.Waves[0].Samples {
		if math.Abs(v-b.Carrier.Samples()[i]) > 1e-9 {
			t.Fatalf("sample %d = %v, expected %v", i, v, b.Carrier.Samples()[i])
		}
	}
}

func TestSwapOutOfRange(t *testing.T) {
	logger := &countingLogger{level: types.WarnLevel}
	b := bank.New(bank.WithLogger(logger))
	b.Swap(0, slots)
	if logger.warn != 1 {
		t.Fatalf("expected a warning, got %d", logger.warn)
	}
}

func TestGridPosition(t *testing.T) {
	for id := 0; id < slots; id++ {
		x, y := bank.GridPosition(id)
		if x < 0 || x >= types.BankGridWidth || y < 0 || y >= types.BankGridHeight {
			t.Fatalf("id %d maps outside the grid: %d,%d", id, x, y)
		}
		if bank.GridID(x, y) != id {
			t.Fatalf("GridID(%d, %d) = %d, expected %d", x, y, bank.GridID(x, y), id)
		}
	}
}
