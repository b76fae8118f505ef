package builder

import (
	"errors"
	"testing"
)

func TestLoadAndExportFlat(t *testing.T) {
	b := NewBank()
	pcm := make([]int16, BankLen*WaveLen)
	for i := range pcm {
		pcm[i] = int16(i%WaveLen*64 - 8192)
	}
	if err := LoadFlat(b, pcm); err != nil {
		t.Fatalf("LoadFlat: %v", err)
	}

	out, err := ExportFlat(b)
	if err != nil {
		t.Fatalf("ExportFlat: %v", err)
	}
	for i := range pcm {
		d := int(out[i]) - int(pcm[i])
		if d < -1 || d > 1 {
			t.Fatalf("sample %d: exported %d, loaded %d", i, out[i], pcm[i])
		}
	}
}

func TestLoadFlat_SizeMismatch(t *testing.T) {
	err := LoadFlat(NewBank(), make([]int16, 10))
	if !errors.Is(err, ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
}

func TestFacadeWiring(t *testing.T) {
	m := NewMeter(MeterWithHostStats(false))
	s := NewSensor(SensorWithMeter(m))
	b := NewBank(BankWithSensor(s), BankWithComponentMetadata("main", "bank-1"))

	b.Carrier.GenerateSamples(true)
	if got := m.GetMetricCount(MetricBankBroadcastCount); got != 1 {
		t.Fatalf("expected 1 broadcast, got %d", got)
	}
	if got := m.GetMetricCount(MetricBaseWaveGenerateCount); got == 0 {
		t.Fatalf("expected base wave generations to be counted")
	}

	b.Shuffle(NewRand(5))
	if got := m.GetMetricCount(MetricBankShuffleCount); got != 1 {
		t.Fatalf("expected 1 shuffle, got %d", got)
	}
	if len(Stages()) == 0 {
		t.Fatalf("expected a non-empty effect chain")
	}
	if x, y := GridPosition(BankGridWidth + 1); x != 1 || y != 1 {
		t.Fatalf("unexpected grid position %d,%d", x, y)
	}
}
