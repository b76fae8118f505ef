package dsp_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
)

func TestNormalize_ConstantFillsEmpty(t *testing.T) {
	buf := []float64{0.3, 0.3, 0.3, 0.3}
	dsp.Normalize(buf, -1, 1, 0)
	for i, v := range buf {
		if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d = %v, expected 0", i, v)
		}
	}
}

func TestNormalize_Range(t *testing.T) {
	buf := []float64{2, 4, 3}
	dsp.Normalize(buf, -1, 1, 0)
	expected := []float64{-1, 1, 0}
	for i := range buf {
		if math.Abs(buf[i]-expected[i]) > 1e-12 {
			t.Fatalf("sample %d = %v, expected %v", i, buf[i], expected[i])
		}
	}
}

func TestLinterp(t *testing.T) {
	p := []float64{0, 1, 3}
	cases := []struct {
		x, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.25, 1.5},
		{2, 3},
	}
	for _, c := range cases {
		if got := dsp.Linterp(p, c.x); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("Linterp(%v) = %v, expected %v", c.x, got, c.want)
		}
	}
}

func TestBlepBlamp(t *testing.T) {
	dt := 0.1
	if got := dsp.Blep(0, dt); got != -1 {
		t.Fatalf("Blep(0) = %v, expected -1", got)
	}
	if got := dsp.Blep(0.5, dt); got != 0 {
		t.Fatalf("Blep(0.5) = %v, expected 0", got)
	}
	if got := dsp.Blep(1, dt); got != 1 {
		t.Fatalf("Blep(1) = %v, expected 1", got)
	}
	if got := dsp.Blamp(0, dt); math.Abs(got-1.0/3) > 1e-12 {
		t.Fatalf("Blamp(0) = %v, expected 1/3", got)
	}
	if got := dsp.Blamp(0.5, dt); got != 0 {
		t.Fatalf("Blamp(0.5) = %v, expected 0", got)
	}
}

func TestCyclicOversampleUndersample(t *testing.T) {
	in := []float64{0, 1, 0, -1}
	over := make([]float64, 8)
	dsp.CyclicOversample(in, over, 2)
	expected := []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5}
	for i := range over {
		if math.Abs(over[i]-expected[i]) > 1e-12 {
			t.Fatalf("oversample %d = %v, expected %v", i, over[i], expected[i])
		}
	}

	back := make([]float64, 4)
	dsp.CyclicUndersample(over, back, 2)
	for i := range back {
		if back[i] != in[i] {
			t.Fatalf("undersample %d = %v, expected %v", i, back[i], in[i])
		}
	}
}

func TestEucmod(t *testing.T) {
	if got := dsp.Eucmod(-0.25, 1); got != 0.75 {
		t.Fatalf("Eucmod(-0.25, 1) = %v", got)
	}
	if got := dsp.EucmodInt(-1, 4); got != 3 {
		t.Fatalf("EucmodInt(-1, 4) = %v", got)
	}
}

func TestInt16Conversion(t *testing.T) {
	pcm := make([]int16, 3)
	dsp.FloatToInt16([]float64{-2, 0, 1}, pcm)
	if pcm[0] != -32767 || pcm[1] != 0 || pcm[2] != 32767 {
		t.Fatalf("unexpected pcm %v", pcm)
	}
	back := make([]float64, 3)
	dsp.Int16ToFloat([]int16{-32768, 0, 16384}, back)
	if back[0] != -1 || back[1] != 0 || back[2] != 0.5 {
		t.Fatalf("unexpected floats %v", back)
	}
}
