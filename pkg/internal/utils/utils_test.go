package utils_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
)

func TestFingerprintSamples(t *testing.T) {
	a := []float64{0, 0.5, -1}
	b := []float64{0, 0.5, -1}
	c := []float64{0, 0.5, math.Nextafter(-1, 0)}

	if utils.FingerprintSamples(a) != utils.FingerprintSamples(b) {
		t.Fatalf("equal buffers should share a fingerprint")
	}
	if utils.FingerprintSamples(a) == utils.FingerprintSamples(c) {
		t.Fatalf("a one-ulp change should alter the fingerprint")
	}
}

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if a == b {
		t.Fatalf("expected distinct hashes")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
