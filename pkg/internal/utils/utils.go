package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// FingerprintSamples hashes the exact bit patterns of a sample buffer.
// Two buffers share a fingerprint only if every sample is bit-identical.
func FingerprintSamples(samples []float64) string {
	h := sha256.New()
	var word [8]byte
	for _, v := range samples {
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(v))
		h.Write(word[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}
