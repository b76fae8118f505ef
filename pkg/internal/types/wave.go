package types

import "errors"

// HarmonicsLen is the number of harmonic magnitudes derived from one waveform buffer.
const HarmonicsLen = WaveLen / 2

// ErrBufferSize is returned when a caller-supplied buffer does not match the bank geometry.
var ErrBufferSize = errors.New("buffer size mismatch")
