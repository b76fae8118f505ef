//go:build blofeld

package types

// Blofeld wavetable format.
const (
	FormatName     = "blofeld"
	WaveLen        = 128
	BankLen        = 64
	BankGridWidth  = 8
	BankGridHeight = 8
)
