//go:build !phmk2 && !blofeld

package types

// WaveEdit bank format.
const (
	FormatName     = "waveedit"
	WaveLen        = 256
	BankLen        = 64
	BankGridWidth  = 8
	BankGridHeight = 8
)
