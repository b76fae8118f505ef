//go:build phmk2

package types

// PHMK2 ROM format.
const (
	FormatName     = "phmk2"
	WaveLen        = 256
	BankLen        = 256
	BankGridWidth  = 16
	BankGridHeight = 16
)
