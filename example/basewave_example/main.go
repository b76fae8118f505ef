package main

import (
	"fmt"

	"github.com/joeydtaylor/wavetable/pkg/builder"
)

func main() {
	cfg := builder.ConfigFromEnv()
	logger := cfg.Logger(builder.LoggerWithFields(map[string]interface{}{"example": "basewave"}))
	defer logger.Flush()

	meter := builder.NewMeter(builder.MeterWithLogger(logger))
	sensor := builder.NewSensor(
		builder.SensorWithMeter(meter),
		builder.SensorWithOnBankBroadcastFunc(func(c builder.ComponentMetadata, waves int) {
			fmt.Printf("%s wrote %d waves\n", c.Name, waves)
		}),
	)

	bank := builder.NewBank(
		builder.BankWithLogger(logger),
		builder.BankWithSensor(sensor),
		builder.BankWithComponentMetadata("bank", "example"),
	)

	// Somewhere between triangle and tri-pulse, read through a bent phasor with resonance.
	carrier := bank.Carrier
	carrier.LowerShape = 0.4
	carrier.LockShapes = true
	carrier.PulseWidth = 0.35
	carrier.Brightness = 0.8
	carrier.BottomAngle, carrier.BottomMagnitude = 0.2, 0.6
	carrier.TopAngle, carrier.TopMagnitude = 0.7, 0.3
	carrier.BezierRatio = 0.5
	carrier.Resonance = 1.5
	carrier.Algorithm = builder.ResonanceResonant
	carrier.UpdateShape()
	carrier.UpdatePhasor()
	carrier.GenerateSamples(true)

	fmt.Printf("format %s: %d waves of %d samples\n", builder.FormatName, builder.BankLen, builder.WaveLen)
	analysis := builder.AnalyzeWave(bank.Waves[0].PostSamples())
	fmt.Printf("dominant harmonic %d, snr %.1f dB\n", analysis.Dominant, analysis.SNR)
	for k := 1; k <= 8; k++ {
		fmt.Printf("  h%-2d %.4f\n", k, analysis.Harmonics[k])
	}

	meter.ReportToLoggers()
}
