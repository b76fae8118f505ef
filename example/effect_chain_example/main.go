package main

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/wavetable/pkg/builder"
)

func main() {
	cfg := builder.ConfigFromEnv()
	logger := cfg.Logger()
	defer logger.Flush()

	sensor := builder.NewSensor(
		builder.SensorWithLogger(logger),
		builder.SensorWithOnPostUpdatedFunc(func(c builder.ComponentMetadata, post []float64) {
			peak := 0.0
			for _, v := range post {
				peak = math.Max(peak, math.Abs(v))
			}
			logger.Info("Post updated", "wave", c.Name, "peak", peak)
		}),
	)

	w := builder.NewWave(
		builder.WaveWithLogger(logger),
		builder.WaveWithSensor(sensor),
		builder.WaveWithComponentMetadata("saw", "0"),
	)
	for i := range w.Samples {
		w.Samples[i] = 2*float64(i)/builder.WaveLen - 1
	}
	w.CommitSamples()

	w.Effects[builder.EffectPreGain] = 0.3
	w.Effects[builder.EffectComb] = 0.15
	w.Effects[builder.EffectQuantization] = 0.2
	w.Effects[builder.EffectLowpass] = 0.4
	w.Normalize = true
	w.UpdatePost()
	fmt.Println("active stages:", w.ActiveStages())

	before := builder.AnalyzeWave(w.Samples[:])
	after := builder.AnalyzeWave(w.PostSamples())
	for k := 1; k <= 6; k++ {
		fmt.Printf("h%d %.4f -> %.4f\n", k, before.Harmonics[k], after.Harmonics[k])
	}

	var clip builder.Clipboard
	w.ClipboardCopy(&clip)
	w.RandomizeEffects(cfg.Rand())
	fmt.Println("randomized stages:", w.ActiveStages())
	w.BakeEffects()
	w.ApplyRingModulation(&clip)
	fmt.Printf("after ring modulation: dominant harmonic %d\n", builder.AnalyzeWave(w.PostSamples()).Dominant)
}
