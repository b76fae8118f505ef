// Package wave holds a single editable cycle, its spectrum and the result of
// running it through the effect chain.
//
// Buffers are plain arrays written in place. A playback goroutine may read
// PostSamples while an edit rewrites it; a torn read only produces a brief
// glitch, so no lock guards the sample data.
package wave

import (
	"math"
	"sync"
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
)

// Wave is one slot of a bank. The zero value is a silent wave with all effects off.
type Wave struct {
	Samples   [types.WaveLen]float64
	Harmonics [types.HarmonicsLen]float64
	Effects   [EffectCount]float64
	Cycle     bool
	Normalize bool

	spectrum      [types.WaveLen]float64
	postSamples   [types.WaveLen]float64
	postSpectrum  [types.WaveLen]float64
	postHarmonics [types.HarmonicsLen]float64

	hooks *hooks
}

// hooks are per-instance observers that survive Copy, Clear and Paste.
type hooks struct {
	componentMetadata types.ComponentMetadata
	sensors           []types.Sensor
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// New returns a cleared wave with the given options applied.
func New(options ...types.Option[*Wave]) *Wave {
	w := &Wave{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

func (w *Wave) ensureHooks() *hooks {
	if w.hooks == nil {
		w.hooks = &hooks{
			componentMetadata: types.ComponentMetadata{
				ID:   utils.GenerateUniqueHash(),
				Type: "WAVE",
			},
		}
	}
	return w.hooks
}

// Spectrum returns the packed spectrum of Samples from the last commit.
func (w *Wave) Spectrum() []float64 { return w.spectrum[:] }

// PostSamples returns the output of the effect chain.
func (w *Wave) PostSamples() []float64 { return w.postSamples[:] }

// PostSpectrum returns the packed spectrum of PostSamples.
func (w *Wave) PostSpectrum() []float64 { return w.postSpectrum[:] }

// PostHarmonics returns the magnitudes of PostSpectrum.
func (w *Wave) PostHarmonics() []float64 { return w.postHarmonics[:] }

// Fingerprint identifies the exact contents of Samples.
func (w *Wave) Fingerprint() string {
	return utils.FingerprintSamples(w.Samples[:])
}

// Clear zeroes every buffer, effect and flag. Hooks are kept.
func (w *Wave) Clear() {
	h := w.hooks
	*w = Wave{}
	w.hooks = h
}

// Copy overwrites w with the contents of src. Hooks are kept.
func (w *Wave) Copy(src *Wave) {
	if src == nil || src == w {
		return
	}
	h := w.hooks
	*w = *src
	w.hooks = h
}

// UpdatePost runs the effect chain over Samples and refreshes the post buffers.
func (w *Wave) UpdatePost() {
	start := time.Now()

	out := make([]float64, types.WaveLen)
	copy(out, w.Samples[:])
	for _, stage := range chain {
		if stage.Enabled(w) {
			stage.Apply(w, out)
		}
	}

	copy(w.postSamples[:], out)
	dsp.RFFT(w.postSamples[:], w.postSpectrum[:])
	dsp.Harmonics(w.postSpectrum[:], w.postHarmonics[:])

	w.notifyPostUpdated(time.Since(start))
}

// CommitSamples recomputes the spectrum and harmonics from Samples, then UpdatePost.
func (w *Wave) CommitSamples() {
	dsp.RFFT(w.Samples[:], w.spectrum[:])
	dsp.Harmonics(w.spectrum[:], w.Harmonics[:])
	w.UpdatePost()
}

// CommitHarmonics rebuilds Samples from edited Harmonics. Each bin keeps its
// previous phase; bins that were silent get phase 0 for DC and -90 degrees
// otherwise. Harmonics[0] covers the packed DC and Nyquist pair, so both are
// scaled together.
func (w *Wave) CommitHarmonics() {
	for i := range w.Harmonics {
		re, im := &w.spectrum[2*i], &w.spectrum[2*i+1]
		old := math.Hypot(*re, *im)
		target := w.Harmonics[i] / 2
		switch {
		case old > 1e-6:
			*re *= target / old
			*im *= target / old
		case i == 0:
			*re, *im = target, 0
		default:
			*re, *im = 0, -target
		}
	}
	dsp.IRFFT(w.spectrum[:], w.Samples[:])
	w.UpdatePost()
}

// ClearEffects zeroes every effect, turns Cycle off and Normalize on.
func (w *Wave) ClearEffects() {
	w.Effects = [EffectCount]float64{}
	w.Cycle = false
	w.Normalize = true
	w.UpdatePost()
}

// BakeEffects makes PostSamples the new Samples and clears the effects.
// Effects are cleared before the samples are recommitted.
func (w *Wave) BakeEffects() {
	w.Samples = w.postSamples
	w.ClearEffects()
	w.CommitSamples()
}

// RandomizeEffects gives each effect a 1 in 4 chance of a nonzero value u^2.
func (w *Wave) RandomizeEffects(rng types.RandSource) {
	for i := range w.Effects {
		if rng.Float64() > 0.75 {
			u := rng.Float64()
			w.Effects[i] = u * u
		} else {
			w.Effects[i] = 0
		}
	}
	w.UpdatePost()
}

// MorphEffect sets one effect to the crossfade of from and to at fade.
func (w *Wave) MorphEffect(from, to *Wave, effect EffectID, fade float64) {
	if effect < 0 || effect >= EffectCount {
		return
	}
	w.Effects[effect] = dsp.Crossfade(from.Effects[effect], to.Effects[effect], fade)
	w.UpdatePost()
}

// MorphAllEffects crossfades every effect between from and to at fade.
func (w *Wave) MorphAllEffects(from, to *Wave, fade float64) {
	for i := range w.Effects {
		w.Effects[i] = dsp.Crossfade(from.Effects[i], to.Effects[i], fade)
	}
	w.UpdatePost()
}

func (w *Wave) notifyPostUpdated(elapsed time.Duration) {
	if w.hooks == nil {
		return
	}
	for _, s := range w.hooks.sensors {
		s.InvokeOnPostUpdated(w.hooks.componentMetadata, w.postSamples[:], elapsed)
	}
	w.notifyLoggers(types.DebugLevel, "Post samples updated",
		logschema.FieldComponent, w.hooks.componentMetadata,
		logschema.FieldEvent, logschema.EventPostUpdated,
		logschema.FieldSamples, w.postSamples[:],
		"elapsed", elapsed,
	)
}
