package wave

import "github.com/joeydtaylor/wavetable/pkg/internal/dsp"

// Clipboard holds one copied wave. Paste and the Apply operations do nothing
// until something has been copied. The zero value is an empty clipboard.
type Clipboard struct {
	wave   Wave
	active bool
}

// Copy stores a snapshot of w.
func (c *Clipboard) Copy(w *Wave) {
	c.wave = *w
	c.wave.hooks = nil
	c.active = true
}

// Paste overwrites w with the stored wave. It reports whether anything was pasted.
func (c *Clipboard) Paste(w *Wave) bool {
	if !c.active {
		return false
	}
	w.Copy(&c.wave)
	return true
}

// Active reports whether the clipboard holds a wave.
func (c *Clipboard) Active() bool {
	return c.active
}

// Wave returns a copy of the stored wave.
func (c *Clipboard) Wave() (Wave, bool) {
	return c.wave, c.active
}

func (c *Clipboard) modulator() ([]float64, bool) {
	if c == nil || !c.active {
		return nil, false
	}
	return c.wave.Samples[:], true
}

// ClipboardCopy stores w in c.
func (w *Wave) ClipboardCopy(c *Clipboard) {
	c.Copy(w)
}

// ClipboardPaste replaces w with the contents of c, if any.
func (w *Wave) ClipboardPaste(c *Clipboard) bool {
	return c.Paste(w)
}

// ApplyRingModulation ring-modulates Samples by the clipboard wave.
func (w *Wave) ApplyRingModulation(c *Clipboard) bool {
	return w.applyModulator(c, func(carrier, mod []float64) {
		dsp.RingModulation(carrier, mod, 1, 1)
	})
}

// ApplyAmplitudeModulation amplitude-modulates Samples by the clipboard wave.
func (w *Wave) ApplyAmplitudeModulation(c *Clipboard) bool {
	return w.applyModulator(c, func(carrier, mod []float64) {
		dsp.AmplitudeModulation(carrier, mod, 1, 1)
	})
}

// ApplyPhaseModulation phase-modulates Samples by the clipboard wave.
func (w *Wave) ApplyPhaseModulation(c *Clipboard) bool {
	return w.applyModulator(c, func(carrier, mod []float64) {
		dsp.PhaseModulation(carrier, mod, 0, 1)
	})
}

// ApplyFrequencyModulation frequency-modulates Samples by the clipboard wave.
func (w *Wave) ApplyFrequencyModulation(c *Clipboard) bool {
	return w.applyModulator(c, func(carrier, mod []float64) {
		dsp.FrequencyModulation(carrier, mod, 1, 1)
	})
}

// ApplySpectralTransfer convolves Samples with the clipboard wave.
func (w *Wave) ApplySpectralTransfer(c *Clipboard) bool {
	return w.applyModulator(c, func(carrier, mod []float64) {
		dsp.SpectralConvolution(carrier, mod, 1)
	})
}

func (w *Wave) applyModulator(c *Clipboard, apply func(carrier, mod []float64)) bool {
	mod, ok := c.modulator()
	if !ok {
		return false
	}
	// Copy so a wave can modulate itself through the clipboard.
	apply(w.Samples[:], append([]float64(nil), mod...))
	w.CommitSamples()
	return true
}
