package sensor

import (
	"sync"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
)

// Sensor provides callback hooks for editor recompute events.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnPostUpdated       []func(types.ComponentMetadata, []float64)
	OnBaseWaveGenerated []func(types.ComponentMetadata, []float64)
	OnBankBroadcast     []func(types.ComponentMetadata, int)
	OnShuffle           []func(types.ComponentMetadata, []int)
	OnCrossmodUpdated   []func(types.ComponentMetadata, []float64)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.Meter
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.snapshotMetadata()
}

// GetMeters returns the connected meters.
func (s *Sensor) GetMeters() []types.Meter {
	return s.snapshotMeters()
}
