package meter

import (
	"sync"
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
)

// Meter is a counter and timer registry for editor operations.
type Meter struct {
	componentMetadata types.ComponentMetadata
	mu                sync.Mutex
	counts            map[string]uint64
	durations         map[string]types.DurationStat
	startTime         time.Time

	hostStats      bool
	sampleInterval time.Duration

	loggers   []types.Logger
	loggersMu sync.Mutex
}

// NewMeter constructs a Meter with optional configuration.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:    make(map[string]uint64),
		durations: make(map[string]types.DurationStat),
		startTime: time.Now(),
		hostStats: true,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

// GetComponentMetadata returns the meter metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.componentMetadata
}

// SetComponentMetadata updates the meter name and ID.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.mu.Lock()
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
	m.mu.Unlock()
}
