package sensor

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// SetComponentMetadata updates sensor metadata values.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
	s.metadataLock.Unlock()
}

func (s *Sensor) snapshotMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}
