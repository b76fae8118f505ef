package sensor

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// RegisterOnPostUpdated registers callbacks fired after a wave's effect chain runs.
func (s *Sensor) RegisterOnPostUpdated(callback ...func(c types.ComponentMetadata, post []float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnPostUpdated = append(s.OnPostUpdated, callback...)
}

// RegisterOnBaseWaveGenerated registers callbacks fired after a base wave regenerates.
func (s *Sensor) RegisterOnBaseWaveGenerated(callback ...func(c types.ComponentMetadata, samples []float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnBaseWaveGenerated = append(s.OnBaseWaveGenerated, callback...)
}

// RegisterOnBankBroadcast registers callbacks fired after samples are written to every slot.
func (s *Sensor) RegisterOnBankBroadcast(callback ...func(c types.ComponentMetadata, waves int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnBankBroadcast = append(s.OnBankBroadcast, callback...)
}

// RegisterOnShuffle registers callbacks receiving the applied slot permutation.
func (s *Sensor) RegisterOnShuffle(callback ...func(c types.ComponentMetadata, perm []int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnShuffle = append(s.OnShuffle, callback...)
}

// RegisterOnCrossmodUpdated registers callbacks fired after carrier and modulator are combined.
func (s *Sensor) RegisterOnCrossmodUpdated(callback ...func(c types.ComponentMetadata, samples []float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnCrossmodUpdated = append(s.OnCrossmodUpdated, callback...)
}
