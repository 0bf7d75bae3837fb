// README: Accessibility preferences; pure state plus an explicit change hook.
package prefs

import "sync"

type Prefs struct {
	HighContrast bool
	LargeText    bool
}

// Service owns the two preference flags. Environment side effects (theme
// attributes, font scaling) belong to the rendering layer: it passes an
// onChange hook and applies the snapshot itself, so the coordinator never
// touches the rendering environment.
type Service struct {
	mu       sync.Mutex
	prefs    Prefs
	onChange func(Prefs)
}

func NewService(onChange func(Prefs)) *Service {
	return &Service{onChange: onChange}
}

func (s *Service) SetHighContrast(v bool) {
	s.mu.Lock()
	s.prefs.HighContrast = v
	p := s.prefs
	s.mu.Unlock()
	s.notify(p)
}

func (s *Service) SetLargeText(v bool) {
	s.mu.Lock()
	s.prefs.LargeText = v
	p := s.prefs
	s.mu.Unlock()
	s.notify(p)
}

// Current returns a snapshot of the flags.
func (s *Service) Current() Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *Service) notify(p Prefs) {
	if s.onChange != nil {
		s.onChange(p)
	}
}
