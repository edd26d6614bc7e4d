package rules

// sequenceSource replays a fixed list of draws, wrapping around. Each value
// is reduced modulo n so any list stays in range.
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newTestState(t interface {
	Fatalf(string, ...interface{})
}, src FoodSource, opts ...StateOption) *GameState {
	s, err := NewGameState(DefaultConfig(), src, opts...)
	if err != nil {
		t.Fatalf("unable to create state: %v", err)
	}
	return s
}
