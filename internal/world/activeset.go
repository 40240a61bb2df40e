package world

// activeSet is the spawner's record of enemies in play, kept in insertion
// order so every scan over it is deterministic.
type activeSet struct {
	list  []*Enemy
	index map[*Enemy]struct{}
}

func newActiveSet() *activeSet {
	return &activeSet{index: make(map[*Enemy]struct{})}
}

// add returns false if e is already present.
func (s *activeSet) add(e *Enemy) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = struct{}{}
	s.list = append(s.list, e)
	return true
}

// remove returns false if e was not present.
func (s *activeSet) remove(e *Enemy) bool {
	if _, ok := s.index[e]; !ok {
		return false
	}
	delete(s.index, e)
	for i, p := range s.list {
		if p == e {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	return true
}

func (s *activeSet) contains(e *Enemy) bool {
	_, ok := s.index[e]
	return ok
}

func (s *activeSet) len() int { return len(s.list) }

// snapshot copies the current members.
func (s *activeSet) snapshot() []*Enemy {
	return append([]*Enemy(nil), s.list...)
}

func (s *activeSet) clear() {
	s.list = s.list[:0]
	clear(s.index)
}
