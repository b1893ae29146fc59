package canvas

type drawState struct {
	m     Affine
	alpha float64
}

// Stack tracks the current transform and alpha with save/restore
// semantics. Backends embed it to get the state half of Canvas for free.
// The zero value is ready to use.
type Stack struct {
	cur   drawState
	saved []drawState
	init  bool
}

func (s *Stack) ensure() {
	if !s.init {
		s.cur = drawState{m: Identity, alpha: 1}
		s.init = true
	}
}

// Reset drops all saved states and returns to identity with full alpha.
func (s *Stack) Reset() {
	s.cur = drawState{m: Identity, alpha: 1}
	s.saved = s.saved[:0]
	s.init = true
}

func (s *Stack) Save() {
	s.ensure()
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved state. It is a no-op on an empty stack.
func (s *Stack) Restore() {
	s.ensure()
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y float64) {
	s.ensure()
	s.cur.m = s.cur.m.Mul(Translation(x, y))
}

func (s *Stack) Rotate(rad float64) {
	s.ensure()
	s.cur.m = s.cur.m.Mul(Rotation(rad))
}

func (s *Stack) Scale(sx, sy float64) {
	s.ensure()
	s.cur.m = s.cur.m.Mul(Scaling(sx, sy))
}

// SetAlpha replaces the current alpha. Values are clamped to [0, 1].
func (s *Stack) SetAlpha(a float64) {
	s.ensure()
	s.cur.alpha = min(max(a, 0), 1)
}

func (s *Stack) Transform() Affine {
	s.ensure()
	return s.cur.m
}

func (s *Stack) Alpha() float64 {
	s.ensure()
	return s.cur.alpha
}

// Depth is the number of saved states.
func (s *Stack) Depth() int {
	return len(s.saved)
}
