package canvas

import "github.com/lucasb-eyer/go-colorful"

type OpKind uint8

const (
	OpClear OpKind = iota
	OpGradient
	OpCircle
	OpEllipse
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpGradient:
		return "gradient"
	case OpCircle:
		return "circle"
	case OpEllipse:
		return "ellipse"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call. Positions are in surface pixels after the
// transform; Scale is the transform's scale factor at the time of the call.
type Op struct {
	Kind   OpKind
	X, Y   float64
	X1, Y1 float64 // line end
	Scale  float64
	Alpha  float64
	Color  colorful.Color
	Stops  []GradientStop
}

// Recorder is a Canvas that keeps a log of draw calls instead of pixels.
type Recorder struct {
	Stack
	Width, Height int
	Ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = width, height
}

// Reset forgets recorded ops and the state stack.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Stack.Reset()
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillVerticalGradient(height float64, stops []GradientStop) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpGradient,
		Y1:    height,
		Alpha: r.Alpha(),
		Stops: append([]GradientStop(nil), stops...),
	})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c colorful.Color) {
	r.shape(OpCircle, cx, cy, c)
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c colorful.Color) {
	r.shape(OpEllipse, cx, cy, c)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color) {
	m := r.Transform()
	op := Op{Kind: OpLine, Scale: m.ScaleFactor(), Alpha: r.Alpha(), Color: c}
	op.X, op.Y = m.Apply(x0, y0)
	op.X1, op.Y1 = m.Apply(x1, y1)
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) shape(kind OpKind, cx, cy float64, c colorful.Color) {
	m := r.Transform()
	op := Op{Kind: kind, Scale: m.ScaleFactor(), Alpha: r.Alpha(), Color: c}
	op.X, op.Y = m.Apply(cx, cy)
	r.Ops = append(r.Ops, op)
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
