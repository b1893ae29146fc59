package scene

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/iburimskiy/sunflower-field/internal/config"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestOrnamentsWithinMargin(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		for _, o := range NewOrnaments(DefaultOptions(), seeded(seed)) {
			if o.X < 5 || o.X > 95 || o.Y < 5 || o.Y > 95 {
				t.Fatalf("seed %d: ornament at (%f, %f) outside [5,95]", seed, o.X, o.Y)
			}
		}
	}
}

func TestAppearTimesArePermutationOfSlots(t *testing.T) {
	opts := DefaultOptions()
	for seed := uint64(1); seed <= 20; seed++ {
		orns := NewOrnaments(opts, seeded(seed))
		if len(orns) != opts.Ornaments {
			t.Fatalf("len = %d, want %d", len(orns), opts.Ornaments)
		}
		got := make([]time.Duration, len(orns))
		for i, o := range orns {
			got[i] = o.AppearAt
		}
		slices.Sort(got)
		for i, d := range got {
			want := 500*time.Millisecond + time.Duration(i)*400*time.Millisecond
			if d != want {
				t.Fatalf("seed %d: slot %d = %v, want %v", seed, i, d, want)
			}
		}
	}
}

func TestAppearTimesFollowListOrder(t *testing.T) {
	orns := NewOrnaments(DefaultOptions(), seeded(7))
	for i := 1; i < len(orns); i++ {
		if orns[i].AppearAt-orns[i-1].AppearAt != config.AppearStagger {
			t.Fatalf("gap between %d and %d = %v, want %v", i-1, i, orns[i].AppearAt-orns[i-1].AppearAt, config.AppearStagger)
		}
	}
}

func TestShuffleVariesGridOrder(t *testing.T) {
	a := NewOrnaments(DefaultOptions(), seeded(1))
	b := NewOrnaments(DefaultOptions(), seeded(2))
	same := true
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical ornament order")
	}
}

func TestMidpointSourceLandsOnCellCenters(t *testing.T) {
	orns := NewOrnaments(DefaultOptions(), constSource(0.5))

	centers := []float64{10, 30, 50, 70, 90}
	bottom := 0
	for _, o := range orns {
		if !slices.Contains(centers, o.X) {
			t.Errorf("X = %f, want a cell center", o.X)
		}
		switch {
		case o.Y == 95:
			bottom++
		case !slices.Contains(centers, o.Y):
			t.Errorf("Y = %f, want a cell center", o.Y)
		}
		if math.Abs(o.Scale-0.6) > 1e-12 {
			t.Errorf("Scale = %f, want 0.6", o.Scale)
		}
		if math.Abs(o.Tilt) > 1e-12 {
			t.Errorf("Tilt = %f, want 0", o.Tilt)
		}
		if math.Abs(o.Phase-math.Pi) > 1e-12 {
			t.Errorf("Phase = %f, want pi", o.Phase)
		}
		if math.Abs(o.Amplitude-0.025) > 1e-12 {
			t.Errorf("Amplitude = %f, want 0.025", o.Amplitude)
		}
	}
	// Ornaments 25..29 spill into a sixth row centred at 110 and clamp.
	if bottom != 5 {
		t.Errorf("ornaments on bottom margin = %d, want 5", bottom)
	}
}

func TestParticleRanges(t *testing.T) {
	ps := NewParticles(500, seeded(3))
	leaves := 0
	for _, p := range ps {
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
			t.Fatalf("position (%f, %f) outside viewport", p.X, p.Y)
		}
		if p.VX < -0.5 || p.VX >= 0.5 || p.VY < -0.2 || p.VY >= 0.2 {
			t.Fatalf("velocity (%f, %f) out of range", p.VX, p.VY)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Fatalf("size %f out of range", p.Size)
		}
		if p.Opacity < 0.3 || p.Opacity >= 0.7 {
			t.Fatalf("opacity %f out of range", p.Opacity)
		}
		if p.Kind == Leaf {
			leaves++
		}
	}
	// Expect about 30% leaves.
	if leaves < 100 || leaves > 200 {
		t.Errorf("leaves = %d of 500, want roughly 150", leaves)
	}
}

func TestMidpointSourceParticleIsPollen(t *testing.T) {
	p := NewParticles(1, constSource(0.5))[0]
	if p.Kind != Pollen {
		t.Errorf("Kind = %v, want pollen", p.Kind)
	}
	if p.X != 50 || p.Y != 50 {
		t.Errorf("position = (%f, %f), want (50, 50)", p.X, p.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity = (%f, %f), want (0, 0)", p.VX, p.VY)
	}
	if p.RotationSpeed != 0 {
		t.Errorf("RotationSpeed = %f, want 0", p.RotationSpeed)
	}
}

func TestParticleDriftWithoutWrap(t *testing.T) {
	p := Particle{X: 104, Y: 50, VX: 0.2}
	p.Step(config.DriftScale)
	if math.Abs(p.X-104.02) > 1e-9 {
		t.Errorf("X = %f, want 104.02", p.X)
	}
	if p.Y != 50 {
		t.Errorf("Y = %f, want 50", p.Y)
	}
}

func TestParticleWrap(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"past right", 106, 50, -5, 50},
		{"past left", -6, 50, 105, 50},
		{"past bottom", 50, 105.5, 50, -5},
		{"past top", 50, -5.1, 50, 105},
		{"both axes", 110, -10, -5, 105},
		{"on bounds", 105, -5, 105, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{X: tt.x, Y: tt.y}
			p.Wrap()
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("wrapped to (%f, %f), want (%f, %f)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestParticlesStayInBoundsOverManyTicks(t *testing.T) {
	st := Generate(DefaultOptions(), seeded(11))
	for tick := 0; tick < 20000; tick++ {
		st.Advance(time.Duration(tick) * 16 * time.Millisecond)
		for i, p := range st.Particles {
			if p.X < -5 || p.X > 105 || p.Y < -5 || p.Y > 105 {
				t.Fatalf("tick %d particle %d at (%f, %f)", tick, i, p.X, p.Y)
			}
		}
	}
}

func TestAppearanceCurve(t *testing.T) {
	o := Ornament{Scale: 0.5, AppearAt: time.Second}

	if a := o.Appearance(time.Second - time.Millisecond); a.Visible || a.Opacity != 0 {
		t.Errorf("before appear: %+v, want invisible", a)
	}

	prev := -1.0
	for ms := 0; ms <= 800; ms += 10 {
		a := o.Appearance(time.Second + time.Duration(ms)*time.Millisecond)
		if !a.Visible {
			t.Fatalf("%dms: not visible", ms)
		}
		p := float64(ms) / 800
		want := 1 - math.Pow(1-p, 3)
		if math.Abs(a.Opacity-want) > 1e-6 {
			t.Errorf("%dms: opacity = %f, want %f", ms, a.Opacity, want)
		}
		if a.Opacity <= prev {
			t.Errorf("%dms: opacity %f not above %f", ms, a.Opacity, prev)
		}
		prev = a.Opacity
	}

	for _, after := range []time.Duration{800 * time.Millisecond, time.Second, time.Hour} {
		a := o.Appearance(time.Second + after)
		if a.Opacity != 1 {
			t.Errorf("+%v: opacity = %f, want 1", after, a.Opacity)
		}
		if a.Scale != 0.5 {
			t.Errorf("+%v: scale = %f, want 0.5", after, a.Scale)
		}
	}
}

func TestAppearanceTailStaysBelowFull(t *testing.T) {
	o := Ornament{Scale: 0.5}
	prev := 0.0
	for us := 790_000; us < 800_000; us += 100 {
		since := time.Duration(us) * time.Microsecond
		a := o.Appearance(since)
		if a.Opacity >= 1 {
			t.Fatalf("%v: opacity = %.12f, want below 1", since, a.Opacity)
		}
		if a.Scale >= 0.5 {
			t.Fatalf("%v: scale = %.12f, want below 0.5", since, a.Scale)
		}
		if a.Opacity <= prev {
			t.Fatalf("%v: opacity %.12f not above %.12f", since, a.Opacity, prev)
		}
		prev = a.Opacity
	}

	for _, tc := range []struct {
		since time.Duration
		want  float64
	}{
		{798 * time.Millisecond, 0.999999984375},
		{799 * time.Millisecond, 0.999999998046875},
	} {
		if got := o.Appearance(tc.since).Opacity; math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%v: opacity = %.12f, want %.12f", tc.since, got, tc.want)
		}
	}
}

func TestAppearanceScaleAtStart(t *testing.T) {
	o := Ornament{Scale: 0.8, AppearAt: 500 * time.Millisecond}
	a := o.Appearance(500 * time.Millisecond)
	if math.Abs(a.Scale-0.24) > 1e-12 {
		t.Errorf("scale = %f, want 0.24", a.Scale)
	}
	if a.Opacity != 0 {
		t.Errorf("opacity = %f, want 0", a.Opacity)
	}
}

func TestSway(t *testing.T) {
	o := Ornament{Phase: math.Pi / 2, Amplitude: 0.03, Tilt: 90}
	if got := o.Sway(0); math.Abs(got-0.03) > 1e-12 {
		t.Errorf("Sway(0) = %f, want 0.03", got)
	}
	if got := o.Angle(0); math.Abs(got-(0.03+math.Pi/2)) > 1e-12 {
		t.Errorf("Angle(0) = %f, want %f", got, 0.03+math.Pi/2)
	}
}

func TestAdvanceClockAndPoses(t *testing.T) {
	st := &State{
		Ornaments: []Ornament{
			{Scale: 1, AppearAt: 0},
			{Scale: 1, AppearAt: time.Second},
			{Scale: 1, AppearAt: 2 * time.Second},
		},
	}

	st.Advance(1500 * time.Millisecond)
	if math.Abs(st.Clock-0.01) > 1e-12 {
		t.Errorf("Clock = %f, want 0.01", st.Clock)
	}
	if len(st.Poses) != 2 {
		t.Fatalf("poses = %d, want 2", len(st.Poses))
	}
	if st.Poses[0].Index != 0 || st.Poses[1].Index != 1 {
		t.Errorf("pose indices = %d, %d, want 0, 1", st.Poses[0].Index, st.Poses[1].Index)
	}
	if st.Poses[0].Opacity != 1 {
		t.Errorf("first pose opacity = %f, want 1", st.Poses[0].Opacity)
	}

	// The sway clock ignores wall time: a long gap still adds one step.
	st.Advance(time.Hour)
	if math.Abs(st.Clock-0.02) > 1e-12 {
		t.Errorf("Clock = %f, want 0.02", st.Clock)
	}
	if len(st.Poses) != 3 {
		t.Errorf("poses = %d, want 3", len(st.Poses))
	}
}

func TestPoseSkippedAtAppearInstant(t *testing.T) {
	st := &State{Ornaments: []Ornament{{Scale: 1, AppearAt: time.Second}}}
	st.Advance(time.Second)
	if len(st.Poses) != 0 {
		t.Errorf("poses = %d, want 0 at zero opacity", len(st.Poses))
	}
}

func TestKindString(t *testing.T) {
	if Pollen.String() != "pollen" || Leaf.String() != "leaf" {
		t.Errorf("Kind strings = %q, %q", Pollen.String(), Leaf.String())
	}
}
