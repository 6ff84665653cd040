package carouselview

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	fps           = 60
	frameInterval = time.Second / fps

	// A spring is settled once it is this close and this slow.
	settleDistance = 0.5
	settleVelocity = 0.5

	// springSettleFactor relates a critically damped spring's angular
	// frequency to the time it needs to settle within half a cell.
	springSettleFactor = 7.0
)

type motionMode int

const (
	motionIdle motionMode = iota
	motionSpring
	motionTween
)

// motion is the horizontal position of one card and how it is moving.
type motion struct {
	pos    float64
	vel    float64
	target float64
	top    int

	mode   motionMode
	from   float64
	frame  int
	frames int
}

func (m *motion) left() int {
	return int(math.Round(m.pos))
}

func (m *motion) moving() bool {
	return m.mode != motionIdle
}

// snap jumps to left and stops any movement.
func (m *motion) snap(left int) {
	m.pos = float64(left)
	m.target = m.pos
	m.vel = 0
	m.mode = motionIdle
}

// springTo starts (or retargets) a spring move, keeping the current velocity.
func (m *motion) springTo(left int) {
	m.target = float64(left)
	if m.pos == m.target && m.vel == 0 {
		m.mode = motionIdle
		return
	}
	m.mode = motionSpring
}

// tweenTo starts a swing-eased move lasting d, replacing any move in flight.
func (m *motion) tweenTo(left int, d time.Duration) {
	m.target = float64(left)
	m.vel = 0
	if d <= 0 || m.pos == m.target {
		m.snap(left)
		return
	}
	m.mode = motionTween
	m.from = m.pos
	m.frame = 0
	m.frames = max(int(math.Ceil(float64(d)/float64(frameInterval))), 1)
}

// step advances the move by one frame.
func (m *motion) step(spring harmonica.Spring) {
	switch m.mode {
	case motionSpring:
		m.pos, m.vel = spring.Update(m.pos, m.vel, m.target)
		if math.Abs(m.pos-m.target) < settleDistance && math.Abs(m.vel) < settleVelocity {
			m.snap(int(m.target))
		}
	case motionTween:
		m.frame++
		if m.frame >= m.frames {
			m.snap(int(m.target))
			return
		}
		p := float64(m.frame) / float64(m.frames)
		m.pos = m.from + (m.target-m.from)*swing(p)
	case motionIdle:
	}
}

// swing is the cosine ease-in-out curve.
func swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

// newSpring returns a critically damped spring that settles in about d.
func newSpring(d time.Duration) harmonica.Spring {
	secs := max(d.Seconds(), frameInterval.Seconds())
	return harmonica.NewSpring(harmonica.FPS(fps), springSettleFactor/secs, 1.0)
}
