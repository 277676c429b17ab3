package climb

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the session's position in the climb state machine.
type Phase int

const (
	Idle Phase = iota
	Active
	Falling
	WaitingForRestart
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Active:
		return "Active"
	case Falling:
		return "Falling"
	case WaitingForRestart:
		return "WaitingForRestart"
	}
	return "Unknown"
}

const noHold = -1

// Rand is the randomness the spawner needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Climber is the player entity's simulated state.
type Climber struct {
	Pos  Vec2
	VelY float64
}

// Session holds all mutable state of one mounted game. It is driven from a
// single goroutine: OnInput between frames, OnFrame once per frame.
type Session struct {
	tuning Tuning
	rng    Rand
	seed   []Vec2

	holds     Holds
	nextIndex int
	climber   Climber

	phase        Phase
	targetIndex  int
	attached     int
	elapsed      float64
	fallVelocity float64
	holdCount    int
	fallCount    int

	accepted     bool
	lastAccepted time.Time
	justReset    bool
}

// NewSession builds a session in the Idle phase with no holds. Call Begin to
// lay out the first run.
func NewSession(t Tuning, rng Rand) (*Session, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("climb: nil random source")
	}
	return &Session{
		tuning:   t,
		rng:      rng,
		seed:     t.DefaultSeed(),
		attached: noHold,
		climber:  Climber{Pos: t.ClimberStart()},
	}, nil
}

// SetSeed replaces the hold layout used by subsequent run resets.
func (s *Session) SetSeed(seed []Vec2) {
	if len(seed) == 0 {
		s.seed = s.tuning.DefaultSeed()
		return
	}
	s.seed = append([]Vec2(nil), seed...)
}

// SetTuning swaps the constants in place. Live holds keep their positions.
func (s *Session) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.tuning = t
	return nil
}

// Begin performs the initial run reset and leaves the session Idle until the
// first accepted input.
func (s *Session) Begin() []Command {
	cmds := s.resetRun(nil)
	s.phase = Idle
	return cmds
}

func (s *Session) Tuning() Tuning { return s.tuning }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) TargetIndex() int { return s.targetIndex }
func (s *Session) HoldCount() int { return s.holdCount }
func (s *Session) FallCount() int { return s.fallCount }
func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) FallVelocity() float64 { return s.fallVelocity }
func (s *Session) Climber() Climber { return s.climber }
func (s *Session) Holds() *Holds { return &s.holds }
func (s *Session) JustReset() bool { return s.justReset }

// Attached returns the index of the hold the climber is on.
func (s *Session) Attached() (int, bool) {
	return s.attached, s.attached != noHold
}

// Target returns the hold the player must grab next, if it is live.
func (s *Session) Target() (Hold, bool) {
	return s.holds.Get(s.targetIndex)
}

// Speed is the current scroll speed.
func (s *Session) Speed() float64 {
	return s.tuning.ScrollSpeed(s.elapsed)
}

// OnInput runs one raw pointer event through the input gate.
func (s *Session) OnInput(p Vec2, now time.Time) []Command {
	if s.accepted && now.Sub(s.lastAccepted) < s.tuning.Debounce {
		return nil
	}
	s.accepted = true
	s.lastAccepted = now

	switch {
	case s.phase == WaitingForRestart:
		cmds := s.resetRun(nil)
		s.phase = Active
		s.justReset = true
		return cmds
	case s.justReset:
		s.justReset = false
		return nil
	case s.phase == Falling:
		return nil
	case s.phase == Idle:
		s.phase = Active
		return []Command{
			{Kind: Tapped, Pos: p},
			{Kind: Started},
			trace("Game started!"),
		}
	}
	return s.grab(p)
}

func (s *Session) grab(p Vec2) []Command {
	nearest, dist, ok := s.holds.Nearest(p, s.tuning.ClickRadius)

	cmds := make([]Command, 0, 8)
	cmds = append(cmds, Command{Kind: Tapped, Pos: p})
	if ok {
		cmds = append(cmds, trace(fmt.Sprintf("Input at (%.1f, %.1f), nearest hold: idx=%d, dist=%.1f, targetIndex=%d",
			p.X, p.Y, nearest.Index, dist, s.targetIndex)))
	} else {
		cmds = append(cmds, trace(fmt.Sprintf("Input at (%.1f, %.1f), nearest hold: none, targetIndex=%d",
			p.X, p.Y, s.targetIndex)))
	}

	if !ok {
		cmds = append(cmds, trace("No hold within click radius."))
		return s.fall(cmds, FallMissed, &p)
	}
	if nearest.Index != s.targetIndex {
		cmds = append(cmds, trace(fmt.Sprintf("Tried to grab idx=%d, but target is idx=%d. FALL!",
			nearest.Index, s.targetIndex)))
		return s.fall(cmds, FallWrongHold, &p)
	}

	s.attached = nearest.Index
	s.climber.VelY = 0
	s.climber.Pos = nearest.Pos
	s.targetIndex++
	s.holdCount++
	return append(cmds,
		Command{Kind: MoveClimber, Pos: s.climber.Pos},
		Command{Kind: Grabbed, Hold: nearest.Index, Pos: nearest.Pos},
		trace(fmt.Sprintf("Grabbed hold idx=%d. Next target: %d", nearest.Index, s.targetIndex)),
	)
}

// fall moves an Active session into Falling. at is the tap that caused it;
// nil leaves the climber where it is.
func (s *Session) fall(cmds []Command, cause FallCause, at *Vec2) []Command {
	s.attached = noHold
	s.phase = Falling
	s.fallVelocity = s.tuning.InitialFallVelocity
	s.climber.VelY = s.fallVelocity
	s.fallCount++
	if at != nil {
		s.climber.Pos = *at
		cmds = append(cmds, Command{Kind: MoveClimber, Pos: s.climber.Pos})
	}
	return append(cmds,
		Command{Kind: Fell, Cause: cause, Pos: s.climber.Pos},
		trace("FALL triggered."),
	)
}

// OnFrame advances the simulation by dt seconds.
func (s *Session) OnFrame(dt float64) []Command {
	if s.phase == Idle {
		return nil
	}
	var cmds []Command

	if s.phase == Active {
		s.elapsed += dt
		s.holds.scroll(s.Speed() * dt)
		if hold, ok := s.holds.Get(s.attached); ok {
			s.climber.Pos = hold.Pos
			cmds = append(cmds, Command{Kind: MoveClimber, Pos: s.climber.Pos})
		}
	}

	for _, index := range s.holds.prune(s.tuning.Height + s.tuning.CleanupMargin) {
		cmds = append(cmds, Command{Kind: DestroyHold, Hold: index})
	}
	cmds = s.refill(cmds)

	if s.phase == Active && s.attached != noHold && !s.holds.Has(s.attached) {
		cmds = append(cmds, trace("Attached hold destroyed. FALL!"))
		cmds = s.fall(cmds, FallHoldLost, nil)
	}

	moved := false
	if s.phase == Falling {
		s.climber.Pos.Y += s.fallVelocity * dt
		s.fallVelocity += s.tuning.FallGravity * dt
		s.climber.VelY = s.fallVelocity
		moved = true

		if bottom := s.tuning.BottomY(); s.climber.Pos.Y >= bottom {
			s.climber.Pos.Y = bottom
			s.climber.VelY = 0
			s.fallVelocity = 0
			s.phase = WaitingForRestart
			cmds = append(cmds,
				Command{Kind: Landed, Pos: s.climber.Pos},
				trace("Climber at bottom. Waiting for restart."),
			)
		}
	}

	if s.climber.Pos.Y < s.tuning.TopY {
		s.climber.Pos.Y = s.tuning.TopY
		moved = true
	}
	if moved {
		cmds = append(cmds, Command{Kind: MoveClimber, Pos: s.climber.Pos})
	}
	return cmds
}

// refill spawns holds above the topmost one until the buffer is full.
func (s *Session) refill(cmds []Command) []Command {
	t := s.tuning
	for s.holds.Len() < t.BufferCount {
		y := t.Height - t.FirstSpawnOffset - t.SpawnGap
		if top, ok := s.holds.TopY(); ok {
			y = top - t.SpawnGap
		}
		x := t.SafeXMargin + float64(s.rng.IntN(int(t.Width-2*t.SafeXMargin)))
		if last, ok := s.holds.Last(); ok {
			x = t.separate(x, last.Pos.X)
		}
		cmds = append(cmds, s.spawn(Pt(x, y)))
	}
	return cmds
}

// separate pushes x away from the centre line when it lands too close to the
// previous hold, then clamps it to the safe margins.
func (t Tuning) separate(x, prevX float64) float64 {
	if abs(x-prevX) >= t.MinSeparation {
		return x
	}
	if x < t.Width/2 {
		x -= t.SeparationPush
	} else {
		x += t.SeparationPush
	}
	return clamp(x, t.SafeXMargin, t.Width-t.SafeXMargin)
}

func (s *Session) spawn(p Vec2) Command {
	hold := Hold{Index: s.nextIndex, Pos: p}
	s.nextIndex++
	s.holds.push(hold)
	return Command{Kind: SpawnHold, Hold: hold.Index, Pos: hold.Pos}
}

func (s *Session) resetRun(cmds []Command) []Command {
	s.elapsed = 0
	s.targetIndex = 0
	s.attached = noHold
	s.holdCount = 0
	s.fallVelocity = 0

	for _, index := range s.holds.clear() {
		cmds = append(cmds, Command{Kind: DestroyHold, Hold: index})
	}
	s.nextIndex = 0
	for _, p := range s.seed {
		cmds = append(cmds, s.spawn(p))
	}

	s.climber = Climber{Pos: s.tuning.ClimberStart()}
	return append(cmds,
		Command{Kind: MoveClimber, Pos: s.climber.Pos},
		Command{Kind: RunReset},
		trace("Run reset"),
	)
}

func trace(msg string) Command {
	return Command{Kind: Trace, Text: msg}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
