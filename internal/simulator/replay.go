package simulator

import (
	"math"
	"sync"
	"time"
)

// State represents the current replay position.
type State struct {
	AngleDeg float64 `json:"angle_deg"`
	Speed    float64 `json:"speed"` // orbit degrees per wall-clock second
	Running  bool    `json:"running"`
}

// Sample is one sweep step emitted during replay.
type Sample struct {
	AngleDeg    float64 `json:"angle_deg"`
	SolarMW     float64 `json:"solar_mw"`
	LoadMW      float64 `json:"load_mw"`
	ChargeMAmin float64 `json:"charge_mamin"`
	CurrentMA   float64 `json:"current_ma"`
	LevelPct    float64 `json:"level_pct"`
}

// Callback receives replay events.
type Callback interface {
	OnState(state State)
	OnSample(sample Sample)
	OnSummary(summary Summary)
}

// Replay steps through a computed sweep result at configurable speed,
// emitting each step through the callback. The sweep itself is already
// done; the replay only walks the series, so it can be paused, resumed
// and sought without recomputation.
type Replay struct {
	mu       sync.Mutex
	result   *Result
	callback Callback

	running bool
	speed   float64 // degrees per second
	cursor  int     // next step to emit

	stopCh chan struct{}
}

func NewReplay(result *Result, cb Callback) *Replay {
	return &Replay{
		result:   result,
		callback: cb,
		speed:    30,
	}
}

// Result returns the sweep the replay walks.
func (r *Replay) Result() *Result {
	return r.result
}

// State returns the current replay state.
func (r *Replay) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Replay) stateLocked() State {
	return State{
		AngleDeg: float64(r.cursor) * r.result.Orbit.StepDeg,
		Speed:    r.speed,
		Running:  r.running,
	}
}

// Start begins the replay loop.
func (r *Replay) Start() {
	r.mu.Lock()
	if r.running || r.cursor >= r.result.Steps() {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.mu.Unlock()

	r.broadcastState()
	go r.loop()
}

// Pause stops the replay loop.
func (r *Replay) Pause() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.broadcastState()
}

// SetSpeed sets the replay speed in orbit degrees per second.
func (r *Replay) SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 3600 {
		speed = 3600
	}

	r.mu.Lock()
	r.speed = speed
	r.mu.Unlock()

	r.broadcastState()
}

// Seek jumps the cursor to the step closest to the given angle.
func (r *Replay) Seek(angleDeg float64) {
	r.mu.Lock()
	idx := int(math.Round(angleDeg / r.result.Orbit.StepDeg))
	if idx < 0 {
		idx = 0
	}
	if idx > r.result.Steps() {
		idx = r.result.Steps()
	}
	r.cursor = idx
	r.mu.Unlock()

	r.broadcastState()
}

// Step advances the replay by the given angular distance and emits the
// covered samples. Useful for deterministic testing; does not require
// Start().
func (r *Replay) Step(deltaDeg float64) {
	r.advance(deltaDeg)
}

const tickInterval = 100 * time.Millisecond

func (r *Replay) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if r.tick() {
				return
			}
		}
	}
}

// tick advances one frame. Returns true when the sweep end is reached.
func (r *Replay) tick() bool {
	r.mu.Lock()
	delta := r.speed * tickInterval.Seconds()
	r.mu.Unlock()

	ended := r.advance(delta)
	if ended {
		r.mu.Lock()
		if r.running {
			r.running = false
			close(r.stopCh)
		}
		r.mu.Unlock()
		r.broadcastState()
	}
	return ended
}

// advance emits every sample within deltaDeg of the cursor. Returns
// true when the end of the sweep has been reached.
func (r *Replay) advance(deltaDeg float64) bool {
	r.mu.Lock()
	steps := int(math.Round(deltaDeg / r.result.Orbit.StepDeg))
	if steps < 1 {
		steps = 1
	}
	from := r.cursor
	to := from + steps
	if to > r.result.Steps() {
		to = r.result.Steps()
	}
	r.cursor = to
	r.mu.Unlock()

	for i := from; i < to; i++ {
		r.callback.OnSample(r.result.Sample(i))
	}
	r.broadcastState()

	if to >= r.result.Steps() {
		r.callback.OnSummary(r.result.Summary())
		return true
	}
	return false
}

func (r *Replay) broadcastState() {
	r.mu.Lock()
	s := r.stateLocked()
	r.mu.Unlock()
	r.callback.OnState(s)
}
