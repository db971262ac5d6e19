package engine

import "time"

// PausableClock measures elapsed time since Start, excluding paused intervals
// Pausing freezes Elapsed; resuming continues accumulating from the frozen value
// Not safe for concurrent use, a session owns its clocks exclusively
type PausableClock struct {
	provider TimeProvider

	startTime       time.Time     // Real time of the last Start
	pauseStartTime  time.Time     // Real time the current pause began, zero when running
	totalPausedTime time.Duration // Paused time accumulated since Start
	isPaused        bool
}

// NewPausableClock creates a running clock started at the provider's current time
func NewPausableClock(provider TimeProvider) PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	c := PausableClock{provider: provider}
	c.Start()
	return c
}

// Start restarts the clock from zero and clears any pause
func (c *PausableClock) Start() {
	c.startTime = c.provider.Now()
	c.pauseStartTime = time.Time{}
	c.totalPausedTime = 0
	c.isPaused = false
}

// Pause stops time accumulation, no-op when already paused
func (c *PausableClock) Pause() {
	if c.isPaused {
		return
	}
	c.isPaused = true
	c.pauseStartTime = c.provider.Now()
}

// Resume continues time accumulation, no-op when not paused
func (c *PausableClock) Resume() {
	if !c.isPaused {
		return
	}
	c.totalPausedTime += c.provider.Now().Sub(c.pauseStartTime)
	c.pauseStartTime = time.Time{}
	c.isPaused = false
}

// IsPaused returns current pause state
func (c *PausableClock) IsPaused() bool {
	return c.isPaused
}

// Elapsed returns time accumulated since Start, excluding pauses
func (c *PausableClock) Elapsed() time.Duration {
	end := c.provider.Now()
	if c.isPaused {
		// During pause: frozen at pause point
		end = c.pauseStartTime
	}
	elapsed := end.Sub(c.startTime) - c.totalPausedTime
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ElapsedMs returns Elapsed in whole milliseconds
func (c *PausableClock) ElapsedMs() int64 {
	return c.Elapsed().Milliseconds()
}

// TotalPauseDuration returns cumulative pause time since Start, including the current pause
func (c *PausableClock) TotalPauseDuration() time.Duration {
	total := c.totalPausedTime
	if c.isPaused {
		total += c.provider.Now().Sub(c.pauseStartTime)
	}
	return total
}
