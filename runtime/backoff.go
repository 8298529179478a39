package runtime

import "time"

const DefaultReconnectDelay = 3000 * time.Millisecond

// FixedBackoff retries forever with the same delay.
type FixedBackoff struct {
	Delay time.Duration
}

func NewFixedBackoff(delay time.Duration) FixedBackoff {
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}
	return FixedBackoff{Delay: delay}
}

func (b FixedBackoff) Next(int) (time.Duration, bool) {
	return b.Delay, true
}

// ExponentialBackoff doubles the delay on each attempt up to Max.
// MaxAttempts of zero means no cap.
type ExponentialBackoff struct {
	Base        time.Duration
	Max         time.Duration
	MaxAttempts int
}

func (b ExponentialBackoff) Next(attempt int) (time.Duration, bool) {
	if b.MaxAttempts > 0 && attempt > b.MaxAttempts {
		return 0, false
	}
	if attempt < 1 {
		attempt = 1
	}
	delay := b.Base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if b.Max > 0 && delay >= b.Max {
			return b.Max, true
		}
	}
	if b.Max > 0 && delay > b.Max {
		return b.Max, true
	}
	return delay, true
}
