package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every draw in a match is auditable.
// All draws are logged at debug level with purpose, bounds and value.
//
// Roller itself satisfies Source; raw Intn calls are logged with an
// "intn" purpose.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn draws from the wrapped Source and logs the value.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.log(Draw{Purpose: "intn", Min: 0, Max: n - 1, Value: v})
	return v
}

// Range draws a uniform integer in [lo, hi] for the named purpose and logs it.
//
// Precondition: purpose non-empty; lo <= hi.
// Postcondition: result.Min <= result.Value <= result.Max.
func (r *Roller) Range(purpose string, lo, hi int) Draw {
	d := Draw{Purpose: purpose, Min: lo, Max: hi, Value: IntRange(r.src, lo, hi)}
	r.log(d)
	return d
}

func (r *Roller) log(d Draw) {
	r.logger.Debug("dice draw",
		zap.String("purpose", d.Purpose),
		zap.Int("min", d.Min),
		zap.Int("max", d.Max),
		zap.Int("value", d.Value),
	)
}
