package pipeline

// DefaultThetaStep is the rotation advance per frame, in radians.
const DefaultThetaStep = 0.03

// Animator owns the frame-to-frame state: the rotation angle grows by a
// fixed step each frame and the light moves only when nudged.
type Animator struct {
	State     FrameState
	ThetaStep float64
	LightStep float64

	frames uint64
}

func NewAnimator(thetaStep, lightStep float64) *Animator {
	return &Animator{ThetaStep: thetaStep, LightStep: lightStep}
}

// Advance moves to the next frame and returns its state.
func (a *Animator) Advance() FrameState {
	a.State.Theta += a.ThetaStep
	a.frames++
	return a.State
}

// NudgeLight moves the light's horizontal component by dir light steps.
func (a *Animator) NudgeLight(dir int) {
	a.State.LightX += float64(dir) * a.LightStep
}

func (a *Animator) Frames() uint64 { return a.frames }
