package reassemble

// ArmSide selects which arm plays the raise animation.
type ArmSide uint8

const (
	ArmLeft  ArmSide = iota // left arm
	ArmRight                // right arm
)

// String returns the animation clip suffix for the side.
func (s ArmSide) String() string {
	if s == ArmRight {
		return "RightArmRaise"
	}
	return "LeftArmRaise"
}

// EffectSink receives push-only presentation effects from the puzzle. The
// puzzle never reads anything back.
type EffectSink interface {
	PlayCompletionSound()
	PlayConfettiEffect()
	PlayConfettiSound()
	PlayArmRaiseAnimation(side ArmSide)
	SetStatusText(text string)
	SetScoreText(text string)
	SetProgressValue(ratio float64)
	SetCompletionBannerVisible(visible bool)
	SetHintText(text string)
	SetHintOpacity(alpha float64)
	SetMissionPanelVisible(visible bool)
}

// Collaborator interfaces. Each one is optional; Collaborators skips calls to
// unset ones.
type (
	// SoundPlayer plays the completion and confetti clips.
	SoundPlayer interface {
		PlayCompletion()
		PlayConfetti()
	}
	// ParticlePlayer starts the confetti particle effect.
	ParticlePlayer interface {
		Play()
	}
	// Animator plays a named animation clip on one arm.
	Animator interface {
		Play(clip string)
	}
	// TextWidget displays a string.
	TextWidget interface {
		SetText(text string)
	}
	// FadingText is a TextWidget whose opacity can be set.
	FadingText interface {
		TextWidget
		SetOpacity(alpha float64)
	}
	// Slider displays a ratio in [0, 1].
	Slider interface {
		SetValue(v float64)
	}
	// Panel is a widget that can be shown or hidden.
	Panel interface {
		SetVisible(visible bool)
	}
)

// Collaborators is an EffectSink over optional presentation collaborators.
// Any nil field turns the corresponding effect into a silent no-op.
type Collaborators struct {
	Sound        SoundPlayer
	Confetti     ParticlePlayer
	LeftArm      Animator
	RightArm     Animator
	Status       TextWidget
	Score        TextWidget
	Progress     Slider
	Banner       Panel
	Hint         FadingText
	MissionPanel Panel
}

var _ EffectSink = (*Collaborators)(nil)

// PlayCompletionSound plays the completion clip on Sound.
func (c *Collaborators) PlayCompletionSound() {
	if c.Sound != nil {
		c.Sound.PlayCompletion()
	}
}

// PlayConfettiEffect starts the Confetti particles.
func (c *Collaborators) PlayConfettiEffect() {
	if c.Confetti != nil {
		c.Confetti.Play()
	}
}

// PlayConfettiSound plays the confetti clip on Sound.
func (c *Collaborators) PlayConfettiSound() {
	if c.Sound != nil {
		c.Sound.PlayConfetti()
	}
}

// PlayArmRaiseAnimation plays the raise clip on the arm for side.
func (c *Collaborators) PlayArmRaiseAnimation(side ArmSide) {
	arm := c.LeftArm
	if side == ArmRight {
		arm = c.RightArm
	}
	if arm != nil {
		arm.Play(side.String())
	}
}

// SetStatusText updates the Status label.
func (c *Collaborators) SetStatusText(text string) {
	if c.Status != nil {
		c.Status.SetText(text)
	}
}

// SetScoreText updates the Score label.
func (c *Collaborators) SetScoreText(text string) {
	if c.Score != nil {
		c.Score.SetText(text)
	}
}

// SetProgressValue moves the Progress slider.
func (c *Collaborators) SetProgressValue(ratio float64) {
	if c.Progress != nil {
		c.Progress.SetValue(ratio)
	}
}

// SetCompletionBannerVisible shows or hides the Banner.
func (c *Collaborators) SetCompletionBannerVisible(visible bool) {
	if c.Banner != nil {
		c.Banner.SetVisible(visible)
	}
}

// SetHintText updates the Hint text.
func (c *Collaborators) SetHintText(text string) {
	if c.Hint != nil {
		c.Hint.SetText(text)
	}
}

// SetHintOpacity sets the Hint opacity.
func (c *Collaborators) SetHintOpacity(alpha float64) {
	if c.Hint != nil {
		c.Hint.SetOpacity(alpha)
	}
}

// SetMissionPanelVisible shows or hides the MissionPanel.
func (c *Collaborators) SetMissionPanelVisible(visible bool) {
	if c.MissionPanel != nil {
		c.MissionPanel.SetVisible(visible)
	}
}

// NopEffects is an EffectSink that discards everything.
type NopEffects struct{}

func (NopEffects) PlayCompletionSound()            {}
func (NopEffects) PlayConfettiEffect()             {}
func (NopEffects) PlayConfettiSound()              {}
func (NopEffects) PlayArmRaiseAnimation(ArmSide)   {}
func (NopEffects) SetStatusText(string)            {}
func (NopEffects) SetScoreText(string)             {}
func (NopEffects) SetProgressValue(float64)        {}
func (NopEffects) SetCompletionBannerVisible(bool) {}
func (NopEffects) SetHintText(string)              {}
func (NopEffects) SetHintOpacity(float64)          {}
func (NopEffects) SetMissionPanelVisible(bool)     {}
