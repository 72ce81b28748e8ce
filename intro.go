package reassemble

import "github.com/tanema/gween/ease"

// MissionText is the hint shown when a session starts.
const MissionText = "Emergency detected! A rescue robot was damaged during a mission on Earth. " +
	"Help reassemble it to resume its task of saving lives!"

// IntroTiming holds the mission intro timers, in seconds from session start.
type IntroTiming struct {
	HintText         string
	HintHideAfter    float64
	HintFadeAfter    float64
	HintFadeDuration float64
	PanelHideAfter   float64
}

// DefaultIntroTiming returns the reference intro: hint cleared at 3 s, faded
// out from 5 s over 1 s, mission panel hidden at 5 s.
func DefaultIntroTiming() IntroTiming {
	return IntroTiming{
		HintText:         MissionText,
		HintHideAfter:    3,
		HintFadeAfter:    5,
		HintFadeDuration: 1,
		PanelHideAfter:   5,
	}
}

// startIntro shows the mission hint and panel and schedules their removal.
func startIntro(effects EffectSink, sched *Scheduler, t IntroTiming) {
	effects.SetHintText(t.HintText)
	effects.SetHintOpacity(1)
	effects.SetMissionPanelVisible(true)

	sched.After(t.HintHideAfter, func() {
		effects.SetHintText("")
	})
	sched.After(t.HintFadeAfter, func() {
		sched.Add(TweenValue(1, 0, float32(t.HintFadeDuration), ease.Linear, effects.SetHintOpacity))
	})
	sched.After(t.PanelHideAfter, func() {
		effects.SetMissionPanelVisible(false)
	})
}
