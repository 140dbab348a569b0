package main

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/hexaroni/model"
)

// Action is what happens while a tween runs and after it ends. nexts start
// follow-up tweens.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t after a and returns the action of t.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// flashBanner fades text in, holds it and fades it out again. A new banner
// replaces the running one.
func (g *Game) flashBanner(text string) {
	g.Tweens = make(map[*gween.Tween]Action)
	g.banner = text
	setAlpha := func(v float32) { g.bannerAlpha = float64(v) }

	first := Action{onChange: setAlpha}
	hold := first.next(gween.New(1, 1, 0.7, ease.Linear))
	hold.onChange = setAlpha
	out := hold.next(gween.New(1, 0, 0.4, ease.InQuad))
	out.onChange = setAlpha
	out.addOnFinish(func() { g.banner = "" })
	g.Tweens[gween.New(0, 1, 0.2, ease.OutQuad)] = first
}

// eased is the eased progress of a timed status at now.
func eased(s model.Status, now float64) float64 {
	return float64(ease.OutQuad(float32(s.Progress(now)), 0, 1, 1))
}

// wobbleOffset is the horizontal shake of a tile about to collapse.
func wobbleOffset(s model.Status, now float64) float64 {
	return s.Amplitude * math.Sin(s.Speed*(now-s.Start))
}
