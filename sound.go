package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"math"
)

const sampleRate = 44100

// Sounds plays short synthesized beeps. A nil *Sounds is valid and silent,
// which is what playback and the tests use.
type Sounds struct {
	ctx      *audio.Context
	score    *audio.Player
	gameOver *audio.Player
}

// NewSounds creates the audio context. Ebitengine allows only one audio
// context per process, so this must be called once.
func NewSounds() *Sounds {
	s := &Sounds{}
	s.ctx = audio.NewContext(sampleRate)
	s.score = newBeepPlayer(s.ctx, 880, 0.08)
	s.gameOver = newBeepPlayer(s.ctx, 220, 0.5)
	return s
}

// newBeepPlayer renders a decaying sine wave as 16-bit stereo PCM.
func newBeepPlayer(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-3 * t / durSec)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}

func (s *Sounds) Step(w *World) {
	if s == nil {
		return
	}
	if len(w.JustExited) > 0 {
		play(s.score)
	}
	if w.JustEnded {
		play(s.gameOver)
	}
}

func play(p *audio.Player) {
	Check(p.Rewind())
	p.Play()
}
