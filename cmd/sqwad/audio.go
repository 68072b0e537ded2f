package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type tone struct {
	freq     float64
	duration float64
	volume   float64
}

var tones = map[string]tone{
	"shoot":  {freq: 880, duration: 0.05, volume: 0.25},
	"hurt":   {freq: 220, duration: 0.12, volume: 0.4},
	"die":    {freq: 110, duration: 0.3, volume: 0.5},
	"pickup": {freq: 1320, duration: 0.1, volume: 0.3},
}

var defaultTone = tone{freq: 440, duration: 0.08, volume: 0.3}

// tonePlayer plays a short synthesized tone for each requested sound.
type tonePlayer struct {
	ctx     *audio.Context
	players map[string]*audio.Player
}

func newTonePlayer() *tonePlayer {
	return &tonePlayer{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[string]*audio.Player),
	}
}

func (p *tonePlayer) Play(name string) {
	player, ok := p.players[name]
	if !ok {
		t, ok := tones[name]
		if !ok {
			t = defaultTone
		}
		player = p.ctx.NewPlayerFromBytes(sinePCM(t))
		p.players[name] = player
	}
	if err := player.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", name, err)
		return
	}
	player.Play()
}

// sinePCM renders t as 16-bit little-endian stereo with a linear fade out.
func sinePCM(t tone) []byte {
	n := int(t.duration * sampleRate)
	buf := make([]byte, n*4)
	for i := range n {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate) * t.volume * env * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
