// Command nesapu is a minimal host for the NES APU core: it drives the
// frame driver with a synthetic CPU-cycle clock (there is no 6502 decoder
// in this module), loads a fixed register program for demonstration, and
// plays the resulting audio through ebiten.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"nesapu/internal/audioring"
	"nesapu/internal/driver"
)

func main() {
	var (
		frames   = flag.Int("frames", 180, "number of NTSC video frames to run")
		ringCap  = flag.Int("ring", audioring.MinCapacity, "audio ring capacity in samples")
		play     = flag.Bool("play", false, "play audio live through the host's default output device")
		logEvery = flag.Int("log-every", 60, "log timing stats every N frames (0 disables)")
	)
	flag.Parse()

	drv := driver.New(*ringCap)
	loadDemoProgram(drv)

	var player *audio.Player
	if *play {
		ctx := audio.NewContext(44100)
		reader := newPCMReader(drv, 4096)
		var err error
		player, err = ctx.NewPlayer(reader)
		if err != nil {
			log.Fatalf("nesapu: failed to create audio player: %v", err)
		}
		player.Play()
	}

	var lastUnderruns uint64
	for i := 0; i < *frames; i++ {
		if err := drv.AdvanceFrame(); err != nil {
			log.Fatalf("nesapu: AdvanceFrame: %v", err)
		}
		if *logEvery > 0 && i%(*logEvery) == 0 {
			stats := drv.TimingStats()
			log.Printf("frame %d: total frames=%d underruns=%d", i, stats.Frames, stats.Underruns)
		}
		logUnderrunsPeriodically(drv, &lastUnderruns)
		if *play {
			// Pace the synthetic clock to real time so the ebiten player
			// has something to drain; without a real CPU this loop is the
			// only source of wall-clock timing.
			time.Sleep(time.Second / 60)
		}
	}

	if player != nil {
		player.Close()
	}
}

// loadDemoProgram writes a small, fixed register program so the demo
// produces audible output: pulse 1 at constant volume with a duty-cycle
// square wave, plus the triangle channel. Noise is enabled in $4015 but is
// never given a length load, so it stays silent.
func loadDemoProgram(drv *driver.Driver) {
	writes := []struct {
		addr  uint16
		value uint8
	}{
		{0x4015, 0x0F}, // enable pulse1, pulse2, triangle, noise
		{0x4000, 0x3F}, // pulse1: duty 12.5%, halt, constant volume 15
		{0x4002, 0x20}, // pulse1 period low
		{0x4003, 0x00}, // pulse1 period high + length load
		{0x4008, 0x81}, // triangle: control halt, linear reload 1
		{0x400A, 0x00},
		{0x400B, 0x08}, // triangle period + length load
	}
	for _, w := range writes {
		if err := drv.Write(w.addr, w.value); err != nil {
			log.Fatalf("nesapu: demo program write %#04x: %v", w.addr, err)
		}
	}
}
