package main

import (
	"encoding/binary"
	"log"

	"nesapu/internal/driver"
)

// pcmReader adapts the driver's mono 16-bit audio ring to the stereo
// little-endian PCM stream ebiten's audio.Context expects, duplicating the
// mono channel to left/right.
type pcmReader struct {
	drv     *driver.Driver
	scratch []int16
}

func newPCMReader(drv *driver.Driver, batchSamples int) *pcmReader {
	return &pcmReader{drv: drv, scratch: make([]int16, batchSamples)}
}

// Read fills p with stereo 16-bit PCM, draining mono samples from the
// ring and duplicating each to both channels. Underruns are silent per the
// audio sink contract; the caller can inspect Driver.Underruns separately.
func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / 4 // 2 channels * 2 bytes
	if frames == 0 {
		return 0, nil
	}
	if frames > len(r.scratch) {
		frames = len(r.scratch)
	}

	r.drv.DrainAudio(r.scratch[:frames])

	off := 0
	for i := 0; i < frames; i++ {
		s := r.scratch[i]
		binary.LittleEndian.PutUint16(p[off:], uint16(s))
		binary.LittleEndian.PutUint16(p[off+2:], uint16(s))
		off += 4
	}
	return off, nil
}

func logUnderrunsPeriodically(drv *driver.Driver, prev *uint64) {
	cur := drv.Underruns()
	if cur != *prev {
		log.Printf("audio underrun: %d samples total", cur)
		*prev = cur
	}
}
