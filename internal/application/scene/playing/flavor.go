package playing

import (
	"math/rand"
	"time"
)

const (
	complimentDuration = 2 * time.Second
	flashDuration      = 300 * time.Millisecond
)

// flavor holds the cosmetic feedback: a random compliment after each lock
// and a short flash over cleared rows. It draws from its own RNG so it never
// disturbs the piece sequence.
type flavor struct {
	lines []string
	rng   *rand.Rand

	text     string
	textLeft time.Duration

	rows      []int
	flashLeft time.Duration
}

func newFlavor(lines []string, seed int64) *flavor {
	return &flavor{
		lines: lines,
		rng:   rand.New(rand.NewSource(seed ^ 0x5eed)),
	}
}

func (f *flavor) compliment() {
	if len(f.lines) == 0 {
		return
	}
	f.text = f.lines[f.rng.Intn(len(f.lines))]
	f.textLeft = complimentDuration
}

func (f *flavor) flash(rows []int) {
	f.rows = rows
	f.flashLeft = flashDuration
}

func (f *flavor) update(dt time.Duration) {
	if f.textLeft > 0 {
		f.textLeft -= dt
		if f.textLeft <= 0 {
			f.text = ""
		}
	}
	if f.flashLeft > 0 {
		f.flashLeft -= dt
		if f.flashLeft <= 0 {
			f.rows = nil
		}
	}
}

func (f *flavor) reset() {
	f.text, f.textLeft = "", 0
	f.rows, f.flashLeft = nil, 0
}

// flashAlpha fades from 1 to 0 over the flash
func (f *flavor) flashAlpha() float64 {
	if f.flashLeft <= 0 {
		return 0
	}
	return float64(f.flashLeft) / float64(flashDuration)
}
