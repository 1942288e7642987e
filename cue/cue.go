// Package cue plays the audio feedback of a scan: a click when a scan
// starts and a success or failure sound on the result.
package cue

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ayushran32/Error-404-Algovibe/logging"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// Sound names one cue.
type Sound int

const (
	Click Sound = iota
	Success
	Failure
)

func (s Sound) String() string {
	switch s {
	case Click:
		return "click"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "sound(" + strconv.Itoa(int(s)) + ")"
	}
}

// Player plays a sound. Implementations must be safe for concurrent use.
type Player interface {
	Play(Sound) error
}

// ForResult picks Success when a run was found, Failure otherwise.
func ForResult(r scan.Result) Sound {
	if r.Found() {
		return Success
	}
	return Failure
}

// Play plays s on p and logs any failure instead of returning it.
func Play(p Player, s Sound, log *zap.SugaredLogger) {
	if p == nil {
		return
	}
	if err := p.Play(s); err != nil {
		logging.OrNop(log).Warnw("cue failed", "sound", s.String(), "error", err)
	}
}

// Switch wraps a Player with a mute toggle.
type Switch struct {
	next  Player
	muted atomic.Bool
}

// NewSwitch returns an unmuted Switch over next.
func NewSwitch(next Player) *Switch {
	return &Switch{next: next}
}

// SetMuted mutes or unmutes the switch.
func (s *Switch) SetMuted(muted bool) { s.muted.Store(muted) }

// Toggle flips the mute state and returns the new value.
func (s *Switch) Toggle() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether sounds are suppressed.
func (s *Switch) Muted() bool { return s.muted.Load() }

// Play forwards to the wrapped player unless muted.
func (s *Switch) Play(snd Sound) error {
	if s.muted.Load() || s.next == nil {
		return nil
	}
	return s.next.Play(snd)
}

// Bell plays cues as terminal bells: none for a click, one for success
// and two for failure.
type Bell struct {
	W io.Writer
}

// Play writes the bell sequence for snd.
func (b Bell) Play(snd Sound) error {
	var seq string
	switch snd {
	case Click:
		return nil
	case Success:
		seq = "\a"
	case Failure:
		seq = "\a\a"
	default:
		return fmt.Errorf("cue: unknown sound %d", int(snd))
	}
	_, err := io.WriteString(b.W, seq)
	return err
}
