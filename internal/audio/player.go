// Package audio loops an optional background soundtrack. Playback runs on
// the speaker's own goroutine; the app only toggles mute from the frame
// loop.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player owns one looping streamer. A nil Player is valid and inert, so
// callers need no audio-configured checks at every use site.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	muted    bool
}

// Open decodes the file by extension (wav, mp3, flac), initializes the
// speaker and starts looping the track. The stream keeps playing until
// Close.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open soundtrack: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported soundtrack type %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode soundtrack: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		f.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer)}
	speaker.Play(ctrl)

	return &Player{file: f, streamer: streamer, ctrl: ctrl}, nil
}

// Muted reports the current mute state. Nil-safe.
func (p *Player) Muted() bool {
	return p != nil && p.muted
}

// SetMuted pauses or resumes playback. Nil-safe.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.muted = muted
	p.ctrl.Paused = muted
	speaker.Unlock()
}

// Close stops playback and releases the underlying file. Nil-safe.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.file.Close()
}
