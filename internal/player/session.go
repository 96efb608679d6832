// Package player reconciles playback sessions with durable watch
// state: it computes resume offsets when a session starts, normalizes
// position callbacks into progress percentages, and decides when to
// persist them.
package player

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/user/amazstreme/internal/server"
	"golang.org/x/time/rate"
)

// State is a playback session's lifecycle state
type State int

const (
	StateIdle State = iota
	StateStarting
	StatePlaying
	StatePaused
	StateStopped
)

// Speeds is the fixed playback-rate cycle
var Speeds = []float64{0.5, 1.0, 1.5, 2.0}

// Transport is the playback collaborator the reconciler drives. The
// transport reports positions back through OnPositionUpdate at its own
// cadence; the reconciler never schedules callbacks itself.
type Transport interface {
	Seek(fraction float64)
	SetRate(rate float64)
	SetVolume(volume float64)
	Play()
	Pause()
}

// ProgressStore is the slice of the watch-state store the reconciler
// needs
type ProgressStore interface {
	GetProgress(ctx context.Context, userID, videoID uint) (float64, bool, error)
	UpsertProgress(ctx context.Context, userID, videoID uint, progress float64, observedAt time.Time) error
}

// Media identifies what a session plays. VideoID is zero for ephemeral
// content, which keeps no durable watch state.
type Media struct {
	VideoID uint
	Title   string
	Source  string
}

// Reconciler starts playback sessions against a progress store
type Reconciler struct {
	progress ProgressStore
	// persistEvery coalesces progress writes; zero writes every update
	persistEvery time.Duration
}

// NewReconciler creates a playback reconciler. persistEvery > 0 limits
// catalog progress writes to one per interval (the last position is
// still flushed when the session ends); zero persists every update.
func NewReconciler(progress ProgressStore, persistEvery time.Duration) *Reconciler {
	return &Reconciler{progress: progress, persistEvery: persistEvery}
}

// Session is one playback session. Sessions are driven from a single
// control flow; they are not safe for concurrent use.
type Session struct {
	reconciler *Reconciler
	transport  Transport
	userID     uint
	media      Media
	state      State
	speedIdx   int
	resume     float64
	progress   float64
	limiter    *rate.Limiter
}

// StartSession begins playback of media for a user. For catalog-backed
// media the stored progress becomes the resume fraction, the transport
// is seeked there, and a watch row is written immediately so the video
// counts as watched before any position callback arrives.
func (r *Reconciler) StartSession(ctx context.Context, userID uint, media Media, transport Transport) (*Session, error) {
	s := &Session{
		reconciler: r,
		transport:  transport,
		userID:     userID,
		media:      media,
		state:      StateStarting,
		speedIdx:   1, // Speeds[1] == 1.0
	}
	if r.persistEvery > 0 {
		s.limiter = rate.NewLimiter(rate.Every(r.persistEvery), 1)
	}

	if media.VideoID != 0 {
		stored, ok, err := r.progress.GetProgress(ctx, userID, media.VideoID)
		if err != nil {
			return nil, err
		}
		if ok {
			s.resume = stored / 100
			s.progress = stored
		}
		// Mark the pair as watched, carrying over prior progress
		if err := r.progress.UpsertProgress(ctx, userID, media.VideoID, s.progress, time.Now()); err != nil {
			return nil, err
		}
		if s.resume > 0 {
			transport.Seek(s.resume)
		}
	}

	transport.Play()
	s.state = StatePlaying
	log.Debug().
		Uint("userID", userID).
		Uint("videoID", media.VideoID).
		Float64("resume", s.resume).
		Msg("Playback session started")
	return s, nil
}

// State returns the session's lifecycle state
func (s *Session) State() State {
	return s.state
}

// ResumeFraction returns the seek fraction computed at session start
func (s *Session) ResumeFraction() float64 {
	return s.resume
}

// Progress returns the last observed progress percentage
func (s *Session) Progress() float64 {
	return s.progress
}

// Speed returns the current playback rate multiplier
func (s *Session) Speed() float64 {
	return Speeds[s.speedIdx]
}

// OnPositionUpdate records a position callback from the transport.
// Updates with a non-positive duration persist nothing; updates after
// the session stopped are no-ops, not errors.
func (s *Session) OnPositionUpdate(ctx context.Context, positionSeconds, durationSeconds float64) error {
	if s.state == StateStopped {
		return nil
	}
	if durationSeconds <= 0 {
		return nil
	}

	s.progress = clampPercent(positionSeconds / durationSeconds * 100)

	if s.media.VideoID == 0 {
		return nil
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return nil
	}
	if err := s.reconciler.progress.UpsertProgress(ctx, s.userID, s.media.VideoID, s.progress, time.Now()); err != nil {
		return err
	}
	server.RecordProgressWrite()
	return nil
}

// Pause suspends playback
func (s *Session) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.transport.Pause()
	s.state = StatePaused
}

// Resume continues a paused session
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.transport.Play()
	s.state = StatePlaying
}

// ChangeSpeed cycles to the next playback rate and applies it to the
// transport, muting around the rate change so the switch is not
// audible. Returns the new rate.
func (s *Session) ChangeSpeed() float64 {
	s.speedIdx = (s.speedIdx + 1) % len(Speeds)
	speed := Speeds[s.speedIdx]

	s.transport.Pause()
	s.transport.SetVolume(0)
	s.transport.SetRate(speed)
	s.transport.SetVolume(1)
	s.transport.Play()

	log.Debug().Float64("speed", speed).Msg("Playback speed changed")
	return speed
}

// End stops the session. The last observed progress is flushed for
// catalog media, and any later position update is ignored.
func (s *Session) End(ctx context.Context) error {
	if s.state == StateStopped {
		return nil
	}
	s.state = StateStopped
	s.transport.Pause()

	if s.media.VideoID == 0 {
		return nil
	}
	if err := s.reconciler.progress.UpsertProgress(ctx, s.userID, s.media.VideoID, s.progress, time.Now()); err != nil {
		return err
	}
	server.RecordProgressWrite()
	return nil
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
