// Package account manages users, credentials, profiles, and the
// subscription relation, and builds the per-login Session context.
package account

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/user/amazstreme/internal/apperr"
	"github.com/user/amazstreme/internal/model"
	"github.com/user/amazstreme/internal/store"
)

// Session is the explicit per-login context. It replaces any notion of
// process-global user state: every operation that acts on behalf of a
// user receives the ids it needs from here.
type Session struct {
	UserID        uint
	Username      string
	AvatarPath    string
	Bio           string
	Subscriptions []string
	AdsEnabled    bool
	PlaySpeed     float64
	Notifications []string
}

// Subscribed reports membership within this session's loaded view
func (s *Session) Subscribed(channel string) bool {
	for _, ch := range s.Subscriptions {
		if ch == channel {
			return true
		}
	}
	return false
}

// SubscriptionSet returns the session's subscriptions as a lookup set
func (s *Session) SubscriptionSet() map[string]bool {
	set := make(map[string]bool, len(s.Subscriptions))
	for _, ch := range s.Subscriptions {
		set[ch] = true
	}
	return set
}

// Service handles accounts and subscriptions
type Service struct {
	store          store.Store
	defaultChannel string
	knownChannels  map[string]bool
}

// NewService creates an account service. defaultChannel is seeded for
// users without subscriptions; channelNames is the set of channels a
// user may subscribe to.
func NewService(st store.Store, defaultChannel string, channelNames []string) *Service {
	known := make(map[string]bool, len(channelNames))
	for _, name := range channelNames {
		known[name] = true
	}
	return &Service{store: st, defaultChannel: defaultChannel, knownChannels: known}
}

// SignUp creates an account and seeds the default subscription.
// Returns ErrValidation for empty fields and ErrConflict for a taken
// username.
func (s *Service) SignUp(ctx context.Context, username, credential string) (uint, error) {
	if username == "" || credential == "" {
		return 0, apperr.Validationf("username and credential are required")
	}

	user := &model.User{
		Username:   username,
		Credential: credential,
		AvatarPath: model.DefaultAvatar,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return 0, err
	}

	if err := s.store.Subscribe(ctx, user.ID, s.defaultChannel); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to seed default subscription")
	}

	log.Info().Uint("userID", user.ID).Str("username", username).Msg("Account created")
	return user.ID, nil
}

// Login authenticates and builds the session context. Bad credentials
// return (nil, nil): absence, not an error.
func (s *Service) Login(ctx context.Context, username, credential string) (*Session, error) {
	user, err := s.store.GetUserByCredentials(ctx, username, credential)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	subs, err := s.Subscriptions(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Str("username", username).Msg("User logged in")
	return &Session{
		UserID:        user.ID,
		Username:      user.Username,
		AvatarPath:    user.AvatarPath,
		Bio:           user.Bio,
		Subscriptions: subs,
		AdsEnabled:    true,
		PlaySpeed:     1.0,
		Notifications: []string{
			"Welcome to Amazstreme!",
			"New video uploaded by TechReviews",
			"Your subscription is active",
		},
	}, nil
}

// UpdateProfile overwrites avatar and bio. Idempotent full replace.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, avatarPath, bio string) error {
	return s.store.UpdateProfile(ctx, userID, avatarPath, bio)
}

// Subscribe adds a channel subscription. Idempotent.
func (s *Service) Subscribe(ctx context.Context, userID uint, channel string) error {
	if !s.knownChannels[channel] {
		return apperr.NotFoundf("channel %q", channel)
	}
	return s.store.Subscribe(ctx, userID, channel)
}

// Unsubscribe removes a channel subscription. Idempotent.
func (s *Service) Unsubscribe(ctx context.Context, userID uint, channel string) error {
	if !s.knownChannels[channel] {
		return apperr.NotFoundf("channel %q", channel)
	}
	return s.store.Unsubscribe(ctx, userID, channel)
}

// ToggleSubscription flips membership and returns the new state:
// true when the user is now subscribed. Calling it twice restores the
// original membership.
func (s *Service) ToggleSubscription(ctx context.Context, userID uint, channel string) (bool, error) {
	if !s.knownChannels[channel] {
		return false, apperr.NotFoundf("channel %q", channel)
	}

	subscribed, err := s.store.IsSubscribed(ctx, userID, channel)
	if err != nil {
		return false, err
	}

	if subscribed {
		if err := s.store.Unsubscribe(ctx, userID, channel); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.store.Subscribe(ctx, userID, channel); err != nil {
		return false, err
	}
	return true, nil
}

// Subscriptions returns the user's channels, seeding (and persisting)
// the default channel when the user has none.
func (s *Service) Subscriptions(ctx context.Context, userID uint) ([]string, error) {
	subs, err := s.store.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(subs) > 0 {
		return subs, nil
	}

	if err := s.store.Subscribe(ctx, userID, s.defaultChannel); err != nil {
		return nil, err
	}
	log.Debug().Uint("userID", userID).Str("channel", s.defaultChannel).Msg("Seeded default subscription")
	return []string{s.defaultChannel}, nil
}
