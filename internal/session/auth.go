package session

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/hash"
	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/keygen"
	"github.com/Skotchmaster/rockstar_shop/internal/models"
	"github.com/google/uuid"
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateCredentials returns every violated rule, email rules first.
// A nil confirm skips the confirmation check.
func validateCredentials(lang i18n.Language, email, password string, confirm *string) []string {
	var errs []string
	switch {
	case email == "":
		errs = append(errs, i18n.T(lang, i18n.AuthEmail)+": "+i18n.T(lang, i18n.ErrRequired))
	case !emailRe.MatchString(email):
		errs = append(errs, i18n.T(lang, i18n.ErrEmailFormat))
	}
	switch {
	case password == "":
		errs = append(errs, i18n.T(lang, i18n.AuthPassword)+": "+i18n.T(lang, i18n.ErrRequired))
	case len([]rune(password)) < minPasswordLen:
		errs = append(errs, i18n.T(lang, i18n.ErrPasswordLength))
	}
	if confirm != nil && *confirm != password {
		errs = append(errs, i18n.T(lang, i18n.ErrPasswordMismatch))
	}
	return errs
}

func (s *State) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := s.logger(ctx).With("handler", "register")
	lang := s.Language()

	if errs := validateCredentials(lang, in.Email, in.Password, &in.ConfirmPassword); len(errs) > 0 {
		s.queue.Errors(i18n.T(lang, i18n.NotifyValidationError), errs)
		s.metrics.AuthAttempt("register", ErrValidation)
		l.Warn("register_failed", "status", 400, "reason", "validation", "violations", len(errs))
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "lookup", "error", err)
		return nil, err
	}
	if existing != nil {
		s.queue.Error(i18n.T(lang, i18n.NotifyRegisterError), i18n.T(lang, i18n.ErrUserExists))
		s.metrics.AuthAttempt("register", ErrUserExists)
		l.Warn("register_failed", "status", 409, "reason", "email taken")
		return nil, fmt.Errorf("%w: %s", ErrUserExists, in.Email)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}
	hashed, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "hash", "error", err)
		return nil, err
	}

	user := models.User{
		ID:                id.String(),
		Email:             in.Email,
		Password:          hashed,
		AccessKey:         keygen.Generate(),
		PurchasedProducts: []models.PurchasedProduct{},
		CreatedAt:         s.clock(),
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		l.Error("register_failed", "status", 500, "reason", "save user", "error", err)
		return nil, err
	}
	if err := s.signIn(ctx, user); err != nil {
		l.Error("register_failed", "status", 500, "reason", "session", "error", err)
		return nil, err
	}

	s.queue.RegisterSuccess(lang)
	s.metrics.AuthAttempt("register", nil)
	events.Emit(ctx, s.events, events.TopicUser, s.deviceID, events.UserRegistered, map[string]any{
		"userID": user.ID,
		"email":  user.Email,
	})
	l.Info("user_registered", "user_id", user.ID)
	return publicUser(s.user), nil
}

func (s *State) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	l := s.logger(ctx).With("handler", "login")
	lang := s.Language()

	if errs := validateCredentials(lang, in.Email, in.Password, nil); len(errs) > 0 {
		s.queue.Errors(i18n.T(lang, i18n.NotifyValidationError), errs)
		s.metrics.AuthAttempt("login", ErrValidation)
		l.Warn("login_failed", "status", 400, "reason", "validation", "violations", len(errs))
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "lookup", "error", err)
		return nil, err
	}
	if user == nil {
		s.queue.Error(i18n.T(lang, i18n.NotifyLoginError), i18n.T(lang, i18n.ErrUserNotFound))
		s.metrics.AuthAttempt("login", ErrUserNotFound)
		l.Warn("login_failed", "status", 404, "reason", "unknown email")
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, in.Email)
	}
	if !hash.CheckPassword(user.Password, in.Password) {
		s.queue.Error(i18n.T(lang, i18n.NotifyLoginError), i18n.T(lang, i18n.ErrWrongPassword))
		s.metrics.AuthAttempt("login", ErrWrongPassword)
		l.Warn("login_failed", "status", 401, "reason", "wrong password", "user_id", user.ID)
		return nil, ErrWrongPassword
	}

	if err := s.signIn(ctx, *user); err != nil {
		l.Error("login_failed", "status", 500, "reason", "session", "error", err)
		return nil, err
	}

	s.queue.LoginSuccess(lang)
	s.metrics.AuthAttempt("login", nil)
	events.Emit(ctx, s.events, events.TopicUser, s.deviceID, events.UserLoggedIn, map[string]any{
		"userID": user.ID,
	})
	l.Info("user_logged_in", "user_id", user.ID)
	return publicUser(s.user), nil
}

// signIn persists the session pointer, remembers the email and closes the
// auth overlay. Caller holds s.mu.
func (s *State) signIn(ctx context.Context, user models.User) error {
	if err := s.store.SetCurrentUser(ctx, user); err != nil {
		return err
	}
	if err := s.store.SetSavedEmail(ctx, user.Email); err != nil {
		return err
	}
	u := user.Clone()
	s.user = &u
	s.savedEmail = user.Email
	s.overlays.Auth = false
	return nil
}

// Logout always notifies, even when nobody was signed in.
func (s *State) Logout(ctx context.Context) error {
	l := s.logger(ctx).With("handler", "logout")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearCurrentUser(ctx); err != nil {
		l.Error("logout_failed", "status", 500, "error", err)
		return err
	}
	var userID string
	if s.user != nil {
		userID = s.user.ID
	}
	s.user = nil
	s.overlays.Profile = false
	s.overlays.ProductDetails = false
	s.selectedPurchase = nil
	s.detailsOrigin = nil

	s.queue.LogoutSuccess(s.lang)
	events.Emit(ctx, s.events, events.TopicUser, s.deviceID, events.UserLoggedOut, map[string]any{
		"userID": userID,
	})
	l.Info("user_logged_out", "user_id", userID)
	return nil
}
