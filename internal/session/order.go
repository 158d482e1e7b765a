package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/keygen"
	"github.com/Skotchmaster/rockstar_shop/internal/models"
	"github.com/Skotchmaster/rockstar_shop/internal/notify"
	"github.com/Skotchmaster/rockstar_shop/internal/repo"
)

const (
	ProductVersion   = "2.0.1"
	ProductRAM       = "8 ГБ"
	MinecraftVersion = "1.20.1"

	// TermLength is the fixed validity of every non-perpetual purchase.
	TermLength = 90 * 24 * time.Hour

	minKeyLen = 8
)

// DemoProductTitle names the product a redeemed key grants.
const DemoProductTitle = "Rockstar 2.0"

// Purchase turns the selected product into a purchased product of the
// signed-in user. There is no payment step and no failure path once a user
// and a product are present.
func (s *State) Purchase(ctx context.Context) (*models.PurchasedProduct, error) {
	l := s.logger(ctx).With("handler", "purchase")

	s.mu.Lock()
	lang := s.lang
	if s.user == nil {
		s.mu.Unlock()
		s.queue.Error(i18n.T(lang, i18n.NotifyOrderError), i18n.T(lang, i18n.ErrNotAuthenticated))
		l.Warn("purchase_failed", "status", 401, "reason", "not authenticated")
		return nil, ErrNotAuthenticated
	}
	if s.selectedProduct == nil {
		s.mu.Unlock()
		s.queue.Error(i18n.T(lang, i18n.NotifyOrderError), i18n.T(lang, i18n.ErrNoProduct))
		l.Warn("purchase_failed", "status", 400, "reason", "no product selected")
		return nil, ErrNoProductSelected
	}
	userID := s.user.ID
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != userID {
		l.Warn("purchase_failed", "status", 401, "reason", "session changed")
		return nil, ErrNotAuthenticated
	}
	if s.selectedProduct == nil {
		return nil, ErrNoProductSelected
	}
	product := *s.selectedProduct

	now := s.clock()
	purchase := models.PurchasedProduct{
		ID:               product.ID,
		Title:            product.Title,
		Version:          ProductVersion,
		Duration:         product.Duration,
		RAMSize:          ProductRAM,
		MinecraftVersion: MinecraftVersion,
		PurchaseDate:     now,
	}
	if !catalog.IsPerpetual(product.Duration) {
		exp := now.Add(TermLength)
		purchase.ExpiryDate = &exp
	}
	purchase.AccessKey = keygen.Generate()

	if err := s.store.AddPurchasedProduct(ctx, userID, purchase); err != nil {
		s.queue.Error(i18n.T(lang, i18n.NotifyOrderError), i18n.T(lang, i18n.ErrGeneric))
		l.Error("purchase_failed", "status", 500, "reason", "save", "error", err)
		return nil, err
	}
	s.queue.PurchaseIssued(lang, product.Title, purchase.AccessKey)
	s.user.PurchasedProducts = append(s.user.PurchasedProducts, purchase.Clone())
	s.overlays.Order = false
	s.selectedProduct = nil

	s.metrics.Purchase("order")
	events.Emit(ctx, s.events, events.TopicOrder, s.deviceID, events.ProductPurchased, map[string]any{
		"userID":    userID,
		"productID": purchase.ID,
		"title":     purchase.Title,
		"duration":  purchase.Duration,
	})
	l.Info("product_purchased", "user_id", userID, "product_id", purchase.ID)
	return &purchase, nil
}

// RedeemKey accepts any trimmed key of at least eight characters, binds it
// to the account and grants the demo product. A matching unused registry
// entry is marked used; other keys are accepted as is.
func (s *State) RedeemKey(ctx context.Context, key string) (*models.PurchasedProduct, error) {
	l := s.logger(ctx).With("handler", "redeem_key")
	lang := s.Language()
	key = strings.TrimSpace(key)

	switch {
	case key == "":
		s.queue.Error(i18n.T(lang, i18n.NotifyKeyError), i18n.T(lang, i18n.ErrKeyRequired))
		l.Warn("redeem_failed", "status", 400, "reason", "empty key")
		return nil, ErrKeyRequired
	case utf8.RuneCountInString(key) < minKeyLen:
		s.queue.Error(i18n.T(lang, i18n.NotifyKeyError), i18n.T(lang, i18n.ErrKeyFormat))
		l.Warn("redeem_failed", "status", 400, "reason", "short key")
		return nil, fmt.Errorf("%w: shorter than %d characters", ErrKeyFormat, minKeyLen)
	}

	if s.CurrentUser() == nil {
		s.queue.Error(i18n.T(lang, i18n.NotifyKeyError), i18n.T(lang, i18n.ErrNotAuthenticated))
		l.Warn("redeem_failed", "status", 401, "reason", "not authenticated")
		return nil, ErrNotAuthenticated
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNotAuthenticated
	}

	demo := models.PurchasedProduct{
		ID:           1,
		Title:        DemoProductTitle,
		Version:      ProductVersion,
		Duration:     i18n.T(i18n.RU, i18n.ShopForever),
		RAMSize:      ProductRAM,
		PurchaseDate: s.clock(),
	}

	user := s.user.Clone()
	user.AccessKey = key
	user.PurchasedProducts = append(user.PurchasedProducts, demo)
	if err := s.store.SaveUser(ctx, user); err != nil {
		l.Error("redeem_failed", "status", 500, "reason", "save user", "error", err)
		return nil, err
	}
	if err := s.store.SetCurrentUser(ctx, user); err != nil {
		l.Error("redeem_failed", "status", 500, "reason", "session", "error", err)
		return nil, err
	}
	s.user = &user

	switch err := s.store.MarkAccessKeyUsed(ctx, key, user.ID); {
	case err == nil:
		l.Info("registry_key_used", "key", key)
	case errors.Is(err, repo.ErrKeyNotFound):
	case errors.Is(err, repo.ErrKeyAlreadyUsed):
		l.Warn("registry_key_reused", "key", key, "user_id", user.ID)
	default:
		l.Error("registry_update_failed", "key", key, "error", err)
	}

	s.queue.Add(notify.Success,
		i18n.T(lang, i18n.NotifyRedeemTitle),
		fmt.Sprintf(i18n.T(lang, i18n.NotifyRedeemMessage), demo.Title),
	)
	s.metrics.Purchase("redeem")
	events.Emit(ctx, s.events, events.TopicOrder, s.deviceID, events.KeyRedeemed, map[string]any{
		"userID": user.ID,
		"title":  demo.Title,
	})
	l.Info("key_redeemed", "user_id", user.ID)
	return &demo, nil
}

// PurchasedProducts lists the signed-in user's purchases oldest first.
func (s *State) PurchasedProducts() ([]models.PurchasedProduct, error) {
	u := s.CurrentUser()
	if u == nil {
		return nil, ErrNotAuthenticated
	}
	return u.PurchasedProducts, nil
}

func (s *State) AccessKeys(ctx context.Context) ([]models.AccessKey, error) {
	return s.store.GetAccessKeys(ctx)
}

const issueAttempts = 16

// IssueAccessKey adds a fresh key to the registry, re-rolling on collision.
func (s *State) IssueAccessKey(ctx context.Context) (models.AccessKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.store.GetAccessKeys(ctx)
	if err != nil {
		return models.AccessKey{}, err
	}
	taken := make(map[string]bool, len(keys))
	for _, k := range keys {
		taken[k.Key] = true
	}
	key, err := keygen.GenerateUnique(func(k string) bool { return taken[k] }, issueAttempts)
	if err != nil {
		return models.AccessKey{}, err
	}

	rec := models.AccessKey{Key: key, CreatedAt: s.clock()}
	if err := s.store.SaveAccessKey(ctx, rec); err != nil {
		return models.AccessKey{}, err
	}
	s.logger(ctx).Info("registry_key_issued", "key", key)
	return rec, nil
}

func (s *State) RevokeAccessKey(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DeleteAccessKey(ctx, key)
}
