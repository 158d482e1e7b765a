package session

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/models"
)

// open applies fn and closes the mobile nav. Every Open* goes through it.
func (s *State) open(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.overlays.MobileNav = false
}

func (s *State) set(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *State) OpenAuth()     { s.open(func() { s.overlays.Auth = true }) }
func (s *State) CloseAuth()    { s.set(func() { s.overlays.Auth = false }) }
func (s *State) OpenSupport()  { s.open(func() { s.overlays.Support = true }) }
func (s *State) CloseSupport() { s.set(func() { s.overlays.Support = false }) }
func (s *State) OpenProfile()  { s.open(func() { s.overlays.Profile = true }) }
func (s *State) CloseProfile() { s.set(func() { s.overlays.Profile = false }) }

func (s *State) OpenOrder(p catalog.Product) {
	s.open(func() {
		p.Features = append([]string(nil), p.Features...)
		s.selectedProduct = &p
		s.overlays.Order = true
	})
}

func (s *State) CloseOrder() {
	s.set(func() {
		s.overlays.Order = false
		s.selectedProduct = nil
	})
}

// OpenProductDetails shows purchase. origin only drives the opening animation.
func (s *State) OpenProductDetails(purchase models.PurchasedProduct, origin *Origin) {
	s.open(func() {
		p := purchase.Clone()
		s.selectedPurchase = &p
		s.detailsOrigin = nil
		if origin != nil {
			o := *origin
			s.detailsOrigin = &o
		}
		s.overlays.ProductDetails = true
	})
}

func (s *State) CloseProductDetails() {
	s.set(func() {
		s.overlays.ProductDetails = false
		s.selectedPurchase = nil
		s.detailsOrigin = nil
	})
}

func (s *State) ToggleMobileNav() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays.MobileNav = !s.overlays.MobileNav
	return s.overlays.MobileNav
}

func (s *State) CloseMobileNav() { s.set(func() { s.overlays.MobileNav = false }) }

func (s *State) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if _, ok := i18n.ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("%w: unsupported language %q", ErrValidation, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SetLanguage(ctx, string(lang)); err != nil {
		return err
	}
	s.lang = lang
	return nil
}

func (s *State) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeOld && theme != ThemeNew {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SetTheme(ctx, theme); err != nil {
		return err
	}
	s.theme = theme
	return nil
}
