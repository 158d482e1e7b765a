// Package i18n resolves user-facing strings by dotted key. Missing entries
// resolve to the key itself, never to an empty string.
package i18n

type Language string

const (
	RU Language = "ru"
	EN Language = "en"

	Default = RU
)

func Languages() []Language { return []Language{RU, EN} }

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case RU:
		return RU, true
	case EN:
		return EN, true
	}
	return "", false
}

type Key string

const (
	HeaderHome    Key = "header.home"
	HeaderShop    Key = "header.shop"
	HeaderSupport Key = "header.support"
	HeaderAuth    Key = "header.auth"
	HeaderProfile Key = "header.profile"

	FooterAbout     Key = "footer.about"
	FooterTerms     Key = "footer.terms"
	FooterPrivacy   Key = "footer.privacy"
	FooterContact   Key = "footer.contact"
	FooterCopyright Key = "footer.copyright"

	AuthLogin           Key = "auth.login"
	AuthRegister        Key = "auth.register"
	AuthEmail           Key = "auth.email"
	AuthPassword        Key = "auth.password"
	AuthConfirmPassword Key = "auth.confirmPassword"
	AuthLogout          Key = "auth.logout"
	AuthSuccessLogin    Key = "auth.successLogin"
	AuthSuccessRegister Key = "auth.successRegister"

	ShopBuyNow   Key = "shop.buyNow"
	ShopPopular  Key = "shop.popular"
	ShopPrice    Key = "shop.price"
	ShopTerm     Key = "shop.term"
	ShopFeatures Key = "shop.features"
	ShopForever  Key = "shop.forever"
	ShopMonths   Key = "shop.months"

	FeatureBeta      Key = "shop.features.beta"
	FeatureLifetime  Key = "shop.features.lifetime"
	FeaturePriority  Key = "shop.features.priority"
	FeatureExclusive Key = "shop.features.exclusive"
	FeatureRecode    Key = "shop.features.recode"
	FeatureTech      Key = "shop.features.tech"
	FeatureRegular   Key = "shop.features.regular"
	FeatureBasic     Key = "shop.features.basic"
	FeatureStandard  Key = "shop.features.standard"
	FeatureUpdates   Key = "shop.features.updates"

	OrderTitle     Key = "order.title"
	OrderProduct   Key = "order.product"
	OrderEmail     Key = "order.email"
	OrderPay       Key = "order.pay"
	OrderSuccess   Key = "order.success"
	OrderKeyIssued Key = "order.keyIssued"

	ProfileTitle           Key = "profile.title"
	ProfileNoProducts      Key = "profile.noProducts"
	ProfileAddProduct      Key = "profile.addProduct"
	ProfileProductSettings Key = "profile.productSettings"
	ProfileLogout          Key = "profile.logout"

	SupportTitle       Key = "support.title"
	SupportDescription Key = "support.description"
	SupportSend        Key = "support.send"

	ErrRequired         Key = "error.required"
	ErrEmailFormat      Key = "error.emailFormat"
	ErrPasswordLength   Key = "error.passwordLength"
	ErrPasswordMismatch Key = "error.passwordMismatch"
	ErrUserNotFound     Key = "error.userNotFound"
	ErrWrongPassword    Key = "error.wrongPassword"
	ErrUserExists       Key = "error.userExists"
	ErrGeneric          Key = "error.generic"
	ErrKeyRequired      Key = "error.keyRequired"
	ErrKeyFormat        Key = "error.keyFormat"
	ErrNotAuthenticated Key = "error.notAuthenticated"
	ErrNoProduct        Key = "error.noProduct"

	NotifyLoginTitle      Key = "notify.loginTitle"
	NotifyLoginMessage    Key = "notify.loginMessage"
	NotifyRegisterTitle   Key = "notify.registerTitle"
	NotifyRegisterMessage Key = "notify.registerMessage"
	NotifyLogoutTitle     Key = "notify.logoutTitle"
	NotifyLogoutMessage   Key = "notify.logoutMessage"
	NotifyPurchaseTitle   Key = "notify.purchaseTitle"
	NotifyPurchaseMessage Key = "notify.purchaseMessage"
	NotifyRedeemTitle     Key = "notify.redeemTitle"
	NotifyRedeemMessage   Key = "notify.redeemMessage"
	NotifyLoginError      Key = "notify.loginError"
	NotifyRegisterError   Key = "notify.registerError"
	NotifyValidationError Key = "notify.validationError"
	NotifyKeyError        Key = "notify.keyError"
	NotifyOrderError      Key = "notify.orderError"
	NotifyError           Key = "notify.error"
)

// T looks key up for lang, falling back to the key itself.
func T(lang Language, key Key) string {
	if s, ok := translations[lang][key]; ok && s != "" {
		return s
	}
	return string(key)
}

// Lookup is T for untyped keys coming from the presentation layer.
func Lookup(lang Language, key string) string {
	return T(lang, Key(key))
}

// All returns every translation of key, in Languages() order.
func All(key Key) []string {
	out := make([]string, 0, len(translations))
	for _, lang := range Languages() {
		if s, ok := translations[lang][key]; ok {
			out = append(out, s)
		}
	}
	return out
}
