package i18n

var translations = map[Language]map[Key]string{
	RU: {
		HeaderHome:    "Главная",
		HeaderShop:    "Магазин",
		HeaderSupport: "Поддержка",
		HeaderAuth:    "Авторизация",
		HeaderProfile: "Личный кабинет",

		FooterAbout:     "О нас",
		FooterTerms:     "Условия пользования",
		FooterPrivacy:   "Политика конфиденциальности",
		FooterContact:   "Контакты",
		FooterCopyright: "© 2025 Rockstar Client. Все права защищены",

		AuthLogin:           "Войти",
		AuthRegister:        "Регистрация",
		AuthEmail:           "Эл. почта",
		AuthPassword:        "Пароль",
		AuthConfirmPassword: "Подтвердите пароль",
		AuthLogout:          "Выйти",
		AuthSuccessLogin:    "Вы успешно вошли!",
		AuthSuccessRegister: "Вы успешно зарегистрированы!",

		ShopBuyNow:   "Купить сейчас",
		ShopPopular:  "ПОПУЛЯРНЫЙ",
		ShopPrice:    "Цена",
		ShopTerm:     "Срок",
		ShopFeatures: "Возможности",
		ShopForever:  "Навсегда",
		ShopMonths:   "месяца",

		FeatureBeta:      "Доступ к бета-версии",
		FeatureLifetime:  "Пожизненный доступ",
		FeaturePriority:  "Приоритетная поддержка",
		FeatureExclusive: "Эксклюзивные функции",
		FeatureRecode:    "Версия Recode",
		FeatureTech:      "Техническая поддержка",
		FeatureRegular:   "Регулярные обновления",
		FeatureBasic:     "Базовые функции",
		FeatureStandard:  "Стандартная поддержка",
		FeatureUpdates:   "Обновления на весь срок",

		OrderTitle:     "Оформление заказа",
		OrderProduct:   "Продукт",
		OrderEmail:     "Эл. почта",
		OrderPay:       "Оплатить",
		OrderSuccess:   "Вы успешно купили чит!",
		OrderKeyIssued: "Вот ваш ключ:",

		ProfileTitle:           "Личный кабинет",
		ProfileNoProducts:      "У вас пока нет приобретённых продуктов",
		ProfileAddProduct:      "Добавить продукт по ключу",
		ProfileProductSettings: "Настройки продукта",
		ProfileLogout:          "Выйти",

		SupportTitle:       "Поддержка",
		SupportDescription: "Отправьте нам сообщение, и мы свяжемся с вами.",
		SupportSend:        "Отправить",

		ErrRequired:         "Заполните все поля",
		ErrEmailFormat:      "Неверный формат почты",
		ErrPasswordLength:   "Пароль должен содержать минимум 6 символов",
		ErrPasswordMismatch: "Пароли не совпадают",
		ErrUserNotFound:     "Пользователь не найден",
		ErrWrongPassword:    "Неверный пароль",
		ErrUserExists:       "Пользователь с такой почтой уже существует",
		ErrGeneric:          "Что-то пошло не так, попробуйте ещё раз",
		ErrKeyRequired:      "Введите ключ доступа",
		ErrKeyFormat:        "Неверный формат ключа",
		ErrNotAuthenticated: "Войдите в аккаунт",
		ErrNoProduct:        "Продукт не выбран",

		NotifyLoginTitle:      "Успешный вход!",
		NotifyLoginMessage:    "Вы успешно вошли в систему",
		NotifyRegisterTitle:   "Регистрация завершена!",
		NotifyRegisterMessage: "Вы успешно зарегистрировались",
		NotifyLogoutTitle:     "Выход выполнен",
		NotifyLogoutMessage:   "Вы успешно вышли из аккаунта",
		NotifyPurchaseTitle:   "Покупка успешна!",
		NotifyPurchaseMessage: "Вы успешно приобрели %s",
		NotifyRedeemTitle:     "Ключ активирован",
		NotifyRedeemMessage:   "Продукт %s добавлен в ваш аккаунт",
		NotifyLoginError:      "Ошибка входа",
		NotifyRegisterError:   "Ошибка регистрации",
		NotifyValidationError: "Проверьте введённые данные",
		NotifyKeyError:        "Ошибка активации",
		NotifyOrderError:      "Ошибка заказа",
		NotifyError:           "Ошибка",
	},
	EN: {
		HeaderHome:    "Home",
		HeaderShop:    "Shop",
		HeaderSupport: "Support",
		HeaderAuth:    "Authorization",
		HeaderProfile: "Profile",

		FooterAbout:     "About Us",
		FooterTerms:     "Terms of Service",
		FooterPrivacy:   "Privacy Policy",
		FooterContact:   "Contact",
		FooterCopyright: "© 2025 Rockstar Client. All rights reserved",

		AuthLogin:           "Login",
		AuthRegister:        "Register",
		AuthEmail:           "Email",
		AuthPassword:        "Password",
		AuthConfirmPassword: "Confirm Password",
		AuthLogout:          "Logout",
		AuthSuccessLogin:    "You have successfully logged in!",
		AuthSuccessRegister: "You have successfully registered!",

		ShopBuyNow:   "Buy Now",
		ShopPopular:  "POPULAR",
		ShopPrice:    "Price",
		ShopTerm:     "Term",
		ShopFeatures: "Features",
		ShopForever:  "Forever",
		ShopMonths:   "months",

		FeatureBeta:      "Beta access",
		FeatureLifetime:  "Lifetime access",
		FeaturePriority:  "Priority support",
		FeatureExclusive: "Exclusive features",
		FeatureRecode:    "Recode edition",
		FeatureTech:      "Technical support",
		FeatureRegular:   "Regular updates",
		FeatureBasic:     "Basic features",
		FeatureStandard:  "Standard support",
		FeatureUpdates:   "Updates for the whole term",

		OrderTitle:     "Place Order",
		OrderProduct:   "Product",
		OrderEmail:     "Email",
		OrderPay:       "Pay",
		OrderSuccess:   "You have successfully purchased the cheat!",
		OrderKeyIssued: "Here is your key:",

		ProfileTitle:           "Profile",
		ProfileNoProducts:      "You have no purchased products yet",
		ProfileAddProduct:      "Add product by key",
		ProfileProductSettings: "Product Settings",
		ProfileLogout:          "Logout",

		SupportTitle:       "Support",
		SupportDescription: "Send us a message and we will contact you.",
		SupportSend:        "Send",

		ErrRequired:         "Please fill in all fields",
		ErrEmailFormat:      "Invalid email format",
		ErrPasswordLength:   "Password must be at least 6 characters",
		ErrPasswordMismatch: "Passwords do not match",
		ErrUserNotFound:     "User not found",
		ErrWrongPassword:    "Wrong password",
		ErrUserExists:       "A user with this email already exists",
		ErrGeneric:          "Something went wrong, please try again",
		ErrKeyRequired:      "Enter an access key",
		ErrKeyFormat:        "Invalid key format",
		ErrNotAuthenticated: "Please log in",
		ErrNoProduct:        "No product selected",

		NotifyLoginTitle:      "Logged in!",
		NotifyLoginMessage:    "You have successfully logged in",
		NotifyRegisterTitle:   "Registration complete!",
		NotifyRegisterMessage: "You have successfully registered",
		NotifyLogoutTitle:     "Logged out",
		NotifyLogoutMessage:   "You have successfully logged out",
		NotifyPurchaseTitle:   "Purchase successful!",
		NotifyPurchaseMessage: "You have successfully purchased %s",
		NotifyRedeemTitle:     "Key activated",
		NotifyRedeemMessage:   "%s has been added to your account",
		NotifyLoginError:      "Login error",
		NotifyRegisterError:   "Registration error",
		NotifyValidationError: "Check your input",
		NotifyKeyError:        "Activation error",
		NotifyOrderError:      "Order error",
		NotifyError:           "Error",
	},
}
