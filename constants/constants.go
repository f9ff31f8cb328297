package constants

// ロール (トークン内の短縮表記)
const (
	RoleAdmin = "a"
	RoleUser  = "u"
)

// gin.Context のキー
const (
	ContextCaller = "caller"
)

const TokenTypeBearer = "Bearer"

// エラーメッセージ
const (
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
	ErrIDMismatch        = "Path id and body id differ"
	ErrInvalidToken      = "invalid_token"
	ErrInvalidCredential = "Invalid email or password"
	ErrForbidden         = "Action not permitted"
	ErrAdminRequired     = "Action cannot be executed without admin rights"
	ErrSelfDelete        = "Admins cannot delete themselves"
	ErrUserNotFound      = "User not found"
	ErrShopListNotFound  = "ShopList not found"
	ErrShopItemNotFound  = "ShopItem not found"
	ErrDuplicateEmail    = "Duplicate email"
	ErrDuplicateName     = "Duplicate name"
	ErrInvalidCreator    = "Creator does not exist"
	ErrInvalidShopList   = "ShopList does not exist"
	ErrShopListClosed    = "ShopList is closed, no new items can be added"
	ErrUnsavedPassword   = "User is modified, cannot compare passwords"
)
