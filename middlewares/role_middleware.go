package middlewares

import (
	"net/http"
	"strings"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに caller が設定されている必要がある）
// ロールはトークンに含まれるものを使う
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(constants.ContextCaller)
		if !exists {
			abortInvalidToken(ctx)
			return
		}
		caller, ok := value.(services.Caller)
		if !ok || !caller.IsAuthenticated() {
			abortInvalidToken(ctx)
			return
		}

		userRole := strings.TrimSpace(strings.ToLower(caller.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				ctx.Next()
				return
			}
		}

		log.Debug().
			Str("user_id", caller.UserID).
			Str("role", caller.Role).
			Strs("allowed_roles", allowedRoles).
			Msg("RoleBasedAccessControl: access denied")
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": constants.ErrAdminRequired,
			"code":  apperrors.CodeAuthorization,
		})
	}
}
