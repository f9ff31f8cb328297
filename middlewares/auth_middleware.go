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

// AuthMiddleware はトークン必須。無い・無効な場合は 401
func AuthMiddleware(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			abortInvalidToken(ctx)
			return
		}
		if !resolveCaller(ctx, tokenService, header) {
			return
		}
		ctx.Next()
	}
}

// OptionalAuthMiddleware はヘッダーが無ければ匿名として通す。
// ヘッダーがあって無効な場合は 401
func OptionalAuthMiddleware(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Set(constants.ContextCaller, services.Caller{})
			ctx.Next()
			return
		}
		if !resolveCaller(ctx, tokenService, header) {
			return
		}
		ctx.Next()
	}
}

func resolveCaller(ctx *gin.Context, tokenService services.ITokenService, header string) bool {
	if !strings.HasPrefix(header, constants.TokenTypeBearer+" ") {
		abortInvalidToken(ctx)
		return false
	}

	tokenString := strings.TrimPrefix(header, constants.TokenTypeBearer+" ")
	identity, err := tokenService.Verify(tokenString)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeConfiguration) {
			log.Error().Err(err).Msg("token verification misconfigured")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return false
		}
		abortInvalidToken(ctx)
		return false
	}

	ctx.Set(constants.ContextCaller, services.Caller{UserID: identity.UserID, Role: identity.Role})
	return true
}

func abortInvalidToken(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": constants.ErrInvalidToken,
		"code":  apperrors.CodeAuthentication,
	})
}
