package controllers

import (
	"net/http"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func callerFrom(ctx *gin.Context) services.Caller {
	if value, exists := ctx.Get(constants.ContextCaller); exists {
		if caller, ok := value.(services.Caller); ok {
			return caller
		}
	}
	return services.Caller{}
}

// pathID はパスの :id を UUID として検証する
func pathID(ctx *gin.Context) (string, bool) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID, "code": apperrors.CodeValidation})
		return "", false
	}
	return id, true
}

func bindJSON(ctx *gin.Context, input any) bool {
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.CodeValidation})
		return false
	}
	return true
}

func respondError(ctx *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok || appErr.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
}

func respondForbidden(ctx *gin.Context, message string) {
	respondError(ctx, apperrors.NewAuthorization(message))
}

func respondIDMismatch(ctx *gin.Context) {
	respondError(ctx, apperrors.NewValidation(constants.ErrIDMismatch))
}
