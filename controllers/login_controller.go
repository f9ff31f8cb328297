package controllers

import (
	"net/http"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
)

type ILoginController interface {
	Login(ctx *gin.Context)
}

type LoginController struct {
	service services.ITokenService
}

func NewLoginController(service services.ITokenService) ILoginController {
	return &LoginController{service: service}
}

func (c *LoginController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(ctx, &input) {
		return
	}

	token, err := c.service.Issue(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if token == nil {
		respondError(ctx, apperrors.NewAuthentication(constants.ErrInvalidCredential))
		return
	}

	ctx.JSON(http.StatusCreated, dto.LoginResource{
		AccessToken: *token,
		TokenType:   constants.TokenTypeBearer,
	})
}
