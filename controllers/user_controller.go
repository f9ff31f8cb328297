package controllers

import (
	"net/http"

	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	if !services.CanManageUsers(callerFrom(ctx)) {
		respondForbidden(ctx, constants.ErrAdminRequired)
		return
	}
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) FindById(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}
	if !services.CanReadUser(callerFrom(ctx), userID) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	user, err := c.service.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Create(ctx *gin.Context) {
	if !services.CanManageUsers(callerFrom(ctx)) {
		respondForbidden(ctx, constants.ErrAdminRequired)
		return
	}
	var input dto.CreateUserInput
	if !bindJSON(ctx, &input) {
		return
	}
	user, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}
	if !services.CanManageUsers(callerFrom(ctx)) {
		respondForbidden(ctx, constants.ErrAdminRequired)
		return
	}
	var input dto.UpdateUserInput
	if !bindJSON(ctx, &input) {
		return
	}
	if input.ID != userID {
		respondIDMismatch(ctx)
		return
	}
	user, err := c.service.Update(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}
	caller := callerFrom(ctx)
	if !services.CanManageUsers(caller) {
		respondForbidden(ctx, constants.ErrAdminRequired)
		return
	}
	if !services.CanDeleteUser(caller, userID) {
		respondForbidden(ctx, constants.ErrSelfDelete)
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
