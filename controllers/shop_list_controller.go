package controllers

import (
	"net/http"

	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
)

type IShopListController interface {
	FindById(ctx *gin.Context)
	FindItems(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ShopListController struct {
	service     services.IShopListService
	itemService services.IShopItemService
}

func NewShopListController(service services.IShopListService, itemService services.IShopItemService) IShopListController {
	return &ShopListController{service: service, itemService: itemService}
}

func (c *ShopListController) FindById(ctx *gin.Context) {
	listID, ok := pathID(ctx)
	if !ok {
		return
	}
	list, err := c.service.FindByID(ctx.Request.Context(), listID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !services.CanReadShopList(callerFrom(ctx), list) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (c *ShopListController) FindItems(ctx *gin.Context) {
	listID, ok := pathID(ctx)
	if !ok {
		return
	}
	list, err := c.service.FindByID(ctx.Request.Context(), listID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !services.CanReadShopList(callerFrom(ctx), list) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	items, err := c.itemService.FindByShopList(ctx.Request.Context(), listID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *ShopListController) Create(ctx *gin.Context) {
	var input dto.CreateShopListInput
	if !bindJSON(ctx, &input) {
		return
	}
	if !services.CanActAs(callerFrom(ctx), input.Creator) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	list, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, list)
}

func (c *ShopListController) Update(ctx *gin.Context) {
	listID, ok := pathID(ctx)
	if !ok {
		return
	}
	var input dto.UpdateShopListInput
	if !bindJSON(ctx, &input) {
		return
	}
	if input.ID != listID {
		respondIDMismatch(ctx)
		return
	}

	current, err := c.service.FindByID(ctx.Request.Context(), listID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !services.CanModifyShopList(callerFrom(ctx), current) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}

	list, err := c.service.Update(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (c *ShopListController) Delete(ctx *gin.Context) {
	listID, ok := pathID(ctx)
	if !ok {
		return
	}
	current, err := c.service.FindByID(ctx.Request.Context(), listID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !services.CanModifyShopList(callerFrom(ctx), current) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), listID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
