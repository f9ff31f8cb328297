package controllers

import (
	"net/http"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
)

type IShopItemController interface {
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ShopItemController struct {
	service     services.IShopItemService
	listService services.IShopListService
}

func NewShopItemController(service services.IShopItemService, listService services.IShopListService) IShopItemController {
	return &ShopItemController{service: service, listService: listService}
}

// loadWithList はアイテムと親リストを取得する。失敗時はレスポンス済み
func (c *ShopItemController) loadWithList(ctx *gin.Context, itemID string) (*dto.ShopItemResource, *dto.ShopListResource, bool) {
	item, err := c.service.FindByID(ctx.Request.Context(), itemID)
	if err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}
	list, err := c.listService.FindByID(ctx.Request.Context(), item.ShopList)
	if err != nil {
		respondError(ctx, err)
		return nil, nil, false
	}
	return item, list, true
}

func (c *ShopItemController) FindById(ctx *gin.Context) {
	itemID, ok := pathID(ctx)
	if !ok {
		return
	}
	item, list, ok := c.loadWithList(ctx, itemID)
	if !ok {
		return
	}
	if !services.CanReadShopItem(callerFrom(ctx), list, item) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create: 権限が無ければ 403 で止め、何も作らない
func (c *ShopItemController) Create(ctx *gin.Context) {
	var input dto.CreateShopItemInput
	if !bindJSON(ctx, &input) {
		return
	}
	caller := callerFrom(ctx)
	if !services.CanActAs(caller, input.Creator) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}

	list, err := c.listService.FindByID(ctx.Request.Context(), input.ShopList)
	if err != nil {
		// 存在しない親リストは参照エラー扱い
		if apperrors.Is(err, apperrors.CodeNotFound) {
			err = apperrors.NewInvalidReference(constants.ErrInvalidShopList)
		}
		respondError(ctx, err)
		return
	}
	if !services.CanCreateShopItem(caller, list) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}

	item, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *ShopItemController) Update(ctx *gin.Context) {
	itemID, ok := pathID(ctx)
	if !ok {
		return
	}
	var input dto.UpdateShopItemInput
	if !bindJSON(ctx, &input) {
		return
	}
	if input.ID != itemID {
		respondIDMismatch(ctx)
		return
	}
	item, list, ok := c.loadWithList(ctx, itemID)
	if !ok {
		return
	}
	if !services.CanModifyShopItem(callerFrom(ctx), list, item) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *ShopItemController) Delete(ctx *gin.Context) {
	itemID, ok := pathID(ctx)
	if !ok {
		return
	}
	item, list, ok := c.loadWithList(ctx, itemID)
	if !ok {
		return
	}
	if !services.CanModifyShopItem(callerFrom(ctx), list, item) {
		respondForbidden(ctx, constants.ErrForbidden)
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), itemID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
