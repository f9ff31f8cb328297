package controllers

import (
	"net/http"

	"gin-shoplist/services"

	"github.com/gin-gonic/gin"
)

type IShopperController interface {
	GetShopper(ctx *gin.Context)
}

type ShopperController struct {
	service services.IShopperService
}

func NewShopperController(service services.IShopperService) IShopperController {
	return &ShopperController{service: service}
}

// GetShopper: 匿名の場合は公開リストのみ
func (c *ShopperController) GetShopper(ctx *gin.Context) {
	shopper, err := c.service.GetShopper(ctx.Request.Context(), callerFrom(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, shopper)
}
