package admin

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AddressHandler 用户地址管理
type AddressHandler struct {
	addressService *service.AddressService
}

func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService}
}

func (h *AddressHandler) GetAddresses(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.AddressQuery{
		Search:    c.Query("search"),
		Tag:       c.Query("tag"),
		Province:  c.Query("province"),
		IsDefault: c.Query("is_default"),
		Page:      p.Page,
		PerPage:   p.PerPage,
	}

	items, total, stats, err := h.addressService.AdminListAddresses(q)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"items":    items,
		"stats":    stats,
	})
}
