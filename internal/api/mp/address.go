package mp

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *service.AddressService
}

func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService}
}

type addressInput struct {
	UserID        int     `json:"user_id"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Province      *string `json:"province"`
	City          *string `json:"city"`
	District      *string `json:"district"`
	AddressDetail *string `json:"address_detail"`
	Tag           *string `json:"tag"`
	IsDefault     int     `json:"is_default"`
}

func (in addressInput) toModel() *model.AddressInput {
	return &model.AddressInput{
		Name:          in.Name,
		Phone:         in.Phone,
		Province:      in.Province,
		City:          in.City,
		District:      in.District,
		AddressDetail: in.AddressDetail,
		Tag:           in.Tag,
		IsDefault:     in.IsDefault,
	}
}

// GetAddresses 当前用户的地址列表，默认地址排最前
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	items, err := h.addressService.ListUserAddresses(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateAddress 新建地址，设为默认时会清掉该用户的其它默认标记
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	userID, ok := resolveUserID(c, input.UserID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	id, err := h.addressService.CreateAddress(userID, input.toModel())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      id,
	})
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的地址ID"))
		return
	}

	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	userID, ok := resolveUserID(c, input.UserID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	if err := h.addressService.UpdateAddress(id, userID, input.toModel()); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的地址ID"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	if err := h.addressService.DeleteAddress(id, userID); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
