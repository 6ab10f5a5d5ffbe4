package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"gamestore/src/app/http/dto"
	"gamestore/src/app/http/request"
	"gamestore/src/app/http/response"
	"gamestore/src/app/middleware"
	"gamestore/src/core/usecase"
)

// CouponHandler serves /api/coupons. Bodies are wrapped in {"data": ...}.
type CouponHandler struct {
	coupons *usecase.CouponService
}

func NewCouponHandler(coupons *usecase.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

func (h *CouponHandler) List(c *gin.Context) {
	list, err := h.coupons.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.CouponsFromDomain(list))
}

func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	coupon, err := h.coupons.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.CouponFromDomain(*coupon))
}

func (h *CouponHandler) GetByCode(c *gin.Context) {
	coupon, err := h.coupons.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.CouponFromDomain(*coupon))
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CouponRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	created, err := h.coupons.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, fmt.Sprintf("/api/coupons/%d", created.ID), response.Success{Data: dto.CouponFromDomain(*created)})
}

func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CouponRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	updated, err := h.coupons.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.CouponFromDomain(*updated))
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.coupons.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
