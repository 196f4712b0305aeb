package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"auction-storefront/internal/auctionerrors"
	model "auction-storefront/internal/models"
	"auction-storefront/services/market/helpers"
	"auction-storefront/utils"

	"github.com/c2h5oh/datasize"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=market_handler.go -destination=mock_market_handler.go -package=handler

type MarketServiceInterface interface {
	ListProducts() []model.Auction
	GetProduct(id int64) (model.Auction, error)
	ImageURL(id int64) (model.ImageURL, error)
	CloseProduct(id int64) (model.Auction, error)
	PlaceBid(productID int64, email string, price float64) (model.Bid, error)
	ImportProducts(r io.Reader) (model.ImportResult, error)
	ExportProducts() ([]byte, error)
	ExportProduct(id int64) ([]byte, error)
	Login(email, password string) (model.LoginResponse, error)
	Logout(token string) error
	ImportUsers(r io.Reader) (model.UserImportResult, error)
}

type MarketHandler struct {
	service   MarketServiceInterface
	maxUpload datasize.ByteSize
}

func NewMarketHandler(service MarketServiceInterface, maxUpload datasize.ByteSize) *MarketHandler {
	return &MarketHandler{service: service, maxUpload: maxUpload}
}

func productID(c *gin.Context, handlerName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid product id %q", c.Param("id")), "invalid product id")
		utils.Warn(handlerName+": invalid product id", map[string]any{"id": c.Param("id")})
		return 0, false
	}
	return id, true
}

// ListProductsHandler handles GET /products
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	products := h.service.ListProducts()
	if products == nil {
		products = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, products)
	helpers.LogSuccess("ListProductsHandler", "products retrieved successfully", map[string]any{"count": len(products)})
}

// GetProductHandler handles GET /products/:id
func (h *MarketHandler) GetProductHandler(c *gin.Context) {
	id, ok := productID(c, "GetProductHandler")
	if !ok {
		return
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product)
}

// GetImageURLHandler handles GET /products/:id/image-url
func (h *MarketHandler) GetImageURLHandler(c *gin.Context) {
	id, ok := productID(c, "GetImageURLHandler")
	if !ok {
		return
	}
	image, err := h.service.ImageURL(id)
	if err != nil {
		helpers.RespondError(c, "GetImageURLHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, image)
}

// CloseProductHandler handles POST /products/:id/close
func (h *MarketHandler) CloseProductHandler(c *gin.Context) {
	id, ok := productID(c, "CloseProductHandler")
	if !ok {
		return
	}
	product, err := h.service.CloseProduct(id)
	if err != nil {
		helpers.RespondError(c, "CloseProductHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product)
	helpers.LogSuccess("CloseProductHandler", "product closed", map[string]any{"product_id": id})
}

// PlaceBidHandler handles POST /bids for the authenticated user
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	claims, ok := helpers.ClaimsFrom(c)
	if !ok {
		helpers.RespondError(c, "PlaceBidHandler", auctionerrors.ErrUnauthorized, nil)
		return
	}

	bid, err := h.service.PlaceBid(req.ProductID, claims.Identity(), req.Price)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": req.ProductID,
			"email":      claims.Identity(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid)
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"product_id": bid.ProductID,
		"email":      bid.AppUserEmail,
		"price":      bid.Price,
	})
}

// ExportProductsHandler handles GET /products/export
func (h *MarketHandler) ExportProductsHandler(c *gin.Context) {
	data, err := h.service.ExportProducts()
	if err != nil {
		helpers.RespondError(c, "ExportProductsHandler", err, nil)
		return
	}
	writeCSV(c, "products.csv", data)
}

// ExportProductHandler handles GET /products/:id/export
func (h *MarketHandler) ExportProductHandler(c *gin.Context) {
	id, ok := productID(c, "ExportProductHandler")
	if !ok {
		return
	}
	data, err := h.service.ExportProduct(id)
	if err != nil {
		helpers.RespondError(c, "ExportProductHandler", err, map[string]any{"product_id": id})
		return
	}
	writeCSV(c, fmt.Sprintf("product-%d.csv", id), data)
}

func writeCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// openUpload returns the multipart "file" part, writing the error response itself
func (h *MarketHandler) openUpload(c *gin.Context, handlerName string) (multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("%w: %v", auctionerrors.ErrMissingFile, err), auctionerrors.ErrMissingFile.Error())
		utils.Warn(handlerName+": missing upload", map[string]any{"error": err.Error()})
		return nil, false
	}
	if header.Size == 0 {
		utils.JSONError(c, http.StatusBadRequest, auctionerrors.ErrMissingFile, "CSV file is empty")
		return nil, false
	}
	if h.maxUpload > 0 && datasize.ByteSize(header.Size) > h.maxUpload {
		msg := fmt.Sprintf("file exceeds maximum upload size of %s", h.maxUpload.HR())
		utils.JSONError(c, http.StatusRequestEntityTooLarge, auctionerrors.ErrFileTooLarge, msg)
		utils.Warn(handlerName+": upload too large", map[string]any{"size": header.Size})
		return nil, false
	}
	f, err := header.Open()
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return nil, false
	}
	return f, true
}

func respondImportError(c *gin.Context, handlerName string, err error) {
	if !errors.Is(err, auctionerrors.ErrInvalidCSV) {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}
	detail := helpers.Detail(err, "invalid CSV file")
	c.AbortWithStatusJSON(http.StatusBadRequest, helpers.ImportErrorResponse{
		Message: detail,
		Errors:  []string{detail},
	})
	utils.Warn(handlerName+": rejected CSV", map[string]any{"error": err.Error()})
}

// ImportProductsHandler handles POST /products/import
func (h *MarketHandler) ImportProductsHandler(c *gin.Context) {
	f, ok := h.openUpload(c, "ImportProductsHandler")
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.service.ImportProducts(f)
	if err != nil {
		respondImportError(c, "ImportProductsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
	helpers.LogSuccess("ImportProductsHandler", "products imported", map[string]any{
		"processed": result.Processed,
		"created":   result.Created,
		"updated":   result.Updated,
		"failed":    result.Failed,
	})
}

// ImportUsersHandler handles POST /auth/import-users
func (h *MarketHandler) ImportUsersHandler(c *gin.Context) {
	f, ok := h.openUpload(c, "ImportUsersHandler")
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.service.ImportUsers(f)
	if err != nil {
		respondImportError(c, "ImportUsersHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
	helpers.LogSuccess("ImportUsersHandler", "users imported", map[string]any{
		"processed": result.Processed,
		"created":   result.Created,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	})
}

// LoginHandler handles POST /auth/login
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp)
	helpers.LogSuccess("LoginHandler", "user logged in", map[string]any{"email": req.Email})
}

// LogoutHandler handles POST /auth/logout
func (h *MarketHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(helpers.TokenKey)
	if err := h.service.Logout(token); err != nil {
		helpers.RespondError(c, "LogoutHandler", err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
