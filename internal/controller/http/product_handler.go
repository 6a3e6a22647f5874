package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	orderUseCase   usecase.OrderUseCase
	logger         *logger.Logger
}

func NewProductHandler(productUseCase usecase.ProductUseCase, orderUseCase usecase.OrderUseCase, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase, orderUseCase: orderUseCase, logger: logger}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Stock       int      `json:"stock"`
	Kind        string   `json:"kind" binding:"required,oneof=DIGITAL PHYSICAL"`
	CategoryID  string   `json:"category_id"`
	Images      []string `json:"images"`
}

// CreateProduct godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProductRequest true "Product data"
// @Success      201  {object}  entity.Product
// @Failure      400  {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &entity.Product{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Kind:        entity.ProductKind(req.Kind),
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	}

	created, err := h.productUseCase.Create(product)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUseCase.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        user_id query string false "Filter by seller"
// @Param        category_id query string false "Filter by category"
// @Param        kind query string false "Filter by kind" Enums(DIGITAL, PHYSICAL)
// @Param        q query string false "Search query"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, limit := pageParams(c)

	filter := persistent.ProductListFilter{
		UserID:     c.Query("user_id"),
		CategoryID: c.Query("category_id"),
		Kind:       c.Query("kind"),
		Search:     c.Query("q"),
	}

	products, total, err := h.productUseCase.List(filter, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total, "page": page})
}

// UpdateProduct godoc
// @Summary      Update a product
// @Description  Only the seller can update their products
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Param        request body object true "Fields to update" SchemaExample({"name":"Updated","price":20,"stock":5})
// @Success      200  {object}  entity.Product
// @Failure      403  {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Stock       int      `json:"stock"`
		CategoryID  string   `json:"category_id"`
		Images      []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &entity.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	}

	updated, err := h.productUseCase.Update(userID, product)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.productUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadProductImage godoc
// @Summary      Upload a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /products/image [post]
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	url, err := h.productUseCase.UploadImage(userID, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type PlaceOrderRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Address  string `json:"address"`
}

// PlaceOrder godoc
// @Summary      Order a product
// @Description  Pays from the wallet. Physical products need an address and stock.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Param        request body PlaceOrderRequest true "Order data"
// @Success      201  {object}  entity.Order
// @Failure      402  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /products/{id}/order [post]
func (h *ProductHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.Place(userID, c.Param("id"), req.Quantity, req.Address)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// MyOrders godoc
// @Summary      List own orders
// @Description  role=seller lists sales instead of purchases
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        role query string false "View" Enums(buyer, seller) default(buyer)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /products/orders [get]
func (h *ProductHandler) MyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	var (
		orders []*entity.Order
		total  int64
		err    error
	)
	if c.Query("role") == "seller" {
		orders, total, err = h.orderUseCase.Sales(userID, page, limit)
	} else {
		orders, total, err = h.orderUseCase.Purchases(userID, page, limit)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total, "page": page})
}

// UpdateOrderStatus godoc
// @Summary      Update order status
// @Description  Sellers move orders through SHIPPED, DELIVERED or CANCELED
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Param        request body object true "Status" SchemaExample({"status":"SHIPPED"})
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /products/orders/{id}/status [put]
func (h *ProductHandler) UpdateOrderStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderUseCase.UpdateStatus(userID, c.Param("id"), entity.OrderStatus(req.Status)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
