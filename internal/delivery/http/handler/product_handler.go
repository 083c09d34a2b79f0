package handler

import (
	"net/http"

	"github.com/craveo/marketplace-service/internal/usecase/catalog"
	productdto "github.com/craveo/marketplace-service/internal/usecase/dto/product"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products catalog.CatalogUsecase
}

func NewProductHandler(products catalog.CatalogUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductBody struct {
	SupplierID  string  `json:"supplier_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	ImagePath   string  `json:"image_path"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var body createProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.products.CreateProduct(c.Request.Context(), &productdto.CreateProductInput{
		SupplierID:  body.SupplierID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImagePath:   body.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

type updateProductBody struct {
	SupplierID  string   `json:"supplier_id" binding:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImagePath   *string  `json:"image_path"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	var body updateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.products.UpdateProduct(c.Request.Context(), c.Param("id"), body.SupplierID, &productdto.UpdateProductInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImagePath:   body.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	supplierID := c.Query("supplier_id")
	if supplierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id is required"})
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("id"), supplierID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	found, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": found})
}

func (h *ProductHandler) ListBySupplier(c *gin.Context) {
	products, err := h.products.ListBySupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.products.CategoriesOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
