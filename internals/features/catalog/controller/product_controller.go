package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/catalog/dto"
	"muaku_backend/internals/features/catalog/model"
	helper "muaku_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// POST /api/products
func (pc *ProductController) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	product := model.ProductModel{
		Name:     req.Name,
		PriceIDR: req.PriceIDR,
		Stock:    req.Stock,
		IsActive: true,
	}
	if req.Category != "" {
		product.Category = req.Category
	} else {
		product.Category = "umum"
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		log.Printf("[ERROR] create product: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan produk")
	}
	return helper.JsonCreated(c, "Produk berhasil ditambahkan", product)
}

// GET /api/products
func (pc *ProductController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := pc.DB.Model(&model.ProductModel{})
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count products: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data produk")
	}

	var products []model.ProductModel
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&products).Error; err != nil {
		log.Printf("[ERROR] list products: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data produk")
	}

	return helper.JsonList(c, "", products, helper.BuildPagination(total, paging))
}

// GET /api/products/:id
func (pc *ProductController) Get(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var product model.ProductModel
	if err := pc.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data produk")
	}
	return helper.JsonOK(c, "", product)
}

// PUT /api/products/:id
func (pc *ProductController) Update(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var product model.ProductModel
	if err := pc.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data produk")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.PriceIDR != nil {
		product.PriceIDR = *req.PriceIDR
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		log.Printf("[ERROR] update product: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}
	return helper.JsonUpdated(c, "Produk berhasil diperbarui", product)
}

// DELETE /api/products/:id
func (pc *ProductController) Delete(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	res := pc.DB.Delete(&model.ProductModel{}, "id = ?", productID)
	if res.Error != nil {
		log.Printf("[ERROR] delete product: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", nil)
}
