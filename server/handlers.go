package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/catalog"
)

const rootMessage = "Peptide Sciences Clone API is running"

// createProductForm fields only have to be present; empty text is accepted.
type createProductForm struct {
	Name        *string `form:"name" binding:"required"`
	Price       *string `form:"price" binding:"required"`
	Size        *string `form:"size" binding:"required"`
	Description *string `form:"description" binding:"required"`
}

// loginRequest fields are pointers so an empty password reaches the verifier instead of failing binding.
type loginRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.List())
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if errors.Is(err, strconv.ErrRange) {
		// an integer, just not one any product can have
		abortWithError(c, catalog.ErrProductNotFound)
		return
	}
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := s.store.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) createProduct(c *gin.Context) {
	var form createProductForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithDetail(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	price, err := decimal.NewFromString(*form.Price)
	if err != nil || price.IsNegative() {
		abortWithDetail(c, http.StatusBadRequest, "price must be a non-negative number")
		return
	}

	np := catalog.NewProduct{
		Name:        *form.Name,
		Price:       price,
		Size:        *form.Size,
		Description: *form.Description,
		Category:    optionalForm(c, "category"),
		Purity:      optionalForm(c, "purity"),
		SKU:         optionalForm(c, "sku"),
		CASNumber:   optionalForm(c, "cas_number"),
		Formula:     optionalForm(c, "formula"),
	}

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		abortWithDetail(c, http.StatusBadRequest, "invalid image upload")
		return
	case fh.Filename == "" && fh.Size == 0:
	default:
		f, err := fh.Open()
		if err != nil {
			abortWithError(c, err)
			return
		}
		defer f.Close()

		url, err := s.images.Save(c.Request.Context(), fh.Filename, f)
		if err != nil {
			zap.L().Error("failed to save product image",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("filename", fh.Filename),
				zap.Error(err))
			abortWithError(c, err)
			return
		}
		np.ImageURL = url
	}

	p := s.store.Create(np)
	zap.L().Info("product created",
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Int("id", p.ID),
		zap.String("name", p.Name))
	c.JSON(http.StatusOK, p)
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, bindingDetail(err))
		return
	}

	session, err := s.auth.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// optionalForm distinguishes an omitted field (nil) from one sent empty.
func optionalForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
