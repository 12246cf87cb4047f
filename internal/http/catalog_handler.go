package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-compass/internal/catalog"
)

// CatalogHandler expone el catalogo y el banco de preguntas de solo lectura.
type CatalogHandler struct {
	catalog *catalog.Catalog
	bank    *catalog.QuestionBank
}

func NewCatalogHandler(cat *catalog.Catalog, bank *catalog.QuestionBank) *CatalogHandler {
	return &CatalogHandler{catalog: cat, bank: bank}
}

// ListCareers maneja GET /catalog/careers.
func (h *CatalogHandler) ListCareers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"careers": h.catalog.Careers()})
}

// ListQuestions maneja GET /catalog/questions.
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.bank.Questions()})
}
