package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiendamoderna/tienda/internal/application/catalog"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// AdminHandler serves /api/admin: the bulk product import and its template.
type AdminHandler struct {
	importUC *catalog.ImportProductsUseCase
}

func NewAdminHandler(importUC *catalog.ImportProductsUseCase) *AdminHandler {
	return &AdminHandler{importUC: importUC}
}

// ImportProducts handles POST /api/admin/productos/importar (admin). Expects
// a multipart upload with the workbook under the "archivo" field.
func (h *AdminHandler) ImportProducts(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "debe adjuntar un archivo xlsx en el campo 'archivo'"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "no se pudo leer el archivo"))
		return
	}
	defer f.Close()

	result, err := h.importUC.Execute(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DownloadTemplate handles GET /api/admin/productos/plantilla. Anonymous by
// design so the back office can link it directly.
func (h *AdminHandler) DownloadTemplate(c *gin.Context) {
	buf, err := catalog.BuildImportTemplate()
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("plantilla-productos-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
