package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tiendamoderna/tienda/internal/domain/brand"
	"github.com/tiendamoderna/tienda/internal/domain/category"
	"github.com/tiendamoderna/tienda/internal/domain/product"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Spreadsheet column layout, in order.
var importColumns = []string{
	"SKU", "Nombre", "Descripción", "PrecioBase", "PorcentajeDescuento",
	"Stock", "Categoría", "Marca", "Destacado",
}

// RowError describes one failed spreadsheet row. The rest of the file is
// still processed.
type RowError struct {
	Row     int    `json:"fila"`
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
	Value   string `json:"valor"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Processed int        `json:"procesadas"`
	Created   int        `json:"creadas"`
	Updated   int        `json:"actualizadas"`
	Errors    []RowError `json:"errores"`
}

// ImportProductsUseCase loads products in bulk from an .xlsx workbook.
// Unknown category and brand names are created on the fly; rows whose SKU
// already exists update that product instead of failing.
type ImportProductsUseCase struct {
	productRepo  product.Repository
	categoryRepo category.Repository
	brandRepo    brand.Repository
}

func NewImportProductsUseCase(
	productRepo product.Repository,
	categoryRepo category.Repository,
	brandRepo brand.Repository,
) *ImportProductsUseCase {
	return &ImportProductsUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

// Execute reads the workbook's first sheet, skipping the header row.
// Failures are collected per row; only an unreadable file aborts the whole
// import.
func (uc *ImportProductsUseCase) Execute(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "el archivo no es un libro xlsx válido")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.Wrap(err, "no se pudo leer la hoja de cálculo")
	}

	result := &ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1
		result.Processed++

		if rowErr := uc.importRow(ctx, rowNum, row, result); rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
		}
	}
	return result, nil
}

func (uc *ImportProductsUseCase) importRow(ctx context.Context, rowNum int, row []string, result *ImportResult) *RowError {
	sku := strings.TrimSpace(cell(row, 0))
	if sku == "" {
		return &RowError{Row: rowNum, Field: "SKU", Message: "el SKU es obligatorio"}
	}
	name := strings.TrimSpace(cell(row, 1))
	if name == "" {
		return &RowError{Row: rowNum, Field: "Nombre", Message: "el nombre es obligatorio", Value: sku}
	}
	description := strings.TrimSpace(cell(row, 2))

	basePrice, err := parseAmount(cell(row, 3))
	if err != nil {
		return &RowError{Row: rowNum, Field: "PrecioBase", Message: "precio inválido", Value: cell(row, 3)}
	}
	discount, err := parseOptionalFloat(cell(row, 4))
	if err != nil || discount < 0 || discount > 100 {
		return &RowError{Row: rowNum, Field: "PorcentajeDescuento", Message: "descuento inválido", Value: cell(row, 4)}
	}
	stock, err := strconv.Atoi(strings.TrimSpace(cell(row, 5)))
	if err != nil || stock < 0 {
		return &RowError{Row: rowNum, Field: "Stock", Message: "stock inválido", Value: cell(row, 5)}
	}

	categoryName := strings.TrimSpace(cell(row, 6))
	if categoryName == "" {
		return &RowError{Row: rowNum, Field: "Categoría", Message: "la categoría es obligatoria", Value: sku}
	}
	cat, err := uc.resolveCategory(ctx, categoryName)
	if err != nil {
		return &RowError{Row: rowNum, Field: "Categoría", Message: err.Error(), Value: categoryName}
	}

	var brandID *uint
	if brandName := strings.TrimSpace(cell(row, 7)); brandName != "" {
		b, err := uc.resolveBrand(ctx, brandName)
		if err != nil {
			return &RowError{Row: rowNum, Field: "Marca", Message: err.Error(), Value: brandName}
		}
		brandID = &b.ID
	}

	featured := parseYesNo(cell(row, 8))

	existing, err := uc.productRepo.FindBySKU(ctx, sku)
	switch {
	case err == nil:
		existing.Name = name
		existing.Description = description
		existing.BasePrice = basePrice
		existing.DiscountPercent = discount
		existing.Stock = stock
		existing.Featured = featured
		existing.CategoryID = cat.ID
		existing.BrandID = brandID
		existing.UpdatedAt = time.Now()
		if err := uc.productRepo.Update(ctx, existing); err != nil {
			return &RowError{Row: rowNum, Field: "SKU", Message: err.Error(), Value: sku}
		}
		result.Updated++
	case errors.Is(err, product.ErrNotFound):
		p := product.NewProduct(sku, name, description, basePrice, discount, stock, cat.ID, brandID)
		p.Featured = featured
		if err := uc.productRepo.Create(ctx, p); err != nil {
			return &RowError{Row: rowNum, Field: "SKU", Message: err.Error(), Value: sku}
		}
		result.Created++
	default:
		return &RowError{Row: rowNum, Field: "SKU", Message: err.Error(), Value: sku}
	}
	return nil
}

func (uc *ImportProductsUseCase) resolveCategory(ctx context.Context, name string) (*category.Category, error) {
	c, err := uc.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, category.ErrNotFound) {
		return nil, err
	}
	c = category.NewCategory(name, Slugify(name), nil)
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ImportProductsUseCase) resolveBrand(ctx context.Context, name string) (*brand.Brand, error) {
	b, err := uc.brandRepo.FindByName(ctx, name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, brand.ErrNotFound) {
		return nil, err
	}
	b = brand.NewBrand(name)
	if err := uc.brandRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// parseAmount reads a monetary cell into minor units as stored.
func parseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("vacío")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("no numérico")
	}
	return int64(math.Round(v)), nil
}

func parseOptionalFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "si", "sí", "yes", "true", "1":
		return true
	}
	return false
}
