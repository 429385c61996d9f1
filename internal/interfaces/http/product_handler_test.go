package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/testutil"
)

func TestProductsBulkCreate(t *testing.T) {
	store := testutil.NewMemStore()
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"products": []fiber.Map{
			{"title": "Tornillo", "description": "acero"},
			{"title": "Tuerca"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.BulkCreateProductsResponse
	decodeJSON(t, resp, &out)
	require.Len(t, out.Products, 2)
	assert.NotEmpty(t, out.Products[0].ID)
	assert.Equal(t, "Tornillo", out.Products[0].Title)
	assert.Len(t, store.Products, 2)
}

func TestProductsBulkCreate_EntradaInvalidaRechazaElBatch(t *testing.T) {
	store := testutil.NewMemStore()
	app := newTestApp(store, "")

	// una entrada inválida de tres: 400 con detail por entrada y nada creado
	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"products": []fiber.Map{
			{"title": "Tornillo"},
			{"description": "sin título"},
			{"title": "Tuerca"},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "validación fallida", out.Error)
	require.Len(t, out.Detail, 3)
	assert.Empty(t, out.Detail[0])
	assert.Contains(t, out.Detail[1]["title"], "requerido")
	assert.Empty(t, out.Detail[2])

	assert.Empty(t, store.Products, "el batch inválido no crea nada")
}

func TestProductsBulkCreate_BatchVacio(t *testing.T) {
	app := newTestApp(testutil.NewMemStore(), "")

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"products": []fiber.Map{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductsList(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "a1", "Tornillo", "acero")
	seedTestProduct(store, "b2", "Tuerca", "zincada")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodGet, "/api/products?search=torn", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	decodeJSON(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tornillo", out.Items[0].Title)

	resp = doJSON(t, app, http.MethodGet, "/api/products?ordering=-id", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "b2", out.Items[0].ID)
}

func TestProductsGetByID(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "a1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodGet, "/api/products/a1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Tornillo", out.Title)

	resp = doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, resp, &errOut)
	assert.Equal(t, "producto no encontrado", errOut.Error)
}

func TestProductsUpdate(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "a1", "Tornillo", "acero")
	app := newTestApp(store, "")

	// PUT reemplaza: la descripción omitida queda vacía
	resp := doJSON(t, app, http.MethodPut, "/api/products/a1", fiber.Map{"title": "Perno"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ProductResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Perno", out.Title)
	assert.Equal(t, "", out.Description)

	// title faltante es error de validación
	resp = doJSON(t, app, http.MethodPut, "/api/products/a1", fiber.Map{"description": "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, resp, &errOut)
	assert.Contains(t, errOut.Fields["title"], "requerido")

	resp = doJSON(t, app, http.MethodPut, "/api/products/no-existe", fiber.Map{"title": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductsPatch(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "a1", "Tornillo", "acero")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPatch, "/api/products/a1", fiber.Map{"title": "Perno"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ProductResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Perno", out.Title)
	assert.Equal(t, "acero", out.Description, "campo omitido se conserva")
}

func TestProductsDelete(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "a1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodDelete, "/api/products/a1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/a1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/a1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
