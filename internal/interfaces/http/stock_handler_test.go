package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/testutil"
)

func stockPosition(productID string, quantity int64, price string) fiber.Map {
	return fiber.Map{"product": productID, "quantity": quantity, "price": price}
}

func TestStocksCreate(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "acero")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Calle 10 #4-21",
		"positions": []fiber.Map{stockPosition("p1", 5, "1.50")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "stock nuevo devuelve 201")

	var out dto.StockResponse
	decodeJSON(t, resp, &out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Calle 10 #4-21", out.Address)
	require.Len(t, out.Positions, 1)
	assert.Equal(t, "p1", out.Positions[0].Product)
	assert.Equal(t, int64(5), out.Positions[0].Quantity)
}

func TestStocksCreate_IdempotentePorDireccion(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	seedTestProduct(store, "p2", "Tuerca", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 1, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first dto.StockResponse
	decodeJSON(t, resp, &first)

	// misma dirección: 200 con el mismo stock, las posiciones nuevas se agregan
	resp = doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p2", 2, "2.00")},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second dto.StockResponse
	decodeJSON(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Positions, 2)
}

func TestStocksCreate_ErroresDeDominioNombranIds(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	app := newTestApp(store, "")

	// producto inexistente
	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("no-existe", 1, "1.00")},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, resp, &errOut)
	assert.Contains(t, errOut.Error, "no-existe")
	assert.Empty(t, store.Stocks, "nada escrito ante el error")

	// duplicado dentro del mismo payload
	resp = doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 1, "1.00"), stockPosition("p1", 2, "2.00")},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeJSON(t, resp, &errOut)
	assert.Contains(t, errOut.Error, "p1", "el error nombra el producto duplicado")
}

func TestStocksCreate_ValidacionDePosiciones(t *testing.T) {
	app := newTestApp(testutil.NewMemStore(), "")

	// posición sin quantity ni price: error de validación, no 500
	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{{"product": "p1"}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, resp, &errOut)
	assert.Contains(t, errOut.Fields["positions[0].quantity"], "requerido")
	assert.Contains(t, errOut.Fields["positions[0].price"], "requerido")
}

func TestStocksGetByID(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 5, "1.50")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StockResponse
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, http.MethodGet, "/api/stocks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, created.ID, out.ID)
	assert.Len(t, out.Positions, 1, "la lectura trae la lista completa de posiciones")

	resp = doJSON(t, app, http.MethodGet, "/api/stocks/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, resp, &errOut)
	assert.Equal(t, "stock no encontrado", errOut.Error)
}

func TestStocksUpdate(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	seedTestProduct(store, "p2", "Tuerca", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 10, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StockResponse
	decodeJSON(t, resp, &created)

	// PUT: sobreescribe p1 por clave y crea p2; nada se borra
	resp = doJSON(t, app, http.MethodPut, "/api/stocks/"+created.ID, fiber.Map{
		"address":   "Bodega Sur",
		"positions": []fiber.Map{stockPosition("p2", 20, "2.00"), stockPosition("p1", 11, "1.10")},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Bodega Sur", out.Address)
	assert.Len(t, out.Positions, 2)

	resp = doJSON(t, app, http.MethodPut, "/api/stocks/no-existe", fiber.Map{"address": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStocksPatch(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 10, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StockResponse
	decodeJSON(t, resp, &created)

	// solo posiciones: address se conserva
	resp = doJSON(t, app, http.MethodPatch, "/api/stocks/"+created.ID, fiber.Map{
		"positions": []fiber.Map{stockPosition("p1", 99, "9.90")},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "Bodega Norte", out.Address)
	require.Len(t, out.Positions, 1)
	assert.Equal(t, int64(99), out.Positions[0].Quantity)
}

func TestStocksList_Filtros(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Perno galvanizado", "caja x100")
	seedTestProduct(store, "p2", "Cinta", "aislante")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega A",
		"positions": []fiber.Map{stockPosition("p1", 1, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var s1 dto.StockResponse
	decodeJSON(t, resp, &s1)

	resp = doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega B",
		"positions": []fiber.Map{stockPosition("p2", 1, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.StockListResponse

	resp = doJSON(t, app, http.MethodGet, "/api/stocks?products=p1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, s1.ID, out.Items[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/stocks?search=perno", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, s1.ID, out.Items[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/stocks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &out)
	assert.Len(t, out.Items, 2)
}

func TestStocksDelete(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 1, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StockResponse
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, http.MethodDelete, "/api/stocks/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, store.Positions, "las posiciones caen con el stock")

	resp = doJSON(t, app, http.MethodGet, "/api/stocks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/stocks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStocksReport(t *testing.T) {
	store := testutil.NewMemStore()
	seedTestProduct(store, "p1", "Tornillo", "")
	app := newTestApp(store, "")

	resp := doJSON(t, app, http.MethodPost, "/api/stocks", fiber.Map{
		"address":   "Bodega Norte",
		"positions": []fiber.Map{stockPosition("p1", 1, "1.00")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StockResponse
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, http.MethodGet, "/api/stocks/"+created.ID+"/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, body)

	resp = doJSON(t, app, http.MethodGet, "/api/stocks/no-existe/report", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
