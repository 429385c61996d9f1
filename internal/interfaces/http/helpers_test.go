package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	httpiface "github.com/jhoicas/logistica-api/internal/interfaces/http"
	"github.com/jhoicas/logistica-api/internal/testutil"
)

// stubReportGenerator evita generar un PDF real en los tests de handlers.
type stubReportGenerator struct{}

func (stubReportGenerator) GenerateStockReport(_ context.Context, _ *entity.Stock, _ []usecase.StockReportRow) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// newTestApp monta la API completa sobre los repositorios en memoria.
// Con jwtSecret vacío el middleware de auth deja pasar todo.
func newTestApp(store *testutil.MemStore, jwtSecret string) *fiber.App {
	productRepo := &testutil.ProductRepo{Store: store}
	stockRepo := &testutil.StockRepo{Store: store}
	positionRepo := &testutil.StockProductRepo{Store: store}
	txRunner := &testutil.TxRunner{Store: store}

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(productRepo, txRunner),
		StockUC:       usecase.NewStockUseCase(stockRepo, positionRepo, txRunner),
		StockReportUC: usecase.NewStockReportUseCase(stockRepo, positionRepo, productRepo, stubReportGenerator{}),
		JWTSecret:     jwtSecret,
	})
	return app
}

func seedTestProduct(store *testutil.MemStore, id, title, description string) {
	now := time.Now()
	store.Products = append(store.Products, &entity.Product{
		ID: id, Title: title, Description: description, CreatedAt: now, UpdatedAt: now,
	})
}

// doJSON ejecuta una petición con cuerpo JSON (o sin cuerpo si body es nil).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el cuerpo de la respuesta en out.
func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
