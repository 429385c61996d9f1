// Package testutil provee repositorios en memoria y un TxRunner con
// snapshot/rollback para probar casos de uso y handlers sin PostgreSQL.
package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// MemStore estado compartido de los repositorios en memoria.
// Los slices conservan el orden de inserción (equivalente a created_at ASC).
type MemStore struct {
	Products  []*entity.Product
	Stocks    []*entity.Stock
	Positions []*entity.StockProduct
}

// NewMemStore crea un store vacío.
func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Clone() *MemStore {
	c := &MemStore{}
	for _, p := range s.Products {
		cp := *p
		c.Products = append(c.Products, &cp)
	}
	for _, st := range s.Stocks {
		cs := *st
		c.Stocks = append(c.Stocks, &cs)
	}
	for _, sp := range s.Positions {
		csp := *sp
		c.Positions = append(c.Positions, &csp)
	}
	return c
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

// ── ProductRepo ───────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct{ Store *MemStore }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(product *entity.Product) error {
	cp := *product
	r.Store.Products = append(r.Store.Products, &cp)
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.Store.Products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	for i, p := range r.Store.Products {
		if p.ID == product.ID {
			cp := *product
			r.Store.Products[i] = &cp
		}
	}
	return nil
}

func (r *ProductRepo) List(search, ordering string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	q := strings.ToLower(search)
	for _, p := range r.Store.Products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if ordering == "-id" {
			return list[i].ID > list[j].ID
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, limit, offset), nil
}

func (r *ProductRepo) Delete(id string) error {
	out := r.Store.Products[:0]
	for _, p := range r.Store.Products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.Store.Products = out
	// cascada como en el esquema
	pos := r.Store.Positions[:0]
	for _, sp := range r.Store.Positions {
		if sp.ProductID != id {
			pos = append(pos, sp)
		}
	}
	r.Store.Positions = pos
	return nil
}

// ── StockRepo ─────────────────────────────────────────────────────────────────

// StockRepo implementación en memoria de repository.StockRepository.
type StockRepo struct{ Store *MemStore }

var _ repository.StockRepository = (*StockRepo)(nil)

func (r *StockRepo) Create(stock *entity.Stock) error {
	cs := *stock
	r.Store.Stocks = append(r.Store.Stocks, &cs)
	return nil
}

func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	for _, s := range r.Store.Stocks {
		if s.ID == id {
			cs := *s
			return &cs, nil
		}
	}
	return nil, nil
}

func (r *StockRepo) GetByAddress(address string) (*entity.Stock, error) {
	// orden de inserción = más antiguo primero
	for _, s := range r.Store.Stocks {
		if s.Address == address {
			cs := *s
			return &cs, nil
		}
	}
	return nil, nil
}

func (r *StockRepo) Update(stock *entity.Stock) error {
	for i, s := range r.Store.Stocks {
		if s.ID == stock.ID {
			cs := *stock
			r.Store.Stocks[i] = &cs
		}
	}
	return nil
}

func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.Store.Stocks {
		cs := *s
		list = append(list, &cs)
	}
	return paginate(list, limit, offset), nil
}

func (r *StockRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.Store.Stocks {
		for _, sp := range r.Store.Positions {
			if sp.StockID == s.ID && sp.ProductID == productID {
				cs := *s
				list = append(list, &cs)
				break
			}
		}
	}
	return paginate(list, limit, offset), nil
}

func (r *StockRepo) SearchByPositionText(text string, limit, offset int) ([]*entity.Stock, error) {
	q := strings.ToLower(text)
	var list []*entity.Stock
	for _, s := range r.Store.Stocks {
		match := false
		for _, sp := range r.Store.Positions {
			if sp.StockID != s.ID {
				continue
			}
			for _, p := range r.Store.Products {
				if p.ID == sp.ProductID &&
					(strings.Contains(strings.ToLower(p.Title), q) ||
						strings.Contains(strings.ToLower(p.Description), q)) {
					match = true
				}
			}
		}
		if match {
			cs := *s
			list = append(list, &cs)
		}
	}
	return paginate(list, limit, offset), nil
}

func (r *StockRepo) Delete(id string) error {
	out := r.Store.Stocks[:0]
	for _, s := range r.Store.Stocks {
		if s.ID != id {
			out = append(out, s)
		}
	}
	r.Store.Stocks = out
	// cascada como en el esquema
	pos := r.Store.Positions[:0]
	for _, sp := range r.Store.Positions {
		if sp.StockID != id {
			pos = append(pos, sp)
		}
	}
	r.Store.Positions = pos
	return nil
}

// ── StockProductRepo ──────────────────────────────────────────────────────────

// StockProductRepo implementación en memoria de repository.StockProductRepository.
type StockProductRepo struct{ Store *MemStore }

var _ repository.StockProductRepository = (*StockProductRepo)(nil)

func (r *StockProductRepo) GetByStockAndProduct(stockID, productID string) (*entity.StockProduct, error) {
	for _, sp := range r.Store.Positions {
		if sp.StockID == stockID && sp.ProductID == productID {
			csp := *sp
			return &csp, nil
		}
	}
	return nil, nil
}

func (r *StockProductRepo) ListByStock(stockID string) ([]*entity.StockProduct, error) {
	var list []*entity.StockProduct
	for _, sp := range r.Store.Positions {
		if sp.StockID == stockID {
			csp := *sp
			list = append(list, &csp)
		}
	}
	return list, nil
}

func (r *StockProductRepo) Create(position *entity.StockProduct) error {
	cp := *position
	r.Store.Positions = append(r.Store.Positions, &cp)
	return nil
}

func (r *StockProductRepo) Update(position *entity.StockProduct) error {
	for i, sp := range r.Store.Positions {
		if sp.ID == position.ID {
			cp := *position
			r.Store.Positions[i] = &cp
		}
	}
	return nil
}

func (r *StockProductRepo) DeleteByStock(stockID string) error {
	out := r.Store.Positions[:0]
	for _, sp := range r.Store.Positions {
		if sp.StockID != stockID {
			out = append(out, sp)
		}
	}
	r.Store.Positions = out
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner implementa usecase.TxRunner sobre el store en memoria: toma un
// snapshot antes de ejecutar fn y lo restaura si fn falla (rollback).
type TxRunner struct{ Store *MemStore }

var _ usecase.TxRunner = (*TxRunner)(nil)

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	positionRepo repository.StockProductRepository,
) error) error {
	snapshot := r.Store.Clone()
	err := fn(
		&ProductRepo{Store: r.Store},
		&StockRepo{Store: r.Store},
		&StockProductRepo{Store: r.Store},
	)
	if err != nil {
		*r.Store = *snapshot
		return err
	}
	return nil
}
