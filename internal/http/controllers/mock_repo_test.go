package controllers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// mockRepo records every call so tests can verify how often the controller
// reached the repository.
type mockRepo struct {
	stored map[int]models.Product
	all    []models.Product

	getAllErr error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	getAllCalls  int
	getByIDCalls []int
	created      []models.Product
	updated      []models.Product
	deleted      []models.Product
}

func newMockRepo(products ...models.Product) *mockRepo {
	m := &mockRepo{stored: map[int]models.Product{}}
	for _, p := range products {
		m.stored[p.ID] = p
	}
	m.all = products
	return m
}

func (m *mockRepo) GetAll(_ context.Context) ([]models.Product, error) {
	m.getAllCalls++
	return m.all, m.getAllErr
}

func (m *mockRepo) GetByID(_ context.Context, id int) (models.Product, error) {
	m.getByIDCalls = append(m.getByIDCalls, id)
	if m.getErr != nil {
		return models.Product{}, m.getErr
	}
	p, ok := m.stored[id]
	if !ok {
		return models.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) Create(_ context.Context, p models.Product) (models.Product, error) {
	m.created = append(m.created, p)
	if m.createErr != nil {
		return models.Product{}, m.createErr
	}
	if p.ID == 0 {
		p.ID = len(m.stored) + 1
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p models.Product) error {
	m.updated = append(m.updated, p)
	return m.updateErr
}

func (m *mockRepo) Delete(_ context.Context, p models.Product) error {
	m.deleted = append(m.deleted, p)
	return m.deleteErr
}

var _ repo.ProductRepository = (*mockRepo)(nil)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Kalem", Price: decimal.NewFromInt(100), Stock: 50, Color: "Kırmızı"},
		{ID: 2, Name: "Defter", Price: decimal.NewFromInt(200), Stock: 500, Color: "Mavi"},
	}
}

func intPtr(v int) *int {
	return &v
}
