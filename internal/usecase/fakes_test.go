package usecase

import (
	"context"
	"io"
	"sort"
	"sync"

	"avrstore/internal/domain/catalog"
	"avrstore/internal/domain/entity"
	"avrstore/pkg/errors"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	// page is returned by Query; queryErrs are consumed one per call first.
	page      []*entity.Product
	queryErrs []error
	plans     []catalog.Plan
	stockErr  error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Query(ctx context.Context, plan catalog.Plan, cursor string, limit int) ([]*entity.Product, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans = append(r.plans, plan)
	if len(r.queryErrs) > 0 {
		err := r.queryErrs[0]
		r.queryErrs = r.queryErrs[1:]
		if err != nil {
			return nil, "", err
		}
	}

	items := r.page
	if len(items) > limit {
		items = items[:limit]
	}
	next := ""
	if len(items) > 0 {
		next = items[len(items)-1].ID
	}
	return items, next, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = "p-" + product.Name
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stockErr != nil {
		return r.stockErr
	}
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Stock += delta
	return nil
}

func (r *fakeProductRepo) AttachImage(ctx context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Images = append(p.Images, url)
	return nil
}

type fakeCartRepo struct {
	mu        sync.Mutex
	carts     map[string]*entity.Cart
	mutateErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*entity.Cart{}}
}

func cloneCart(c *entity.Cart) *entity.Cart {
	cp := *c
	cp.Items = append([]entity.CartItem(nil), c.Items...)
	return &cp
}

func (r *fakeCartRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return nil, errors.NotFound("Cart", nil)
	}
	return cloneCart(c), nil
}

func (r *fakeCartRepo) Mutate(ctx context.Context, userID string, fn func(cart *entity.Cart) error) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mutateErr != nil {
		return nil, r.mutateErr
	}

	cart := entity.NewCart(userID)
	if stored, ok := r.carts[userID]; ok {
		cart = cloneCart(stored)
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	cart.Recalculate()
	cart.Version++
	r.carts[userID] = cloneCart(cart)
	return cart, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Mutate(ctx context.Context, id string, fn func(order *entity.Order) error) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *o
	if err := fn(&cp); err != nil {
		return nil, err
	}
	stored := cp
	r.orders[id] = &stored
	return &cp, nil
}

type fakeOrderItemRepo struct {
	items []entity.OrderItem
	err   error
}

func (r *fakeOrderItemRepo) CreateAll(ctx context.Context, items []entity.OrderItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeOrderItemRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	cp := *payment
	r.payments[payment.OrderID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	p, ok := r.payments[orderID]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	cp := *payment
	r.payments[payment.OrderID] = &cp
	return nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID && len(out) < limit {
			out = append(out, rv)
		}
	}
	return out, nil
}

// fakeDocRepo counts writes so tests can assert nothing reached the store.
type fakeDocRepo[T any] struct {
	docs   map[string]*T
	idOf   func(*T) string
	writes int
	fields map[string]map[string]interface{}
}

func newFakeDocRepo[T any](idOf func(*T) string) *fakeDocRepo[T] {
	return &fakeDocRepo[T]{
		docs:   map[string]*T{},
		idOf:   idOf,
		fields: map[string]map[string]interface{}{},
	}
}

func (r *fakeDocRepo[T]) Create(ctx context.Context, doc *T) error {
	r.writes++
	cp := *doc
	r.docs[r.idOf(doc)] = &cp
	return nil
}

func (r *fakeDocRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Document", nil)
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocRepo[T]) List(ctx context.Context) ([]*T, error) {
	out := make([]*T, 0, len(r.docs))
	for _, d := range r.docs {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDocRepo[T]) Update(ctx context.Context, doc *T) error {
	r.writes++
	cp := *doc
	r.docs[r.idOf(doc)] = &cp
	return nil
}

func (r *fakeDocRepo[T]) Delete(ctx context.Context, id string) error {
	r.writes++
	delete(r.docs, id)
	return nil
}

func (r *fakeDocRepo[T]) SetField(ctx context.Context, id, field string, value interface{}) error {
	if _, ok := r.docs[id]; !ok {
		return errors.NotFound("Document", nil)
	}
	r.writes++
	if r.fields[id] == nil {
		r.fields[id] = map[string]interface{}{}
	}
	r.fields[id][field] = value
	return nil
}

type fakeStorage struct {
	uploaded map[string]string
	deleted  []string
	err      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: map[string]string{}}
}

func (s *fakeStorage) Upload(ctx context.Context, file io.Reader, objectPath, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.uploaded[objectPath] = string(data)
	return "https://storage.googleapis.com/test-bucket/" + objectPath, nil
}

func (s *fakeStorage) Delete(ctx context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []entity.OrderStatus
}

func (n *fakeNotifier) NotifyOrderStatus(userID string, order *entity.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, order.Status)
}
