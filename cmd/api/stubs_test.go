package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	ord "github.com/mardiana36/anemone-outlet-system/internal/order"
	prod "github.com/mardiana36/anemone-outlet-system/internal/product"
	usr "github.com/mardiana36/anemone-outlet-system/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUBS & FAKES ----------
//

// stubUserRepo implements usr.Repository in memory.
type stubUserRepo struct {
	users map[string]*usr.User // by id
}

func newStubUserRepo(users ...*usr.User) *stubUserRepo {
	s := &stubUserRepo{users: make(map[string]*usr.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserRepo) Create(ctx context.Context, u *usr.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*usr.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, usr.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*usr.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, usr.ErrNotFound
}

// stubProductRepo implements prod.Repository in memory.
type stubProductRepo struct {
	items map[string]*prod.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{items: make(map[string]*prod.Product)}
}

func (s *stubProductRepo) Create(ctx context.Context, p *prod.Product) error {
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*prod.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, prod.ErrNotFound
	}
	return p, nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]prod.Product, error) {
	out := make([]prod.Product, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// stubOrderRepo implements ord.Repository in memory. Orders are kept in
// insertion order and listed newest first.
type stubOrderRepo struct {
	orders []ord.Order
}

func (s *stubOrderRepo) newestFirst(filter func(ord.Order) bool) []ord.Order {
	var out []ord.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if filter(s.orders[i]) {
			out = append(out, s.orders[i])
		}
	}
	return out
}

func (s *stubOrderRepo) ListAll(ctx context.Context) ([]ord.Order, error) {
	return s.newestFirst(func(ord.Order) bool { return true }), nil
}

func (s *stubOrderRepo) ListByOutlet(ctx context.Context, outletID string) ([]ord.Order, error) {
	return s.newestFirst(func(o ord.Order) bool { return o.OutletID == outletID }), nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*ord.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, ord.ErrNotFound
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id, status string) (*ord.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, ord.ErrNotFound
}

func (s *stubOrderRepo) Summary(ctx context.Context) (*ord.Summary, error) {
	sum := &ord.Summary{StatusSummary: map[string]int64{
		ord.StatusPending: 0, ord.StatusPaid: 0, ord.StatusShipped: 0,
	}}
	for _, o := range s.orders {
		sum.TotalOrders++
		if v, err := strconv.ParseFloat(o.TotalPrice, 64); err == nil {
			sum.TotalSales += v
		}
		sum.StatusSummary[o.Status]++
	}
	return sum, nil
}

// fakeStore backs the placement engine in handler tests. Handler tests only
// exercise it sequentially; real locking behavior is covered by the engine's
// own tests.
type fakeStore struct {
	products map[string]*ord.ReservedProduct
	orders   []ord.Order
	items    []ord.Item
}

func newFakeStore(products ...ord.ReservedProduct) *fakeStore {
	s := &fakeStore{products: make(map[string]*ord.ReservedProduct)}
	for i := range products {
		cp := products[i]
		s.products[cp.ID] = &cp
	}
	return s
}

func (s *fakeStore) Begin(ctx context.Context) (ord.Tx, error) {
	return &fakeTx{s: s}, nil
}

type fakeTx struct {
	s            *fakeStore
	undo         []func()
	pendingOrder *ord.Order
	pendingItems []ord.Item
}

func (t *fakeTx) ReserveProduct(ctx context.Context, productID string) (*ord.ReservedProduct, error) {
	p, ok := t.s.products[productID]
	if !ok {
		return nil, &ord.ProductNotFoundError{ProductID: productID}
	}
	cp := *p
	return &cp, nil
}

func (t *fakeTx) DecrementStock(ctx context.Context, productID string, quantity int) error {
	p, ok := t.s.products[productID]
	if !ok {
		return fmt.Errorf("no such product %s", productID)
	}
	p.Stock -= quantity
	t.undo = append(t.undo, func() { p.Stock += quantity })
	return nil
}

func (t *fakeTx) InsertOrder(ctx context.Context, o *ord.Order) error {
	cp := *o
	t.pendingOrder = &cp
	return nil
}

func (t *fakeTx) InsertItems(ctx context.Context, items []ord.Item) error {
	t.pendingItems = append([]ord.Item(nil), items...)
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.pendingOrder != nil {
		t.s.orders = append(t.s.orders, *t.pendingOrder)
	}
	t.s.items = append(t.s.items, t.pendingItems...)
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

//
// ---------- helpers ----------
//

type testEnv struct {
	router   *gin.Engine
	store    *auth.MemoryStore
	users    *stubUserRepo
	products *stubProductRepo
	orders   *stubOrderRepo
	ledger   *fakeStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    auth.NewMemoryStore(time.Hour),
		users:    newStubUserRepo(),
		products: newStubProductRepo(),
		orders:   &stubOrderRepo{},
		ledger:   newFakeStore(),
	}
	env.router = newRouter(routerDeps{
		store:    env.store,
		users:    env.users,
		products: env.products,
		orders:   env.orders,
		engine:   ord.NewEngine(env.ledger),
	})
	return env
}

func (e *testEnv) token(t *testing.T, id auth.Identity) string {
	t.Helper()
	if id.UserID == "" {
		id.UserID = uuid.NewString()
	}
	tok, err := e.store.Issue(context.Background(), id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}
