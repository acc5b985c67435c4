package services

import (
	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes of the repository interfaces. The SQLExecutor argument is
// ignored; these fakes model the store's observable behavior, including the
// clamped atomic stock adjustment.

type fakeProductRepo struct {
	products map[string]*models.Product
	order    []string // insertion order, newest-last
	// adjustErr, when set for a product id, makes AdjustStock fail.
	adjustErr map[string]error
	// adjustCalls records every (productID, delta) pair.
	adjustCalls []struct {
		ProductID string
		Delta     int
	}
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[string]*models.Product),
		adjustErr: make(map[string]error),
	}
}

func (f *fakeProductRepo) Create(_ repositories.SQLExecutor, p *models.Product) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	f.products[p.ID] = &cp
	f.order = append(f.order, p.ID)
	return p.ID, nil
}

func (f *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.products[f.order[i]])
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ repositories.SQLExecutor, id string, upd models.ProductUpdate) error {
	p, ok := f.products[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.InitialQuantity != nil {
		p.InitialQuantity = *upd.InitialQuantity
	}
	if upd.CurrentQuantity != nil {
		p.CurrentQuantity = *upd.CurrentQuantity
	}
	return nil
}

func (f *fakeProductRepo) AdjustStock(_ repositories.SQLExecutor, id string, delta int) (int, error) {
	f.adjustCalls = append(f.adjustCalls, struct {
		ProductID string
		Delta     int
	}{id, delta})
	if err, ok := f.adjustErr[id]; ok {
		return 0, err
	}
	p, ok := f.products[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	q := p.CurrentQuantity + delta
	if q < 0 {
		q = 0
	}
	if q > p.InitialQuantity {
		q = p.InitialQuantity
	}
	p.CurrentQuantity = q
	return q, nil
}

func (f *fakeProductRepo) Delete(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders []models.Order // insertion order, oldest-first
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) Create(_ repositories.SQLExecutor, o *models.Order) (string, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	f.orders = append(f.orders, *o)
	return o.ID, nil
}

func (f *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) GetByList(listID string) ([]models.Order, error) {
	out := []models.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].ListID == listID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) {
	out := []models.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

func (f *fakeOrderRepo) Delete(_ repositories.SQLExecutor, id string) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeOrderRepo) DeleteByList(_ repositories.SQLExecutor, listID string) (int64, error) {
	kept := f.orders[:0]
	var removed int64
	for _, o := range f.orders {
		if o.ListID == listID {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	f.orders = kept
	return removed, nil
}

type fakeUserRepo struct {
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ repositories.SQLExecutor, u *models.User) (string, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return "", repositories.ErrDuplicateKey
		}
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	f.users[u.ID] = &cp
	return u.ID, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeListRepo struct {
	lists            map[string]*models.List
	order            []string
	updateTotalCalls int
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[string]*models.List)}
}

func (f *fakeListRepo) Create(_ repositories.SQLExecutor, l *models.List) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	f.lists[l.ID] = &cp
	f.order = append(f.order, l.ID)
	return l.ID, nil
}

func (f *fakeListRepo) GetByID(id string) (*models.List, error) {
	l, ok := f.lists[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListRepo) GetAll() ([]models.List, error) {
	out := make([]models.List, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.lists[f.order[i]])
	}
	return out, nil
}

func (f *fakeListRepo) UpdateTotal(_ repositories.SQLExecutor, id string, total float64) error {
	l, ok := f.lists[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.updateTotalCalls++
	l.TotalValue = total
	return nil
}

func (f *fakeListRepo) Delete(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.lists[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.lists, id)
	return nil
}
