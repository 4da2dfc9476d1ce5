package mall

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMallRepo struct {
	nextID int64
	malls  map[int64]*Mall
}

func newMemMallRepo() *memMallRepo {
	return &memMallRepo{malls: make(map[int64]*Mall)}
}

func (r *memMallRepo) Create(_ context.Context, m *Mall) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.malls[m.ID] = &cp
	return nil
}

func (r *memMallRepo) GetByID(_ context.Context, id int64) (*Mall, error) {
	m, ok := r.malls[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMallRepo) List(_ context.Context, _ Filter) ([]*Mall, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *memMallRepo) All(_ context.Context) ([]*Mall, error) {
	var out []*Mall
	for id := int64(1); id <= r.nextID; id++ {
		if m, ok := r.malls[id]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMallRepo) Update(_ context.Context, m *Mall) error {
	if _, ok := r.malls[m.ID]; !ok {
		return ErrNotFound
	}
	cp := *m
	r.malls[m.ID] = &cp
	return nil
}

func (r *memMallRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.malls[id]; !ok {
		return ErrNotFound
	}
	delete(r.malls, id)
	return nil
}

func TestMallCreate(t *testing.T) {
	svc := NewService(newMemMallRepo())

	m, err := svc.Create(context.Background(), CreateMallRequest{
		Name:    "  Phoenix Marketcity  ",
		City:    "Bangalore",
		Address: "Whitefield Main Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "Phoenix Marketcity", m.Name)
	assert.NotZero(t, m.ID)

	_, err = svc.Create(context.Background(), CreateMallRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestMallUpdatePartial(t *testing.T) {
	svc := NewService(newMemMallRepo())
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMallRequest{Name: "Orion Mall", City: "Bangalore"})
	require.NoError(t, err)

	city := "Mumbai"
	updated, err := svc.Update(ctx, m.ID, UpdateMallRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "Orion Mall", updated.Name)

	empty := "  "
	_, err = svc.Update(ctx, m.ID, UpdateMallRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Update(ctx, 99, UpdateMallRequest{City: &city})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMallAllOrdered(t *testing.T) {
	svc := NewService(newMemMallRepo())
	ctx := context.Background()

	for _, name := range []string{"Phoenix Marketcity", "Orion Mall", "Forum Shantiniketan"} {
		_, err := svc.Create(ctx, CreateMallRequest{Name: name})
		require.NoError(t, err)
	}

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Phoenix Marketcity", all[0].Name)
	assert.Equal(t, "Forum Shantiniketan", all[2].Name)
}
