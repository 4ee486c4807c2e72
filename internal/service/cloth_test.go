package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/deppfellow/clothes-catalog/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notified []uuid.UUID
	err      error
}

func (n *recordingNotifier) NotifyClothCreated(_ context.Context, c *cloth.Cloth) error {
	n.notified = append(n.notified, c.ID)
	return n.err
}

func intPtr(v int) *int { return &v }

func sampleData(name string, tags ...string) cloth.Data {
	return cloth.Data{
		Name:        name,
		Description: name + " description",
		Price:       19.99,
		Tags:        tags,
		ImageURL:    "https://img.example.com/" + name + ".png",
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
}

func TestListAllRespectsLimit(t *testing.T) {
	store := testutil.NewClothStore()
	store.Seed(
		cloth.Cloth{Data: sampleData("a")},
		cloth.Cloth{Data: sampleData("b")},
		cloth.Cloth{Data: sampleData("c")},
	)
	svc := NewClothService(store, nil, nil)

	all, err := svc.ListAll(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	two, err := svc.ListAll(context.Background(), intPtr(2), nil)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	none, err := svc.ListAll(context.Background(), intPtr(0), nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListAllTagIntersection(t *testing.T) {
	store := testutil.NewClothStore()
	seeded := store.Seed(
		cloth.Cloth{Data: sampleData("shirt", "red", "cotton")},
		cloth.Cloth{Data: sampleData("jeans", "blue")},
	)
	svc := NewClothService(store, nil, nil)

	tests := []struct {
		name string
		tags []string
		want []uuid.UUID
	}{
		{name: "no tags", tags: nil, want: []uuid.UUID{seeded[0].ID, seeded[1].ID}},
		{name: "single tag", tags: []string{"blue"}, want: []uuid.UUID{seeded[1].ID}},
		{name: "all tags match", tags: []string{"red", "cotton"}, want: []uuid.UUID{seeded[0].ID}},
		{name: "disjoint tags", tags: []string{"red", "blue"}, want: []uuid.UUID{}},
		{name: "unknown tag", tags: []string{"wool"}, want: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListAll(context.Background(), nil, tt.tags)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListNewestAndTrending(t *testing.T) {
	store := testutil.NewClothStore()
	seeded := store.Seed(
		cloth.Cloth{TrendingScore: 5, Data: sampleData("old")},
		cloth.Cloth{TrendingScore: 9, Data: sampleData("middle")},
		cloth.Cloth{TrendingScore: 1, Data: sampleData("new")},
	)
	svc := NewClothService(store, nil, nil)

	newest, err := svc.ListNewest(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, newest, 3)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i].CreatedAt.After(newest[i-1].CreatedAt))
	}
	assert.Equal(t, seeded[2].ID, newest[0].ID)

	trending, err := svc.ListTrending(context.Background(), intPtr(2))
	require.NoError(t, err)
	require.Len(t, trending, 2)
	assert.Equal(t, seeded[1].ID, trending[0].ID)
	assert.Equal(t, seeded[0].ID, trending[1].ID)
}

func TestCreateThenGet(t *testing.T) {
	store := testutil.NewClothStore()
	notifier := &recordingNotifier{}
	svc := NewClothService(store, notifier, nil)

	data := sampleData("hoodie", "grey")
	created, err := svc.Create(context.Background(), data)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, data, created.Data)
	assert.Equal(t, []uuid.UUID{created.ID}, notifier.notified)

	got, err := svc.GetByID(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateIgnoresNotifierFailure(t *testing.T) {
	store := testutil.NewClothStore()
	svc := NewClothService(store, &recordingNotifier{err: errors.New("queue unavailable")}, nil)

	created, err := svc.Create(context.Background(), sampleData("cap"))
	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, 1, store.Len())
}

func TestCreateStoreFailure(t *testing.T) {
	store := testutil.NewClothStore()
	store.Err = errors.New("connection refused")
	notifier := &recordingNotifier{}
	svc := NewClothService(store, notifier, nil)

	_, err := svc.Create(context.Background(), sampleData("cap"))
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, notifier.notified)
}

func TestUpdateReplacesWholePayload(t *testing.T) {
	store := testutil.NewClothStore()
	seeded := store.Seed(cloth.Cloth{TrendingScore: 3, Data: sampleData("jacket", "black", "leather")})
	svc := NewClothService(store, nil, nil)

	replacement := cloth.Data{
		Name:        "Rain Jacket",
		Description: "Waterproof",
		Price:       0,
		Tags:        []string{},
		ImageURL:    "https://img.example.com/rain.png",
	}
	require.NoError(t, svc.Update(context.Background(), seeded[0].ID.String(), replacement))

	got, err := svc.GetByID(context.Background(), seeded[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, replacement, got.Data)
	assert.Equal(t, seeded[0].CreatedAt, got.CreatedAt)
	assert.Equal(t, float64(3), got.TrendingScore)
}

func TestMissingIDIsNotFound(t *testing.T) {
	store := testutil.NewClothStore()
	store.Seed(cloth.Cloth{Data: sampleData("belt")})
	svc := NewClothService(store, nil, nil)
	missing := uuid.New().String()

	_, err := svc.GetByID(context.Background(), missing)
	requireStatus(t, err, http.StatusNotFound)

	err = svc.Update(context.Background(), missing, sampleData("belt"))
	requireStatus(t, err, http.StatusNotFound)

	err = svc.Delete(context.Background(), missing)
	requireStatus(t, err, http.StatusNotFound)

	assert.Equal(t, 1, store.Len())
	assert.Zero(t, store.Mutations())
}

func TestMalformedIDIsBadRequest(t *testing.T) {
	store := testutil.NewClothStore()
	svc := NewClothService(store, nil, nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	requireStatus(t, err, http.StatusBadRequest)

	err = svc.Delete(context.Background(), "42")
	requireStatus(t, err, http.StatusBadRequest)

	err = svc.Update(context.Background(), "", sampleData("x"))
	requireStatus(t, err, http.StatusBadRequest)
}

func TestDeleteRemovesCloth(t *testing.T) {
	store := testutil.NewClothStore()
	seeded := store.Seed(cloth.Cloth{Data: sampleData("sock")}, cloth.Cloth{Data: sampleData("shoe")})
	svc := NewClothService(store, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), seeded[0].ID.String()))
	assert.Equal(t, 1, store.Len())

	err := svc.Delete(context.Background(), seeded[0].ID.String())
	requireStatus(t, err, http.StatusNotFound)
}
