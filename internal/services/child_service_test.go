package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildService_CRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewChildService(db)
	ctx := context.Background()
	alice := registerRep(t, db, "alice@x.com", "secret1")

	child, err := svc.Create(ctx, alice.ID, &dto.ChildRequest{FullName: "Luz", BirthDate: "2019-09-09", Country: "Colombia"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, child.RepresentativeID)

	list, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := svc.Update(ctx, alice.ID, child.ID, &dto.ChildRequest{FullName: "Luz María", BirthDate: "2019-09-10", Country: "Colombia"})
	require.NoError(t, err)
	assert.Equal(t, "Luz María", updated.FullName)
	assert.Equal(t, "2019-09-10", dto.FormatDate(updated.BirthDate))

	require.NoError(t, svc.Delete(ctx, alice.ID, child.ID))
	_, err = svc.Get(ctx, alice.ID, child.ID)
	assert.ErrorIs(t, err, ErrChildNotFound)
}

func TestChildService_OtherOwnersRowsAreInvisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewChildService(db)
	ctx := context.Background()
	alice := registerRep(t, db, "alice@x.com", "secret1")
	bob := registerRep(t, db, "bob@x.com", "secret2")

	child, err := svc.Create(ctx, alice.ID, &dto.ChildRequest{FullName: "Luz", BirthDate: "2019-09-09", Country: "Colombia"})
	require.NoError(t, err)

	list, err := svc.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(ctx, bob.ID, child.ID)
	assert.ErrorIs(t, err, ErrChildNotFound)

	_, err = svc.Update(ctx, bob.ID, child.ID, &dto.ChildRequest{FullName: "Hijacked", BirthDate: "2019-09-09", Country: "X"})
	assert.ErrorIs(t, err, ErrChildNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, child.ID), ErrChildNotFound)

	still, err := svc.Get(ctx, alice.ID, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luz", still.FullName)
}

func TestChildService_ListWrapsStorageErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewChildService(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	children, err := svc.List(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, children)
	assert.Contains(t, err.Error(), "failed to list children")
}
