package model_test

import (
	"testing"

	"clearance/internal/domains/booking/model"
	"clearance/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consolidated(names ...string) model.CargoManifest {
	m := model.NewCargoManifest(model.CargoModeConsolidated)
	for _, name := range names {
		m.Items = append(m.Items, model.CargoItem{Name: name})
	}

	return m
}

func TestCargoManifest_SetModeBulkTruncates(t *testing.T) {
	m := consolidated("Widgets", "Bolts", "Nuts")

	require.NoError(t, m.SetMode(model.CargoModeBulk))
	require.Len(t, m.Items, 1)
	assert.Equal(t, "Widgets", m.Items[0].Name)
	assert.NoError(t, m.Validate())

	require.NoError(t, m.SetMode(model.CargoModeConsolidated))
	require.Len(t, m.Items, 1)
	assert.Equal(t, "Widgets", m.Items[0].Name)

	idx, err := m.AddItem()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Len(t, m.Items, 2)
	assert.Equal(t, "Widgets", m.Items[0].Name)
}

func TestCargoManifest_SetModeBulkSynthesizesItem(t *testing.T) {
	m := consolidated("Widgets", "Bolts")

	require.NoError(t, m.RemoveItem(1))
	require.NoError(t, m.RemoveItem(0))
	require.Empty(t, m.Items)

	require.NoError(t, m.SetMode(model.CargoModeBulk))
	assert.Equal(t, []model.CargoItem{{}}, m.Items)
}

func TestCargoManifest_SetModeInvalid(t *testing.T) {
	m := consolidated("Widgets")

	err := m.SetMode(model.CargoMode("mixed"))
	assert.ErrorIs(t, err, model.ErrInvalidCargoMode)
	assert.Equal(t, model.CargoModeConsolidated, m.Mode)
}

func TestCargoManifest_BulkRejectsAddAndRemove(t *testing.T) {
	m := model.NewCargoManifest(model.CargoModeBulk)

	_, err := m.AddItem()
	assert.ErrorIs(t, err, model.ErrBulkSingleItem)

	err = m.RemoveItem(0)
	assert.ErrorIs(t, err, model.ErrBulkSingleItem)
	assert.Len(t, m.Items, 1)
}

func TestCargoManifest_BulkInvariantHolds(t *testing.T) {
	operations := []func(m *model.CargoManifest){
		func(m *model.CargoManifest) { _, _ = m.AddItem() },
		func(m *model.CargoManifest) { _ = m.RemoveItem(0) },
		func(m *model.CargoManifest) { _ = m.SetMode(model.CargoModeBulk) },
		func(m *model.CargoManifest) { _, _ = m.UpdateItem(0, model.CargoItemPatch{Name: ptr("Rice")}) },
		func(m *model.CargoManifest) { _, _ = m.AttachItemFile(0, model.FileRef{Key: "k"}) },
		func(m *model.CargoManifest) { _, _ = m.DetachItemFile(0) },
		func(m *model.CargoManifest) { _, _ = m.AttachPackingList(model.FileRef{Key: "pl"}) },
	}

	m := consolidated("A", "B", "C")
	require.NoError(t, m.SetMode(model.CargoModeBulk))

	for i, op := range operations {
		op(&m)
		assert.Len(t, m.Items, 1, "operation %d", i)
		assert.NoError(t, m.Validate())
	}
}

func TestCargoManifest_UpdateItem(t *testing.T) {
	m := consolidated("Widgets")

	item, err := m.UpdateItem(0, model.CargoItemPatch{Quantity: ptr("10"), PackingSpec: ptr("Pallet gỗ")})
	require.NoError(t, err)
	assert.Equal(t, model.CargoItem{Name: "Widgets", Quantity: "10", PackingSpec: "Pallet gỗ"}, item)

	_, err = m.UpdateItem(3, model.CargoItemPatch{})
	assert.ErrorIs(t, err, model.ErrCargoItemNotFound)

	_, err = m.UpdateItem(-1, model.CargoItemPatch{})
	assert.True(t, failure.IsNotFound(err))
}

func TestCargoManifest_ItemFiles(t *testing.T) {
	m := consolidated("Widgets")

	previous, err := m.AttachItemFile(0, model.FileRef{Key: "a", Name: "a.pdf"})
	require.NoError(t, err)
	assert.Nil(t, previous)

	previous, err = m.AttachItemFile(0, model.FileRef{Key: "b", Name: "b.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "a", previous.Key)
	assert.Equal(t, "b", m.Items[0].PackingList.Key)

	previous, err = m.DetachItemFile(0)
	require.NoError(t, err)
	assert.Equal(t, "b", previous.Key)
	assert.Nil(t, m.Items[0].PackingList)

	_, err = m.AttachItemFile(1, model.FileRef{})
	assert.ErrorIs(t, err, model.ErrCargoItemNotFound)
}

func TestCargoManifest_PackingList(t *testing.T) {
	m := consolidated("Widgets")

	_, err := m.AttachPackingList(model.FileRef{Key: "pl"})
	assert.ErrorIs(t, err, model.ErrPackingListBulkOnly)

	require.NoError(t, m.SetMode(model.CargoModeBulk))
	_, err = m.AttachPackingList(model.FileRef{Key: "pl"})
	require.NoError(t, err)
	assert.Equal(t, "pl", m.ActivePackingList().Key)

	require.NoError(t, m.SetMode(model.CargoModeConsolidated))
	assert.Nil(t, m.ActivePackingList())
	assert.NotNil(t, m.PackingList)

	require.NoError(t, m.SetMode(model.CargoModeBulk))
	assert.Equal(t, "pl", m.ActivePackingList().Key)
}

func TestCargoManifest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		manifest model.CargoManifest
		wantErr  error
	}{
		{name: "empty consolidated", manifest: model.CargoManifest{Mode: model.CargoModeConsolidated}},
		{name: "bulk with one", manifest: model.NewCargoManifest(model.CargoModeBulk)},
		{
			name:     "bulk with two",
			manifest: model.CargoManifest{Mode: model.CargoModeBulk, Items: []model.CargoItem{{}, {}}},
			wantErr:  model.ErrBulkSingleItem,
		},
		{
			name:     "bulk with none",
			manifest: model.CargoManifest{Mode: model.CargoModeBulk},
			wantErr:  model.ErrBulkSingleItem,
		},
		{name: "unknown mode", manifest: model.CargoManifest{Mode: "loose"}, wantErr: model.ErrInvalidCargoMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCargoManifest_Clone(t *testing.T) {
	m := consolidated("Widgets")
	_, _ = m.AttachItemFile(0, model.FileRef{Key: "a"})

	c := m.Clone()
	c.Items[0].Name = "Changed"
	c.Items[0].PackingList.Key = "changed"

	assert.Equal(t, "Widgets", m.Items[0].Name)
	assert.Equal(t, "a", m.Items[0].PackingList.Key)
}

func TestCargoManifest_FileKeys(t *testing.T) {
	m := model.NewCargoManifest(model.CargoModeBulk)
	_, err := m.AttachPackingList(model.FileRef{Key: "packing"})
	require.NoError(t, err)
	_, err = m.AttachItemFile(0, model.FileRef{Key: "item-0"})
	require.NoError(t, err)

	require.NoError(t, m.SetMode(model.CargoModeConsolidated))
	_, err = m.AddItem()
	require.NoError(t, err)

	assert.Equal(t, []string{"packing", "item-0"}, m.FileKeys())

	empty := consolidated()
	assert.Empty(t, empty.FileKeys())
}
