package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepstock/prepstock-server/internal/domain"
	"github.com/prepstock/prepstock-server/internal/search"
	"github.com/prepstock/prepstock-server/internal/sse"
	"github.com/prepstock/prepstock-server/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupInventory wires a service against a throwaway badger store. The SSE
// manager is never started; emitted events just queue and drop.
func setupInventory(t *testing.T) (*InventoryService, *store.Store) {
	t.Helper()

	logger := discardLogger()

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	index, err := search.NewItemIndex(search.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	svc := NewInventoryService(st, index, sse.NewManager(logger), logger)
	require.NoError(t, svc.WarmIndex(context.Background()))
	return svc, st
}

func TestSection_ListsSeededCatalog(t *testing.T) {
	svc, _ := setupInventory(t)
	ctx := context.Background()

	view, err := svc.Section(ctx, "DEPOT", "")
	require.NoError(t, err)
	assert.Equal(t, domain.SectionDepot, view.Section)
	require.NotEmpty(t, view.Categories)

	// Items within a category come back name-sorted.
	for _, cat := range view.Categories {
		for i := 1; i < len(cat.Items); i++ {
			assert.LessOrEqual(t, cat.Items[i-1].Name, cat.Items[i].Name)
		}
	}
}

func TestSection_FilterOmitsEmptyCategories(t *testing.T) {
	svc, _ := setupInventory(t)
	ctx := context.Background()

	view, err := svc.Section(ctx, "DEPOT", "chicken")
	require.NoError(t, err)
	require.NotEmpty(t, view.Categories)
	for _, cat := range view.Categories {
		require.NotEmpty(t, cat.Items)
		for _, item := range cat.Items {
			assert.Contains(t, item.Name, "CHICKEN")
		}
	}
}

func TestSection_UnknownSection(t *testing.T) {
	svc, _ := setupInventory(t)

	_, err := svc.Section(context.Background(), "PANTRY", "")
	require.Error(t, err)
}

func TestNeedDerivation_CountBelowPar(t *testing.T) {
	svc, _ := setupInventory(t)
	ctx := context.Background()

	changed, err := svc.AddPermanentItem(ctx, "Hot Sauce", "10", "STORE", "GENERAL STORE")
	require.NoError(t, err)
	require.True(t, changed)

	require.NoError(t, svc.SetCount(ctx, "HOT SAUCE", "4"))

	view, err := svc.Ledger(ctx)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 6.0, view.Entries[0].OrderQuantity)
	assert.True(t, view.Entries[0].Needed)
	assert.Equal(t, 1, view.NeededCount)
}

func TestNeedDerivation_NotNeededOverridesShortfall(t *testing.T) {
	svc, _ := setupInventory(t)
	ctx := context.Background()

	_, err := svc.AddPermanentItem(ctx, "Hot Sauce", "10", "STORE", "GENERAL STORE")
	require.NoError(t, err)
	require.NoError(t, svc.SetCount(ctx, "HOT SAUCE", "4"))
	require.NoError(t, svc.SetStatus(ctx, "HOT SAUCE", "not-needed"))

	view, err := svc.Ledger(ctx)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, 6.0, view.Entries[0].OrderQuantity)
	assert.False(t, view.Entries[0].Needed)
	assert.Equal(t, 0, view.NeededCount)
}

func TestAddTemporaryItem(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	section, changed, err := svc.AddTemporaryItem(ctx, "  lime   wedges ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.SectionOther, section)

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	temp := catalog.Section(domain.SectionOther).Category(domain.TemporaryCategory)
	require.Len(t, temp.Items, 1)
	assert.Equal(t, "LIME WEDGES", temp.Items[0].Name)

	ledger, err := st.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeeded, ledger.Entries["LIME WEDGES"].Status)
}

func TestAddTemporaryItem_DuplicateSuppressed(t *testing.T) {
	svc, _ := setupInventory(t)
	ctx := context.Background()

	_, changed, err := svc.AddTemporaryItem(ctx, "LIME WEDGES")
	require.NoError(t, err)
	require.True(t, changed)

	_, changed, err = svc.AddTemporaryItem(ctx, "lime wedges")
	require.NoError(t, err)
	assert.False(t, changed)

	// The seeded catalog already has this one.
	_, changed, err = svc.AddTemporaryItem(ctx, "Milk")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAddTemporaryItem_ExistingItemStillMarkedNeeded(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	// Seeded item, so no insert happens; the needed mark still must.
	_, changed, err := svc.AddTemporaryItem(ctx, "Milk")
	require.NoError(t, err)
	require.False(t, changed)

	ledger, err := st.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeeded, ledger.Entries["MILK"].Status)

	// And it stays off the temporary list.
	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	temp := catalog.Section(domain.SectionOther).Category(domain.TemporaryCategory)
	assert.Empty(t, temp.Items)
}

func TestPromoteItem(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	_, _, err := svc.AddTemporaryItem(ctx, "LIME WEDGES")
	require.NoError(t, err)

	require.NoError(t, svc.PromoteItem(ctx, "LIME WEDGES", "STORE", "PRODUCE"))

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	temp := catalog.Section(domain.SectionOther).Category(domain.TemporaryCategory)
	assert.Empty(t, temp.Items)

	// Promotion auto-created the category.
	produce := catalog.Section(domain.SectionStore).Category("PRODUCE")
	require.NotNil(t, produce)
	require.Len(t, produce.Items, 1)
	assert.Equal(t, "LIME WEDGES", produce.Items[0].Name)
}

func TestPromoteItem_NotInTemporaryList(t *testing.T) {
	svc, _ := setupInventory(t)

	err := svc.PromoteItem(context.Background(), "KETCHUP", "STORE", "GENERAL STORE")
	require.Error(t, err)
}

func TestAddPermanentItem_CategoryMustExist(t *testing.T) {
	svc, _ := setupInventory(t)

	_, err := svc.AddPermanentItem(context.Background(), "LIME WEDGES", "", "STORE", "PRODUCE")
	require.Error(t, err)
}

func TestAddPermanentItem_InvalidParCleared(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	changed, err := svc.AddPermanentItem(ctx, "MYSTERY JAR", "abc", "STORE", "GENERAL STORE")
	require.NoError(t, err)
	require.True(t, changed)

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	item, _, _, found := catalog.FindItem("MYSTERY JAR")
	require.True(t, found)
	assert.Nil(t, item.Par)
}

func TestRemoveItem_ByPosition(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	general := catalog.Section(domain.SectionStore).Category("GENERAL STORE")
	require.NotEmpty(t, general.Items)
	first := general.Items[0].Name
	before := len(general.Items)

	require.NoError(t, svc.RemoveItem(ctx, "STORE", "GENERAL STORE", 0))

	catalog, err = st.Catalog(ctx)
	require.NoError(t, err)
	general = catalog.Section(domain.SectionStore).Category("GENERAL STORE")
	assert.Len(t, general.Items, before-1)
	if len(general.Items) > 0 {
		assert.NotEqual(t, first, general.Items[0].Name)
	}
}

func TestUpdatePar(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdatePar(ctx, "STORE", "GENERAL STORE", 0, "7.5"))

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	item := catalog.Section(domain.SectionStore).Category("GENERAL STORE").Items[0]
	require.NotNil(t, item.Par)
	assert.Equal(t, 7.5, *item.Par)

	// Garbage input clears the level.
	require.NoError(t, svc.UpdatePar(ctx, "STORE", "GENERAL STORE", 0, "lots"))
	catalog, err = st.Catalog(ctx)
	require.NoError(t, err)
	assert.Nil(t, catalog.Section(domain.SectionStore).Category("GENERAL STORE").Items[0].Par)
}

func TestSetStatus_NoneRemovesEntry(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	require.NoError(t, svc.SetCount(ctx, "KETCHUP", "4"))
	require.NoError(t, svc.SetStatus(ctx, "KETCHUP", "none"))

	ledger, err := st.Ledger(ctx)
	require.NoError(t, err)
	_, exists := ledger.Entries["KETCHUP"]
	assert.False(t, exists)
}

func TestResetCounts_LeavesCatalogAndRegistry(t *testing.T) {
	svc, st := setupInventory(t)
	ctx := context.Background()

	require.NoError(t, svc.SetCount(ctx, "MILK", "4"))

	registry, err := st.BarcodeRegistry(ctx)
	require.NoError(t, err)
	registry.Bind("012345", "MILK", domain.SectionStore, "GENERAL STORE", time.Now())
	require.NoError(t, st.SaveBarcodeRegistry(ctx, registry))

	require.NoError(t, svc.ResetCounts(ctx))

	ledger, err := st.Ledger(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger.Entries)

	catalog, err := st.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, catalog.ContainsName("MILK"))

	registry, err = st.BarcodeRegistry(ctx)
	require.NoError(t, err)
	_, bound := registry.Lookup("012345")
	assert.True(t, bound)
}

func TestSearch_FindsSeededItems(t *testing.T) {
	svc, _ := setupInventory(t)

	params := search.DefaultSearchParams()
	params.Query = "milk"

	result, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "MILK", result.Hits[0].Name)
}
