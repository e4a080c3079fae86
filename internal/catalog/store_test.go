package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adeia/internal/catalog"
	"adeia/internal/catalog/settings"
)

type stubFetcher struct {
	holidays []catalog.Holiday
	err      error
	calls    int
}

func (f *stubFetcher) FetchYear(_ context.Context, _ int) ([]catalog.Holiday, error) {
	f.calls++
	return f.holidays, f.err
}

func newTestStore(t *testing.T, fetcher catalog.HolidayFetcher) (*catalog.Store, *settings.Memory) {
	t.Helper()
	port := settings.NewMemory()
	store, err := catalog.NewStore(context.Background(), port, fetcher)
	require.NoError(t, err)
	return store, port
}

func TestNewStoreSeedsWhenNothingPersisted(t *testing.T) {
	store, _ := newTestStore(t, nil)

	assert.Len(t, store.LeaveTypes(), 20)
	assert.Len(t, store.Offices(), 20)
	assert.Len(t, store.Holidays(), 8)
	assert.False(t, store.ExcludeWeekends())
}

func TestNewStorePrefersPersistedState(t *testing.T) {
	port := settings.NewMemory()
	require.NoError(t, port.Save(context.Background(), catalog.Snapshot{
		LeaveTypes:      []catalog.LeaveType{{ID: "x", Label: "Δοκιμή", Group: catalog.GroupA, GroupIndex: 1}},
		ExcludeWeekends: true,
	}))

	store, err := catalog.NewStore(context.Background(), port, nil)
	require.NoError(t, err)

	assert.Len(t, store.LeaveTypes(), 1)
	assert.Empty(t, store.Offices())
	assert.True(t, store.ExcludeWeekends())
}

func TestLeaveTypesOrdering(t *testing.T) {
	port := settings.NewMemory()
	require.NoError(t, port.Save(context.Background(), catalog.Snapshot{
		LeaveTypes: []catalog.LeaveType{
			{ID: "b1", Label: "τρίτο", Group: catalog.GroupB, GroupIndex: 1},
			{ID: "a2", Label: "δεύτερο", Group: catalog.GroupA, GroupIndex: 2},
			{ID: "a1", Label: "πρώτο", Group: catalog.GroupA, GroupIndex: 1},
		},
	}))
	store, err := catalog.NewStore(context.Background(), port, nil)
	require.NoError(t, err)

	got := store.LeaveTypes()
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
	assert.Equal(t, "b1", got[2].ID)
}

func TestAddLeaveTypeAssignsIDAndPersists(t *testing.T) {
	store, port := newTestStore(t, nil)

	created, err := store.AddLeaveType(context.Background(), catalog.LeaveType{
		Label: "Νέα άδεια", Group: catalog.GroupA, GroupIndex: 11,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	snap, ok, err := port.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, snap.LeaveTypes, 21)
}

func TestAddLeaveTypeRejectsDuplicateGroupIndex(t *testing.T) {
	store, _ := newTestStore(t, nil)

	_, err := store.AddLeaveType(context.Background(), catalog.LeaveType{
		Label: "Σύγκρουση", Group: catalog.GroupA, GroupIndex: 1,
	})
	assert.ErrorIs(t, err, catalog.ErrDuplicateGroupIndex)

	// Same index in the other group is fine only when free; B1 is taken too.
	_, err = store.AddLeaveType(context.Background(), catalog.LeaveType{
		Label: "Σύγκρουση", Group: catalog.GroupB, GroupIndex: 1,
	})
	assert.ErrorIs(t, err, catalog.ErrDuplicateGroupIndex)
}

func TestUpdateLeaveTypeKeepsOwnSlot(t *testing.T) {
	store, _ := newTestStore(t, nil)

	// Re-saving an entry with its own group/index must not self-collide.
	lt, ok := store.LeaveTypeByID("A1")
	require.True(t, ok)
	lt.Label = "Κανονική άδεια (τροποποιημένη)"
	require.NoError(t, store.UpdateLeaveType(context.Background(), lt))

	got, ok := store.LeaveTypeByID("A1")
	require.True(t, ok)
	assert.Equal(t, "Κανονική άδεια (τροποποιημένη)", got.Label)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	store, _ := newTestStore(t, nil)

	err := store.UpdateLeaveType(context.Background(), catalog.LeaveType{ID: "missing", Group: catalog.GroupA, GroupIndex: 15})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	err = store.UpdateOffice(context.Background(), catalog.ProsecutorOffice{ID: "missing"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	err = store.UpdateHoliday(context.Background(), catalog.Holiday{ID: "missing"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, nil)

	require.NoError(t, store.DeleteLeaveType(context.Background(), "A1"))
	require.NoError(t, store.DeleteLeaveType(context.Background(), "A1"))
	_, ok := store.LeaveTypeByID("A1")
	assert.False(t, ok)
}

func TestImportHolidaysMergesByDate(t *testing.T) {
	fetcher := &stubFetcher{holidays: []catalog.Holiday{
		{ID: "api_2025_0", Date: "2025-04-18", Name: "Μεγάλη Παρασκευή"},
		{ID: "api_2025_1", Date: "2025-04-21", Name: "Δευτέρα του Πάσχα"},
	}}
	store, _ := newTestStore(t, fetcher)

	added, err := store.ImportHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Len(t, store.Holidays(), 10)

	// Re-importing the same year adds nothing.
	added, err = store.ImportHolidays(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Len(t, store.Holidays(), 10)
	assert.Equal(t, 2, fetcher.calls)
}

func TestImportHolidaysFailureLeavesCatalogUntouched(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("listing unreachable")}
	store, _ := newTestStore(t, fetcher)

	_, err := store.ImportHolidays(context.Background(), 2025)
	require.Error(t, err)
	assert.Len(t, store.Holidays(), 8)
}

type brokenPort struct {
	*settings.Memory
}

func (p *brokenPort) Save(context.Context, catalog.Snapshot) error {
	return errors.New("disk full")
}

func TestFailedSaveLeavesCatalogUnchanged(t *testing.T) {
	fetcher := &stubFetcher{holidays: []catalog.Holiday{
		{ID: "api_2025_0", Date: "2025-04-18", Name: "Μεγάλη Παρασκευή"},
	}}
	store, err := catalog.NewStore(context.Background(), &brokenPort{settings.NewMemory()}, fetcher)
	require.NoError(t, err)

	_, err = store.AddLeaveType(context.Background(), catalog.LeaveType{
		Label: "Νέα άδεια", Group: catalog.GroupA, GroupIndex: 11,
	})
	require.Error(t, err)
	assert.Len(t, store.LeaveTypes(), 20)

	require.Error(t, store.DeleteOffice(context.Background(), "4"))
	_, ok := store.OfficeByID("4")
	assert.True(t, ok)

	require.Error(t, store.SetExcludeWeekends(context.Background(), true))
	assert.False(t, store.ExcludeWeekends())

	_, err = store.ImportHolidays(context.Background(), 2025)
	require.Error(t, err)
	assert.Len(t, store.Holidays(), 8)
}

func TestSetExcludeWeekendsPersists(t *testing.T) {
	store, port := newTestStore(t, nil)

	require.NoError(t, store.SetExcludeWeekends(context.Background(), true))
	assert.True(t, store.ExcludeWeekends())

	snap, ok, err := port.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, snap.ExcludeWeekends)
}
