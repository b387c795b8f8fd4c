package catalog

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

var (
	tomato     = models.Topping{ID: 1, Name: "Tomato Sauce"}
	mozzarella = models.Topping{ID: 2, Name: "Mozzarella"}
	basil      = models.Topping{ID: 3, Name: "Basil"}
	pepperoni  = models.Topping{ID: 4, Name: "Pepperoni"}
)

func mountedToppings(t *testing.T, fake *fakeGateway) *ToppingCatalog {
	t.Helper()
	c := NewToppingCatalog(fake)
	require.NoError(t, c.Mount(context.Background()))
	return c
}

func TestToppingCatalogMountLoadsList(t *testing.T) {
	fake := newFakeGateway(tomato, mozzarella)
	c := mountedToppings(t, fake)

	assert.Equal(t, []models.Topping{tomato, mozzarella}, c.Toppings())
	assert.Empty(t, c.LastError())
	assert.Equal(t, 1, fake.callCount("ListToppings"))
}

func TestToppingCatalogRefreshFailure(t *testing.T) {
	fake := newFakeGateway(tomato)
	c := mountedToppings(t, fake)

	fake.fail("ListToppings", errUnreachable)
	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.KindTransport, models.KindOf(err))
	assert.Equal(t, "Could not fetch toppings. Could not reach the pizza service.", c.LastError())
	assert.Equal(t, []models.Topping{tomato}, c.Toppings(), "list must survive a failed refresh")
}

func TestToppingCatalogAdd(t *testing.T) {
	t.Run("blank name never reaches the server", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		before := fake.totalCalls()

		for _, name := range []string{"", "   "} {
			_, err := c.Add(context.Background(), name)
			require.Error(t, err)
			assert.Equal(t, models.KindValidation, models.KindOf(err))
		}

		assert.Equal(t, before, fake.totalCalls())
		assert.Equal(t, "Please provide a name for the topping.", c.LastError())
		assert.Equal(t, []models.Topping{tomato}, c.Toppings())
	})

	t.Run("appends the server entity and clears the error", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		_, _ = c.Add(context.Background(), "")
		require.NotEmpty(t, c.LastError())

		created, err := c.Add(context.Background(), "Olives")
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, []models.Topping{tomato, created}, c.Toppings())
		assert.Empty(t, c.LastError())
		assert.Equal(t, 1, fake.callCount("ListToppings"), "add must not re-fetch the list")
	})

	t.Run("server rejection keeps the list and shows the body", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		fake.fail("CreateTopping", &models.ServerError{Op: "create topping", StatusCode: http.StatusBadRequest, Body: "Topping already exists."})

		_, err := c.Add(context.Background(), "Tomato Sauce")
		require.Error(t, err)
		assert.Equal(t, models.KindServer, models.KindOf(err))
		assert.Equal(t, "Could not add topping. Topping already exists.", c.LastError())
		assert.Equal(t, []models.Topping{tomato}, c.Toppings())
	})
}

func TestToppingCatalogRename(t *testing.T) {
	fake := newFakeGateway(tomato, mozzarella, basil)
	c := mountedToppings(t, fake)

	renamed, err := c.Rename(context.Background(), mozzarella.ID, "Basil")
	require.NoError(t, err)

	assert.Equal(t, models.Topping{ID: mozzarella.ID, Name: "Basil"}, renamed)
	assert.Equal(t, []models.Topping{tomato, renamed, basil}, c.Toppings(), "duplicate names are allowed and order is kept")

	_, err = c.Rename(context.Background(), 99, "Ghost")
	require.Error(t, err)
	assert.Equal(t, "Could not update topping. Topping with id 99 does not exist.", c.LastError())
}

func TestToppingCatalogRemove(t *testing.T) {
	t.Run("filters the entry out", func(t *testing.T) {
		fake := newFakeGateway(tomato, mozzarella)
		c := mountedToppings(t, fake)

		require.NoError(t, c.Remove(context.Background(), tomato.ID))
		assert.Equal(t, []models.Topping{mozzarella}, c.Toppings())
	})

	t.Run("server error leaves the list unchanged", func(t *testing.T) {
		fake := newFakeGateway(tomato, mozzarella)
		c := mountedToppings(t, fake)
		fake.fail("DeleteTopping", &models.ServerError{Op: "delete topping", StatusCode: http.StatusInternalServerError, Body: "boom"})

		err := c.Remove(context.Background(), tomato.ID)
		require.Error(t, err)
		assert.Equal(t, []models.Topping{tomato, mozzarella}, c.Toppings())
		assert.Equal(t, "Could not remove topping. boom", c.LastError())
	})

	t.Run("already deleted id surfaces the server error", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		fake.setToppings()

		err := c.Remove(context.Background(), tomato.ID)
		require.Error(t, err)
		assert.Equal(t, models.KindServer, models.KindOf(err))
		assert.Equal(t, []models.Topping{tomato}, c.Toppings())
	})

	t.Run("empty body falls back to the status", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		fake.fail("DeleteTopping", &models.ServerError{Op: "delete topping", StatusCode: http.StatusBadGateway})

		require.Error(t, c.Remove(context.Background(), tomato.ID))
		assert.Equal(t, "Could not remove topping. Server responded with status 502.", c.LastError())
	})
}

func TestToppingCatalogRowEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("rows are edited independently", func(t *testing.T) {
		c := mountedToppings(t, newFakeGateway(tomato, mozzarella))

		require.NoError(t, c.BeginEdit(tomato.ID))
		require.NoError(t, c.BeginEdit(mozzarella.ID))
		require.NoError(t, c.SetDraft(tomato.ID, "San Marzano"))

		draft, ok := c.Draft(tomato.ID)
		assert.True(t, ok)
		assert.Equal(t, "San Marzano", draft)
		draft, _ = c.Draft(mozzarella.ID)
		assert.Equal(t, "Mozzarella", draft)

		c.CancelEdit(mozzarella.ID)
		assert.False(t, c.IsEditing(mozzarella.ID))
		assert.True(t, c.IsEditing(tomato.ID))
		assert.Equal(t, []models.Topping{tomato, mozzarella}, c.Toppings(), "drafts never touch the list")
	})

	t.Run("unknown rows and rows not in edit mode", func(t *testing.T) {
		c := mountedToppings(t, newFakeGateway(tomato))

		assert.ErrorIs(t, c.BeginEdit(42), ErrToppingNotFound)
		assert.ErrorIs(t, c.SetDraft(tomato.ID, "x"), ErrNotEditing)
		assert.ErrorIs(t, c.SaveEdit(ctx, tomato.ID), ErrNotEditing)
	})

	t.Run("save leaves edit mode on success", func(t *testing.T) {
		c := mountedToppings(t, newFakeGateway(tomato))

		require.NoError(t, c.ToggleEdit(ctx, tomato.ID))
		require.True(t, c.IsEditing(tomato.ID))
		require.NoError(t, c.SetDraft(tomato.ID, "San Marzano"))
		require.NoError(t, c.ToggleEdit(ctx, tomato.ID))

		assert.False(t, c.IsEditing(tomato.ID))
		assert.Equal(t, []models.Topping{{ID: tomato.ID, Name: "San Marzano"}}, c.Toppings())
	})

	t.Run("save stays in edit mode on failure", func(t *testing.T) {
		fake := newFakeGateway(tomato)
		c := mountedToppings(t, fake)
		fake.fail("UpdateTopping", errUnreachable)

		require.NoError(t, c.BeginEdit(tomato.ID))
		require.NoError(t, c.SetDraft(tomato.ID, "San Marzano"))
		require.Error(t, c.SaveEdit(ctx, tomato.ID))

		draft, ok := c.Draft(tomato.ID)
		assert.True(t, ok)
		assert.Equal(t, "San Marzano", draft)
		assert.Equal(t, []models.Topping{tomato}, c.Toppings())
		assert.Equal(t, "Could not update topping. Could not reach the pizza service.", c.LastError())
	})

	t.Run("rows expose their edit state", func(t *testing.T) {
		c := mountedToppings(t, newFakeGateway(tomato, mozzarella))
		require.NoError(t, c.BeginEdit(mozzarella.ID))

		rows := c.Rows()
		require.Len(t, rows, 2)
		assert.False(t, rows[0].Editing)
		assert.True(t, rows[1].Editing)
		assert.Equal(t, "Mozzarella", rows[1].Draft)
	})

	t.Run("removing a row drops its draft", func(t *testing.T) {
		c := mountedToppings(t, newFakeGateway(tomato, mozzarella))
		require.NoError(t, c.BeginEdit(tomato.ID))

		require.NoError(t, c.Remove(ctx, tomato.ID))
		assert.False(t, c.IsEditing(tomato.ID))
	})
}

func TestToppingCatalogDiscardsStaleRefresh(t *testing.T) {
	fake := newFakeGateway(tomato)
	c := mountedToppings(t, fake)

	entered := make(chan struct{})
	release := make(chan struct{})
	fake.hook("ListToppings", func(call int) {
		if call == 2 {
			close(entered)
			<-release
		}
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.Refresh(context.Background()))
	}()
	<-entered

	fake.setToppings(tomato, basil)
	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, []models.Topping{tomato, basil}, c.Toppings())

	close(release)
	wg.Wait()
	assert.Equal(t, []models.Topping{tomato, basil}, c.Toppings(), "older response must not overwrite a newer one")
}

func TestToppingCatalogRefreshDoesNotUndoLocalPatch(t *testing.T) {
	fake := newFakeGateway(tomato)
	c := mountedToppings(t, fake)

	entered := make(chan struct{})
	release := make(chan struct{})
	fake.hook("ListToppings", func(call int) {
		if call == 2 {
			close(entered)
			<-release
		}
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Refresh(context.Background())
	}()
	<-entered

	created, err := c.Add(context.Background(), "Olives")
	require.NoError(t, err)

	close(release)
	wg.Wait()
	assert.Contains(t, c.Toppings(), created)
}

func TestToppingCatalogAddAfterNewerRefreshKeepsOneEntry(t *testing.T) {
	fake := newFakeGateway(tomato)
	c := mountedToppings(t, fake)

	entered := make(chan struct{})
	release := make(chan struct{})
	fake.hook("CreateTopping", func(int) {
		close(entered)
		<-release
	})

	var created models.Topping
	var addErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		created, addErr = c.Add(context.Background(), "Olives")
	}()
	<-entered

	// the refresh is dispatched after the add and already lists the new topping
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Toppings(), 2)

	close(release)
	wg.Wait()
	require.NoError(t, addErr)

	assert.Equal(t, []models.Topping{tomato, created}, c.Toppings())
	assert.Empty(t, c.LastError())
}

func TestToppingCatalogUnmountDropsResponses(t *testing.T) {
	fake := newFakeGateway(tomato)
	c := NewToppingCatalog(fake)

	entered := make(chan struct{})
	release := make(chan struct{})
	fake.hook("ListToppings", func(int) {
		close(entered)
		<-release
	})
	fake.fail("ListToppings", errUnreachable)

	done := make(chan error, 1)
	go func() { done <- c.Mount(context.Background()) }()
	<-entered
	c.Unmount()
	close(release)
	<-done

	assert.Empty(t, c.Toppings())
	assert.Empty(t, c.LastError(), "errors after unmount are not surfaced")
}
