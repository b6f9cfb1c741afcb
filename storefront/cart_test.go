package storefront_test

import (
	"testing"

	"github.com/jrsteele09/go-ecom-client/storefront"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	t.Run("add and total", func(t *testing.T) {
		cart := storefront.NewCart()
		require.True(t, cart.Empty())

		cart.Add(storefront.CartItem{ID: 1, Name: "Product A", Price: 299, Quantity: 1})
		cart.Add(storefront.CartItem{ID: 2, Name: "Product B", Price: 499, Quantity: 2})

		require.False(t, cart.Empty())
		require.Len(t, cart.Items(), 2)
		require.InDelta(t, 299+2*499, cart.Total(), 0.001)
	})

	t.Run("adding an existing id increments quantity", func(t *testing.T) {
		cart := storefront.NewCart()
		cart.Add(storefront.CartItem{ID: 1, Name: "Product A", Price: 100, Quantity: 1})
		cart.Add(storefront.CartItem{ID: 1, Name: "Product A", Price: 100, Quantity: 2})

		items := cart.Items()
		require.Len(t, items, 1)
		require.Equal(t, 3, items[0].Quantity)
	})

	t.Run("quantity clamps to a minimum of one", func(t *testing.T) {
		cart := storefront.NewCart()
		cart.Add(storefront.CartItem{ID: 1, Name: "Product A", Price: 100, Quantity: 2})

		cart.UpdateQuantity(1, 0)
		require.Equal(t, 1, cart.Items()[0].Quantity)

		cart.UpdateQuantity(1, -5)
		require.Equal(t, 1, cart.Items()[0].Quantity)

		cart.UpdateQuantity(1, 4)
		require.Equal(t, 4, cart.Items()[0].Quantity)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		cart := storefront.NewCart()
		cart.Add(storefront.CartItem{ID: 1, Name: "Product A", Price: 100, Quantity: 1})

		cart.Remove(1)
		cart.Remove(1)
		require.True(t, cart.Empty())
		require.Zero(t, cart.Total())
	})
}
