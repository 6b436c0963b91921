package cartcontroller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/abdullinilgiz/shop-api/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}, &models.Cart{}, &models.CartItem{}))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(t *testing.T, r *gin.Engine, name string, price float64) models.Item {
	t.Helper()
	w := do(t, r, http.MethodPost, "/item", fmt.Sprintf(`{"name":%q,"price":%v}`, name, price))
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func createCart(t *testing.T, r *gin.Engine) models.Cart {
	t.Helper()
	w := do(t, r, http.MethodPost, "/cart", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	return cart
}

func addToCart(t *testing.T, r *gin.Engine, cartID, itemID uint, query string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, r, http.MethodPost, fmt.Sprintf("/cart/%d/add/%d%s", cartID, itemID, query), "")
}

func getCartView(t *testing.T, r *gin.Engine, cartID uint) models.CartView {
	t.Helper()
	w := do(t, r, http.MethodGet, fmt.Sprintf("/cart/%d", cartID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var view models.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestCreateCart(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodPost, "/cart", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.NotZero(t, cart.ID)
	require.Zero(t, cart.Price)
	require.Zero(t, cart.Quantity)
	require.Equal(t, fmt.Sprintf("/cart/%d", cart.ID), w.Header().Get("Location"))
}

func TestAddItemToCart(t *testing.T) {
	t.Run("accumulates totals and upserts the association", func(t *testing.T) {
		r, db := setupRouter(t)
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		w := addToCart(t, r, cart.ID, item.ID, "?quantity=3")
		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, float64(30), updated.Price)
		require.Equal(t, 3, updated.Quantity)

		w = addToCart(t, r, cart.ID, item.ID, "?quantity=2")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, float64(50), updated.Price)
		require.Equal(t, 5, updated.Quantity)

		// one association row, not two
		var associations []models.CartItem
		require.NoError(t, db.Find(&associations).Error)
		require.Len(t, associations, 1)
		require.Equal(t, 5, associations[0].Quantity)

		view := getCartView(t, r, cart.ID)
		require.Len(t, view.Items, 1)
		require.Equal(t, item.ID, view.Items[0].ID)
		require.Equal(t, 5, view.Items[0].Quantity)
		require.True(t, view.Items[0].Available)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		r, _ := setupRouter(t)
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		w := addToCart(t, r, cart.ID, item.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, float64(10), updated.Price)
		require.Equal(t, 1, updated.Quantity)
	})

	t.Run("totals keep the price as of each add", func(t *testing.T) {
		r, _ := setupRouter(t)
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		w := addToCart(t, r, cart.ID, item.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodPut, fmt.Sprintf("/item/%d", item.ID), `{"price":99}`)
		require.Equal(t, http.StatusOK, w.Code)

		// the earlier contribution is not rewritten
		view := getCartView(t, r, cart.ID)
		require.Equal(t, float64(10), view.Price)

		w = addToCart(t, r, cart.ID, item.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, float64(109), updated.Price)
		require.Equal(t, 2, updated.Quantity)
	})

	t.Run("missing cart", func(t *testing.T) {
		r, _ := setupRouter(t)
		item := createItem(t, r, "A", 10)

		w := addToCart(t, r, 9999, item.ID, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing item", func(t *testing.T) {
		r, _ := setupRouter(t)
		cart := createCart(t, r)

		w := addToCart(t, r, cart.ID, 9999, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("soft-deleted item cannot be added and cart stays unchanged", func(t *testing.T) {
		r, _ := setupRouter(t)
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		w := do(t, r, http.MethodDelete, fmt.Sprintf("/item/%d", item.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		w = addToCart(t, r, cart.ID, item.ID, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		view := getCartView(t, r, cart.ID)
		require.Empty(t, view.Items)
		require.Zero(t, view.Price)
		require.Zero(t, view.Quantity)
	})

	t.Run("non-positive quantity is rejected at the boundary", func(t *testing.T) {
		r, _ := setupRouter(t)
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		for _, query := range []string{"?quantity=0", "?quantity=-2", "?quantity=abc"} {
			w := addToCart(t, r, cart.ID, item.ID, query)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, "query %s", query)
		}
	})
}

func TestGetCartByID(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("missing cart", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/cart/9999", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleted item stays visible with available=false", func(t *testing.T) {
		item := createItem(t, r, "A", 10)
		cart := createCart(t, r)

		w := addToCart(t, r, cart.ID, item.ID, "?quantity=2")
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodDelete, fmt.Sprintf("/item/%d", item.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		view := getCartView(t, r, cart.ID)
		require.Len(t, view.Items, 1)
		require.Equal(t, item.ID, view.Items[0].ID)
		require.Equal(t, 2, view.Items[0].Quantity)
		require.False(t, view.Items[0].Available)
		require.Equal(t, float64(20), view.Price)
	})
}

func TestGetCarts(t *testing.T) {
	r, _ := setupRouter(t)
	cheap := createItem(t, r, "cheap", 5)
	dear := createItem(t, r, "dear", 40)

	empty := createCart(t, r)
	small := createCart(t, r)
	big := createCart(t, r)

	w := addToCart(t, r, small.ID, cheap.ID, "?quantity=2") // price 10, qty 2
	require.Equal(t, http.StatusOK, w.Code)
	w = addToCart(t, r, big.ID, dear.ID, "?quantity=3") // price 120, qty 3
	require.Equal(t, http.StatusOK, w.Code)

	listCarts := func(t *testing.T, query string) []models.CartView {
		w := do(t, r, http.MethodGet, "/cart"+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		var views []models.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
		return views
	}

	t.Run("lists all carts with item views", func(t *testing.T) {
		views := listCarts(t, "")
		require.Len(t, views, 3)
		require.Equal(t, empty.ID, views[0].ID)
		require.Empty(t, views[0].Items)
		require.Len(t, views[1].Items, 1)
		require.Equal(t, cheap.ID, views[1].Items[0].ID)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		views := listCarts(t, "?min_price=10&max_price=10")
		require.Len(t, views, 1)
		require.Equal(t, small.ID, views[0].ID)
	})

	t.Run("quantity bounds", func(t *testing.T) {
		views := listCarts(t, "?min_quantity=3")
		require.Len(t, views, 1)
		require.Equal(t, big.ID, views[0].ID)

		views = listCarts(t, "?max_quantity=0")
		require.Len(t, views, 1)
		require.Equal(t, empty.ID, views[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		views := listCarts(t, "?offset=1&limit=1")
		require.Len(t, views, 1)
		require.Equal(t, small.ID, views[0].ID)
	})

	t.Run("invalid filters are rejected", func(t *testing.T) {
		for _, query := range []string{
			"?limit=0",
			"?offset=-1",
			"?min_price=-1",
			"?max_price=-1",
			"?min_quantity=-1",
			"?max_quantity=-1",
			"?min_quantity=1.5",
		} {
			w := do(t, r, http.MethodGet, "/cart"+query, "")
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, "query %s", query)
		}
	})
}
