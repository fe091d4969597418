package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb/internal/config"
	"hbnb/internal/database"
	"hbnb/internal/storage"
)

type obj = map[string]any

type api struct {
	t *testing.T
	r *gin.Engine
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		LogLevel:           "disabled",
		CORSAllowedOrigins: []string{"*"},
	}
}

func fileStore(t *testing.T) storage.Storage {
	s, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "file.json"))
	require.NoError(t, err)
	return s
}

func dbStore(t *testing.T) storage.Storage {
	db, err := database.Connect(":memory:", zerolog.Nop())
	require.NoError(t, err)
	s := storage.NewDBStorage(db)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newAPI(t *testing.T, store storage.Storage) *api {
	gin.SetMode(gin.TestMode)
	return &api{t: t, r: NewRouter(testConfig(), store, zerolog.Nop())}
}

// forEachBackend runs fn against a fresh API over each storage backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, a *api)) {
	for name, open := range map[string]func(*testing.T) storage.Storage{
		"file": fileStore,
		"db":   dbStore,
	} {
		t.Run(name, func(t *testing.T) {
			fn(t, newAPI(t, open(t)))
		})
	}
}

func (a *api) raw(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/v1"+path, nil)
	} else {
		req = httptest.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)
	return rr
}

func (a *api) do(method, path string, body any) (int, obj) {
	a.t.Helper()
	rr := a.send(method, path, body)
	if rr.Body.Len() == 0 {
		return rr.Code, nil
	}
	var out obj
	require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return rr.Code, out
}

func (a *api) list(path string) []obj {
	a.t.Helper()
	rr := a.raw(http.MethodGet, path, "")
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
	var out []obj
	require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func (a *api) search(body any) []obj {
	a.t.Helper()
	rr := a.send(http.MethodPost, "/places_search", body)
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
	var out []obj
	require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func (a *api) send(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	if body == nil {
		return a.raw(method, path, "")
	}
	raw, err := json.Marshal(body)
	require.NoError(a.t, err)
	return a.raw(method, path, string(raw))
}

// create posts body to path and returns the new id.
func (a *api) create(path string, body obj) string {
	a.t.Helper()
	code, out := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, code, out)
	return out["id"].(string)
}

func ids(items []obj) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it["id"].(string))
	}
	return out
}

func TestIndex(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		code, body := a.do(http.MethodGet, "/status", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, obj{"status": "OK"}, body)

		stateID := a.create("/states", obj{"name": "California"})
		a.create("/states/"+stateID+"/cities", obj{"name": "San Francisco"})
		a.create("/amenities", obj{"name": "Wifi"})

		code, body = a.do(http.MethodGet, "/stats", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, obj{
			"amenities": float64(1),
			"cities":    float64(1),
			"places":    float64(0),
			"reviews":   float64(0),
			"states":    float64(1),
			"users":     float64(0),
		}, body)
	})
}

func TestUnknownRoute(t *testing.T) {
	a := newAPI(t, fileStore(t))

	rr := a.raw(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestStates_Lifecycle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		code, created := a.do(http.MethodPost, "/states", obj{
			"name":       "California",
			"id":         "forged",
			"__class__":  "City",
			"created_at": "2000-01-01T00:00:00Z",
		})
		require.Equal(t, http.StatusCreated, code)
		id := created["id"].(string)
		assert.NotEqual(t, "forged", id)
		assert.Equal(t, "State", created["__class__"])
		assert.Equal(t, "California", created["name"])
		assert.NotEqual(t, "2000-01-01T00:00:00Z", created["created_at"])

		code, got := a.do(http.MethodGet, "/states/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, created, got)

		assert.Equal(t, []string{id}, ids(a.list("/states")))

		code, updated := a.do(http.MethodPut, "/states/"+id, obj{
			"name":       "Nevada",
			"id":         "other",
			"created_at": "2000-01-01T00:00:00Z",
			"updated_at": "2000-01-01T00:00:00Z",
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, id, updated["id"])
		assert.Equal(t, "Nevada", updated["name"])
		assert.Equal(t, created["created_at"], updated["created_at"])
		assert.NotEqual(t, "2000-01-01T00:00:00Z", updated["updated_at"])

		code, got = a.do(http.MethodGet, "/states/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, updated, got)

		code, body := a.do(http.MethodDelete, "/states/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, body)

		code, body = a.do(http.MethodGet, "/states/"+id, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Empty(t, body)

		code, _ = a.do(http.MethodDelete, "/states/"+id, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestStates_Validation(t *testing.T) {
	a := newAPI(t, fileStore(t))

	for _, body := range []string{"", "not json", "[1, 2]", `"name"`, "null"} {
		rr := a.raw(http.MethodPost, "/states", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Not a JSON"}`, rr.Body.String(), "body %q", body)
	}

	code, body := a.do(http.MethodPost, "/states", obj{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, obj{"error": "Missing name"}, body)

	code, body = a.do(http.MethodPost, "/states", obj{"name": 42})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, obj{"error": "invalid value for name"}, body)

	code, _ = a.do(http.MethodPut, "/states/missing", obj{"name": "X"})
	assert.Equal(t, http.StatusNotFound, code)

	id := a.create("/states", obj{"name": "California"})
	rr := a.raw(http.MethodPut, "/states/"+id, "not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Not a JSON"}`, rr.Body.String())

	code, body = a.do(http.MethodPut, "/states/"+id, obj{})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "California", body["name"])
}

func TestCities(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		code, body := a.do(http.MethodPost, "/states/missing/cities", obj{"name": "X"})
		assert.Equal(t, http.StatusNotFound, code)
		assert.Empty(t, body)

		code, _ = a.do(http.MethodGet, "/states/missing/cities", nil)
		assert.Equal(t, http.StatusNotFound, code)

		stateID := a.create("/states", obj{"name": "California"})
		otherID := a.create("/states", obj{"name": "Nevada"})

		code, city := a.do(http.MethodPost, "/states/"+stateID+"/cities", obj{"name": "X", "state_id": otherID})
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, stateID, city["state_id"])
		assert.Equal(t, "City", city["__class__"])
		cityID := city["id"].(string)

		code, body = a.do(http.MethodPost, "/states/"+stateID+"/cities", obj{})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing name"}, body)

		assert.Equal(t, []string{cityID}, ids(a.list("/states/"+stateID+"/cities")))
		assert.Empty(t, a.list("/states/"+otherID+"/cities"))

		code, updated := a.do(http.MethodPut, "/cities/"+cityID, obj{"name": "San Francisco", "state_id": otherID})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "San Francisco", updated["name"])
		assert.Equal(t, stateID, updated["state_id"])

		code, _ = a.do(http.MethodDelete, "/states/"+stateID, nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = a.do(http.MethodGet, "/cities/"+cityID, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestAmenities(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		id := a.create("/amenities", obj{"name": "Wifi"})

		code, got := a.do(http.MethodGet, "/amenities/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Amenity", got["__class__"])

		code, got = a.do(http.MethodPut, "/amenities/"+id, obj{"name": "Fast wifi", "unknown": true})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Fast wifi", got["name"])
		assert.NotContains(t, got, "unknown")

		code, body := a.do(http.MethodPost, "/amenities", obj{"title": "Pool"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing name"}, body)

		assert.Len(t, a.list("/amenities"), 1)

		code, _ = a.do(http.MethodDelete, "/amenities/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, a.list("/amenities"))
	})
}

func TestUsers(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		code, body := a.do(http.MethodPost, "/users", obj{"email": "a@b.c"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing password"}, body)

		code, body = a.do(http.MethodPost, "/users", obj{"password": "pwd"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing email"}, body)

		code, body = a.do(http.MethodPost, "/users", obj{"email": "a@b.c", "password": 7})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "invalid value for password"}, body)

		code, u := a.do(http.MethodPost, "/users", obj{"email": "a@b.c", "password": "pwd", "first_name": "Ada"})
		require.Equal(t, http.StatusCreated, code)
		assert.NotContains(t, u, "password")
		assert.Equal(t, "User", u["__class__"])
		id := u["id"].(string)

		code, updated := a.do(http.MethodPut, "/users/"+id, obj{"email": "x@y.z", "last_name": "Lovelace", "password": "new"})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "a@b.c", updated["email"])
		assert.Equal(t, "Lovelace", updated["last_name"])
		assert.NotContains(t, updated, "password")

		users := a.list("/users")
		require.Len(t, users, 1)
		assert.NotContains(t, users[0], "password")
	})
}

func TestUsers_LongPassword(t *testing.T) {
	long := strings.Repeat("x", 80)
	forEachBackend(t, func(t *testing.T, a *api) {
		code, u := a.do(http.MethodPost, "/users", obj{"email": "a@b.c", "password": long})
		require.Equal(t, http.StatusCreated, code)
		id := u["id"].(string)

		code, _ = a.do(http.MethodPut, "/users/"+id, obj{"password": strings.Repeat("y", 200)})
		assert.Equal(t, http.StatusOK, code)
	})
}

// catalog builds state -> city -> places owned by one user, plus amenities.
type catalog struct {
	stateID, cityID, otherCityID string
	userID                       string
	wifi, pool                   string
	loft, cabin                  string
}

func buildCatalog(t *testing.T, a *api) catalog {
	t.Helper()
	var c catalog
	c.stateID = a.create("/states", obj{"name": "California"})
	c.cityID = a.create("/states/"+c.stateID+"/cities", obj{"name": "San Francisco"})
	otherState := a.create("/states", obj{"name": "Nevada"})
	c.otherCityID = a.create("/states/"+otherState+"/cities", obj{"name": "Reno"})
	c.userID = a.create("/users", obj{"email": "host@example.com", "password": "pwd"})
	c.wifi = a.create("/amenities", obj{"name": "Wifi"})
	c.pool = a.create("/amenities", obj{"name": "Pool"})
	c.loft = a.create("/cities/"+c.cityID+"/places", obj{"user_id": c.userID, "name": "Loft", "number_rooms": 2})
	c.cabin = a.create("/cities/"+c.otherCityID+"/places", obj{"user_id": c.userID, "name": "Cabin"})
	return c
}

func TestPlaces(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		c := buildCatalog(t, a)

		code, body := a.do(http.MethodPost, "/cities/missing/places", obj{"user_id": c.userID, "name": "X"})
		assert.Equal(t, http.StatusNotFound, code)
		assert.Empty(t, body)

		rr := a.raw(http.MethodPost, "/cities/"+c.cityID+"/places", "nope")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Not a JSON"}`, rr.Body.String())

		code, body = a.do(http.MethodPost, "/cities/"+c.cityID+"/places", obj{"name": "X"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing user_id"}, body)

		code, body = a.do(http.MethodPost, "/cities/"+c.cityID+"/places", obj{"user_id": "missing"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing name"}, body)

		code, _ = a.do(http.MethodPost, "/cities/"+c.cityID+"/places", obj{"user_id": "missing", "name": "X"})
		assert.Equal(t, http.StatusNotFound, code)

		code, p := a.do(http.MethodGet, "/places/"+c.loft, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, c.cityID, p["city_id"])
		assert.Equal(t, c.userID, p["user_id"])
		assert.Equal(t, float64(2), p["number_rooms"])
		assert.Equal(t, "Place", p["__class__"])

		assert.Equal(t, []string{c.loft}, ids(a.list("/cities/"+c.cityID+"/places")))

		code, updated := a.do(http.MethodPut, "/places/"+c.loft, obj{
			"city_id":        c.otherCityID,
			"user_id":        "someone",
			"price_by_night": 150,
			"latitude":       37.77,
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, c.cityID, updated["city_id"])
		assert.Equal(t, c.userID, updated["user_id"])
		assert.Equal(t, float64(150), updated["price_by_night"])
		assert.Equal(t, 37.77, updated["latitude"])

		code, body = a.do(http.MethodPut, "/places/"+c.loft, obj{"max_guest": "many"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "invalid value for max_guest"}, body)

		code, _ = a.do(http.MethodDelete, "/users/"+c.userID, nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = a.do(http.MethodGet, "/places/"+c.loft, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Empty(t, a.list("/cities/"+c.otherCityID+"/places"))
	})
}

func TestPlaceAmenities(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		c := buildCatalog(t, a)
		link := "/places/" + c.loft + "/amenities/" + c.wifi

		assert.Empty(t, a.list("/places/"+c.loft+"/amenities"))

		code, body := a.do(http.MethodPost, link, nil)
		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, c.wifi, body["id"])

		code, body = a.do(http.MethodPost, link, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, c.wifi, body["id"])

		assert.Equal(t, []string{c.wifi}, ids(a.list("/places/"+c.loft+"/amenities")))

		code, _ = a.do(http.MethodPost, "/places/missing/amenities/"+c.wifi, nil)
		assert.Equal(t, http.StatusNotFound, code)
		code, _ = a.do(http.MethodPost, "/places/"+c.loft+"/amenities/missing", nil)
		assert.Equal(t, http.StatusNotFound, code)
		code, _ = a.do(http.MethodGet, "/places/missing/amenities", nil)
		assert.Equal(t, http.StatusNotFound, code)

		code, body = a.do(http.MethodDelete, link, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, body)

		code, _ = a.do(http.MethodDelete, link, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Empty(t, a.list("/places/"+c.loft+"/amenities"))
	})
}

func TestReviews(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		c := buildCatalog(t, a)
		base := "/places/" + c.loft + "/reviews"

		code, _ := a.do(http.MethodPost, "/places/missing/reviews", obj{"user_id": c.userID, "text": "x"})
		assert.Equal(t, http.StatusNotFound, code)

		code, body := a.do(http.MethodPost, base, obj{"text": "Great"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing user_id"}, body)

		code, body = a.do(http.MethodPost, base, obj{"user_id": c.userID})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "Missing text"}, body)

		code, _ = a.do(http.MethodPost, base, obj{"user_id": "missing", "text": "Great"})
		assert.Equal(t, http.StatusNotFound, code)

		code, rv := a.do(http.MethodPost, base, obj{"user_id": c.userID, "text": "Great", "place_id": c.cabin})
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, c.loft, rv["place_id"])
		assert.Equal(t, "Review", rv["__class__"])
		id := rv["id"].(string)

		assert.Equal(t, []string{id}, ids(a.list(base)))
		assert.Empty(t, a.list("/places/"+c.cabin+"/reviews"))

		code, updated := a.do(http.MethodPut, "/reviews/"+id, obj{"text": "Good", "user_id": "x", "place_id": "y"})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Good", updated["text"])
		assert.Equal(t, c.userID, updated["user_id"])
		assert.Equal(t, c.loft, updated["place_id"])

		code, _ = a.do(http.MethodDelete, "/places/"+c.loft, nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = a.do(http.MethodGet, "/reviews/"+id, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestPlacesSearch(t *testing.T) {
	forEachBackend(t, func(t *testing.T, a *api) {
		c := buildCatalog(t, a)
		studio := a.create("/cities/"+c.cityID+"/places", obj{"user_id": c.userID, "name": "Studio"})

		for _, p := range []string{c.loft, c.cabin} {
			for _, am := range []string{c.wifi, c.pool} {
				code, _ := a.do(http.MethodPost, "/places/"+p+"/amenities/"+am, nil)
				require.Equal(t, http.StatusCreated, code)
			}
		}
		code, _ := a.do(http.MethodPost, "/places/"+studio+"/amenities/"+c.wifi, nil)
		require.Equal(t, http.StatusCreated, code)

		assert.ElementsMatch(t, []string{c.loft, c.cabin, studio}, ids(a.search(obj{})))
		assert.ElementsMatch(t, []string{c.loft, c.cabin, studio},
			ids(a.search(obj{"states": []string{}, "cities": nil})))

		assert.ElementsMatch(t, []string{c.loft, studio}, ids(a.search(obj{"states": []string{c.stateID}})))
		assert.ElementsMatch(t, []string{c.loft, studio, c.cabin},
			ids(a.search(obj{"states": []string{c.stateID}, "cities": []string{c.cityID, c.otherCityID}})))

		assert.ElementsMatch(t, []string{c.loft, c.cabin}, ids(a.search(obj{
			"cities":    []string{c.cityID, c.otherCityID},
			"amenities": []string{c.wifi, c.pool},
		})))
		assert.ElementsMatch(t, []string{c.loft, studio}, ids(a.search(obj{
			"cities":    []string{c.cityID},
			"amenities": []string{c.wifi},
		})))

		assert.Empty(t, a.search(obj{"amenities": []string{c.wifi}}))
		assert.Empty(t, a.search(obj{"states": []string{"missing"}}))

		results := a.search(obj{"cities": []string{c.otherCityID}})
		require.Len(t, results, 1)
		assert.Equal(t, "Place", results[0]["__class__"])

		for _, body := range []string{"", "nope", "[]", "null"} {
			rr := a.raw(http.MethodPost, "/places_search", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
			assert.JSONEq(t, `{"error":"Not a JSON"}`, rr.Body.String())
		}

		code, body := a.do(http.MethodPost, "/places_search", obj{"states": "x"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, obj{"error": "invalid value for states"}, body)
	})
}

func TestCORSPreflight(t *testing.T) {
	a := newAPI(t, fileStore(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/states", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	a := newAPI(t, fileStore(t))
	a.raw(http.MethodGet, "/status", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(),
		`hbnb_http_requests_total{method="GET",route="/api/v1/status",status="200"} 1`)
}
