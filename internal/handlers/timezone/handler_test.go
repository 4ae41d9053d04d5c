package timezone_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "tzbot/infras/otel/mocks"
	"tzbot/infras/sqlite"
	"tzbot/internal/domains/timezone/mocks"
	"tzbot/internal/domains/timezone/model"
	"tzbot/internal/domains/timezone/repository"
	"tzbot/internal/domains/timezone/service"
	handler "tzbot/internal/handlers/timezone"
	"tzbot/migrations"
	"tzbot/shared/constant"
	"tzbot/shared/timezone"
)

// 2024-07-01 13:45 UTC: London 14:45, New York 09:45, Tokyo 22:45.
var fixedNow = timezone.FixedClock(time.Date(2024, time.July, 1, 13, 45, 0, 0, time.UTC))

func newServer(t *testing.T, repo repository.Timezone) *httptest.Server {
	t.Helper()

	h := handler.New(service.New(repo, fixedNow, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	h.Router(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func newSQLiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := migrations.FS.ReadFile("sqlite/000001_create_timezones_table.up.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return newServer(t, repository.NewSQL(db, otelMocks.NewOtel()))
}

func get(t *testing.T, server *httptest.Server, path string) (int, string) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, constant.ContentTypeText, resp.Header.Get(constant.RequestHeaderContentType))

	return resp.StatusCode, string(body)
}

func TestHandler_SetThenGet(t *testing.T) {
	server := newSQLiteServer(t)

	code, body := get(t, server, "/set-timezone?user=Alice&tz=Europe/London")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice, your timezone (Europe/London) has been saved ✅", body)

	code, body = get(t, server, "/get-timezone?user=ALICE")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "The local time for alice (Europe/London) is 02:45 PM ⏰", body)
}

func TestHandler_SetTwiceKeepsLatest(t *testing.T) {
	server := newSQLiteServer(t)

	get(t, server, "/set-timezone?user=bob&tz=Europe/London")
	get(t, server, "/set-timezone?user=bob&tz=Asia/Tokyo")

	_, body := get(t, server, "/timezone-all")
	assert.Equal(t, "bob: Asia/Tokyo (22:45)", body)
}

func TestHandler_SetRejectsInvalidZone(t *testing.T) {
	server := newSQLiteServer(t)

	code, body := get(t, server, "/set-timezone?user=carol&tz=Not/AZone")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "carol, invalid timezone. Example: Europe/London or America/New_York", body)

	_, body = get(t, server, "/get-timezone?user=carol")
	assert.Equal(t, "carol has not set a timezone.", body)
}

func TestHandler_SetBadEscapeIsInvalidZone(t *testing.T) {
	server := newSQLiteServer(t)

	code, body := get(t, server, "/set-timezone?user=alice&tz=Europe%zzLondon")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice, invalid timezone. Example: Europe/London or America/New_York", body)
}

func TestHandler_SetUsage(t *testing.T) {
	server := newSQLiteServer(t)

	for _, path := range []string{
		"/set-timezone",
		"/set-timezone?user=alice",
		"/set-timezone?tz=Europe/London",
		"/set-timezone?user=alice&tz=%20%20",
	} {
		t.Run(path, func(t *testing.T) {
			code, body := get(t, server, path)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, "Usage: !tzset Europe/London", body)
		})
	}
}

func TestHandler_SetDecodesTimezone(t *testing.T) {
	server := newSQLiteServer(t)

	_, body := get(t, server, "/set-timezone?user=dave&tz=America%252FNew_York%20")
	assert.Equal(t, "dave, your timezone (America/New_York) has been saved ✅", body)
}

func TestHandler_Clear(t *testing.T) {
	server := newSQLiteServer(t)

	code, body := get(t, server, "/clear-timezone?user=nobody")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "nobody, your timezone has been cleared 🗑️", body)

	get(t, server, "/set-timezone?user=erin&tz=UTC")
	get(t, server, "/clear-timezone?user=Erin")

	_, body = get(t, server, "/get-timezone?user=erin")
	assert.Equal(t, "erin has not set a timezone.", body)
}

func TestHandler_GetAll(t *testing.T) {
	server := newSQLiteServer(t)

	_, body := get(t, server, "/timezone-all")
	assert.Equal(t, "No users have set a timezone yet.", body)

	get(t, server, "/set-timezone?user=zed&tz=America/New_York")
	get(t, server, "/set-timezone?user=amy&tz=Asia/Tokyo")

	code, body := get(t, server, "/timezone-all")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "amy: Asia/Tokyo (22:45) | zed: America/New_York (09:45)", body)
}

func TestHandler_GetAllDegradesUnresolvableZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTimezone(ctrl)
	repo.EXPECT().GetAll(gomock.Any()).Return([]model.Timezone{
		{Username: "amy", Timezone: "Asia/Tokyo"},
		{Username: "old", Timezone: "Mars/Olympus"},
	}, nil)

	server := newServer(t, repo)

	code, body := get(t, server, "/timezone-all")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "amy: Asia/Tokyo (22:45) | old: Mars/Olympus", body)
}

func TestHandler_StoreFailure(t *testing.T) {
	errDB := errors.New("connection refused")

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTimezone(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errDB)
	repo.EXPECT().Get(gomock.Any(), "alice").Return(model.Timezone{}, errDB)
	repo.EXPECT().Delete(gomock.Any(), "alice").Return(errDB)
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, errDB)

	server := newServer(t, repo)

	for _, path := range []string{
		"/set-timezone?user=alice&tz=Europe/London",
		"/get-timezone?user=alice",
		"/clear-timezone?user=alice",
		"/timezone-all",
	} {
		t.Run(path, func(t *testing.T) {
			code, body := get(t, server, path)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, "Internal Server Error", body)
			assert.NotContains(t, body, errDB.Error())
		})
	}
}
