package campus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, zap.NewNop())
}

func TestPersonsDecodesCatalog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/persons/", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "firstName": "Anna", "lastName": "Meyer", "academicDegree": "Prof. Dr.", "imageUrl": "https://example.org/meyer.jpg", "isDeleted": false},
			{"id": 2, "firstName": "Bernd", "lastName": "Weber", "academicDegree": "M.Sc.", "imageUrl": "", "isDeleted": true}
		]`))
	})

	persons, err := client.Persons(context.Background())
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, "Meyer", persons[0].LastName)
	assert.True(t, persons[0].IsProfessor())
	assert.True(t, persons[1].IsDeleted)
}

func TestPersonsSurfacesHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Persons(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestMenuOfTheDayFiltersEmptyLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/canteen/3/date/2024-06-15", r.URL.Path)
		w.Write([]byte(`[{
			"name": "Mensa Moltke",
			"lines": [
				{"name": "Linie 1", "meals": [{"meal": "Spaghetti", "price1": 3.20}]},
				{"name": "Linie 2", "meals": []}
			]
		}]`))
	})

	menu, err := client.MenuOfTheDay(context.Background(), 3, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Mensa Moltke", menu.Name)
	require.Len(t, menu.Lines, 1)
	assert.Equal(t, "Linie 1", menu.Lines[0].Name)
	assert.Equal(t, "Spaghetti", menu.Lines[0].Meals[0].Name)
}

func TestMenuOfTheDayFallsBackToCanteenName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/canteen/3/date/2024-06-16":
			w.Write([]byte(`[]`))
		case "/canteen":
			w.Write([]byte(`[{"id": 3, "name": "Mensa Moltke"}, {"id": 4, "name": "Mensa Erzberger"}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	menu, err := client.MenuOfTheDay(context.Background(), 3, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Mensa Moltke", menu.Name)
	assert.Empty(t, menu.Lines)
}

func TestSemestersDecodesCatalog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/semesters/", r.URL.Path)
		w.Write([]byte(`[{
			"id": 11,
			"name": "INFB 3",
			"semesterNumber": 3,
			"iCalFileHttpLink": "https://example.org/INFB3.ics",
			"course": {"name": "Informatik", "faculty": {"id": "IWI"}}
		}]`))
	})

	semesters, err := client.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, semesters, 1)
	assert.Equal(t, "IWI", semesters[0].Course.Faculty.ID)
	assert.Equal(t, 3, semesters[0].SemesterNumber)
}
