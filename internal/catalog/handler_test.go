package catalog_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/2beens/undergroundgym/internal/catalog"
	"github.com/2beens/undergroundgym/internal/workout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testExercises() []workout.Exercise {
	barbell := "Barbell"
	return []workout.Exercise{
		{ID: "ex-1", Name: "Bench Press", MuscleGroup: "Chest", Equipment: &barbell},
		{ID: "ex-2", Name: "Dips", MuscleGroup: "Chest"},
	}
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	repoMock.EXPECT().List(gomock.Any(), "Chest").Return(testExercises(), nil).Times(1)
	repoMock.EXPECT().List(gomock.Any(), "").Return([]workout.Exercise{}, nil).Times(1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/exercises?muscle_group=Chest", nil)
	h.HandleList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []workout.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testExercises(), got)
	assert.Contains(t, rec.Body.String(), `"muscle_group":"Chest"`)
	assert.NotContains(t, rec.Body.String(), `"instructions"`)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestHandler_HandleList_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	repoMock.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db down")).Times(1)

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/exercises", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_HandleGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	ex := testExercises()[0]
	repoMock.EXPECT().Get(gomock.Any(), "ex-1").Return(&ex, nil).Times(1)
	repoMock.EXPECT().Get(gomock.Any(), "nope").Return(nil, catalog.ErrExerciseNotFound).Times(1)

	r := mux.NewRouter()
	r.HandleFunc("/api/exercises/{id}", h.HandleGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exercises/ex-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got workout.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, ex, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exercises/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, ex workout.Exercise) (*workout.Exercise, error) {
			assert.Equal(t, "Landmine Press", ex.Name)
			assert.Equal(t, "Shoulders", ex.MuscleGroup)
			require.NotNil(t, ex.Instructions)
			assert.Equal(t, "press it", *ex.Instructions)
			ex.ID = "new-id"
			return &ex, nil
		}).Times(1)

	rec := httptest.NewRecorder()
	body := `{"name":" Landmine Press ","muscle_group":"Shoulders","instructions":"press it"}`
	h.HandleAdd(rec, httptest.NewRequest(http.MethodPost, "/api/exercises", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got workout.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-id", got.ID)
}

func TestHandler_HandleAdd_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	repoMock.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrExerciseExists).Times(1)

	testCases := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{"bad json", `{"name":`, http.StatusBadRequest},
		{"missing name", `{"muscle_group":"Chest"}`, http.StatusBadRequest},
		{"blank muscle group", `{"name":"Dips","muscle_group":"  "}`, http.StatusBadRequest},
		{"duplicate", `{"name":"Dips","muscle_group":"Chest"}`, http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleAdd(rec, httptest.NewRequest(http.MethodPost, "/api/exercises", strings.NewReader(tc.body)))
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestHandler_HandleMuscleGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	h := catalog.NewHandler(repoMock)

	repoMock.EXPECT().MuscleGroups(gomock.Any()).Return([]string{"Arms", "Back", "Chest"}, nil).Times(1)

	rec := httptest.NewRecorder()
	h.HandleMuscleGroups(rec, httptest.NewRequest(http.MethodGet, "/api/muscle-groups", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Arms","Back","Chest"]`, rec.Body.String())
}

func TestHandler_HandleTemplates(t *testing.T) {
	h := catalog.NewHandler(nil)

	rec := httptest.NewRecorder()
	h.HandleTemplates(rec, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]workout.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Push/Pull/Legs (3-Day)", got["push_pull_legs"].Name)
	assert.Equal(t, 4, got["upper_lower"].DaysPerWeek)
	assert.Equal(t, []string{"Shoulders", "Arms", "Core"}, got["full_body"].Days[1].MuscleGroups)
}
