package resrel_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressources-relationnelles/resrel-go/internal/mocks"
	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func TestActivitiesListUpcomingFilter(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"data":[{"id":3,"title":"Atelier parentalité","participant_count":4,"is_participant":false}],"current_page":1,"last_page":1,"per_page":20,"total":1}`)
	})
	api := resrel.NewActivitiesAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	upcoming := true
	page, err := api.List(context.Background(), &resrel.ActivityListOptions{Upcoming: &upcoming})
	require.NoError(t, err)
	assert.Equal(t, "upcoming=true", gotQuery)
	require.Len(t, page.Data, 1)
	assert.False(t, page.Data[0].IsParticipant)
}

func TestActivitiesJoinAndLeave(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities/3/join", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = io.WriteString(w, `{"message":"Inscription confirmée.","data":{"participant_count":5}}`)
	})
	mux.HandleFunc("/api/activities/3/leave", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = io.WriteString(w, `{"message":"Désinscription confirmée."}`)
	})
	api := resrel.NewActivitiesAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	joined, err := api.Join(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Inscription confirmée.", joined.Message)
	assert.NotNil(t, joined.Data)

	left, err := api.Leave(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Désinscription confirmée.", left.Message)
	assert.Nil(t, left.Data)
}

func TestActivitiesJoinFullSurfacesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities/3/join", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"Activité complète."}`)
	})
	api := resrel.NewActivitiesAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	_, err := api.Join(context.Background(), 3)
	var apiErr *resrel.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	info := resrel.Classify(err)
	assert.Equal(t, resrel.ErrTypeAPI, info.Type)
	assert.Equal(t, "Activité complète.", info.Message)
}

func TestActivitiesParticipants(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities/3/participants", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]}`)
	})
	api := resrel.NewActivitiesAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	users, err := api.Participants(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)
}
