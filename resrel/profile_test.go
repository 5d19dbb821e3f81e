package resrel_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressources-relationnelles/resrel-go/internal/mocks"
	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func TestProfileUpdateOmitsEmptyFields(t *testing.T) {
	var gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = io.WriteString(w, `{"data":{"id":1,"name":"Alice B"}}`)
	})
	api := resrel.NewProfileAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	user, err := api.Update(context.Background(), resrel.ProfileUpdate{Name: "Alice B"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice B"}`, gotBody)
	assert.Equal(t, "Alice B", user.Name)
}

func TestProfileUpdatePasswordValidationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile/password", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"Les données fournies sont invalides.","errors":{"password":["Le mot de passe doit contenir au moins 8 caractères."]}}`)
	})
	api := resrel.NewProfileAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	err := api.UpdatePassword(context.Background(), resrel.PasswordUpdate{
		CurrentPassword:      "old",
		Password:             "short",
		PasswordConfirmation: "short",
	})
	require.Error(t, err)

	info := resrel.Classify(err)
	assert.Equal(t, resrel.ErrTypeValidation, info.Type)
	assert.Contains(t, info.Errors, "password")
}

func TestProfileUploadAvatar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile/avatar", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "avatar.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake png bytes", string(content))

		_, _ = io.WriteString(w, `{"data":{"id":1,"name":"Alice"}}`)
	})
	api := resrel.NewProfileAPI(newTestClient(t, mux, mocks.NewTokenStoreStub("tok")))

	user, err := api.UploadAvatar(context.Background(), "avatar.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}
