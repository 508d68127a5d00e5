package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    status,
		"success": success,
		"message": message,
		"data":    data,
	})
}

var validUser = map[string]any{
	"userId":               7,
	"firstName":            "Anna",
	"lastName":             "Smith",
	"email":                "anna@example.com",
	"birthDate":            nil,
	"enrollmentNumber":     nil,
	"picture":              nil,
	"userType":             "STUDENT",
	"subscription":         "FREE",
	"profileInfoCompleted": "true",
	"collegeName":          "MIT",
	"semester":             3,
	"createPasswordTrue":   true,
}

func newTestServer(t *testing.T, register func(r *mux.Router)) *HTTPClient {
	t.Helper()
	r := mux.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/", nil, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_BadURL(t *testing.T) {
	for _, u := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		_, err := NewHTTPClient(u, nil, time.Second)
		require.Error(t, err, u)
	}
}

func TestLogin_Success(t *testing.T) {
	var got models.LoginRequest
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			writeEnvelope(w, http.StatusOK, true, "ok", map[string]any{"token": "tok", "user": validUser})
		}).Methods(http.MethodPost)
	})

	res, err := c.Login(context.Background(), "anna@example.com", "password1")
	require.NoError(t, err)

	assert.Equal(t, models.LoginRequest{Email: "anna@example.com", Password: "password1"}, got)
	assert.Equal(t, "tok", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(7), res.User.UserID)
	assert.Equal(t, models.ProfileCompleted, res.User.ProfileInfoCompleted)
}

func TestLogin_MissingTokenIsBadResponse(t *testing.T) {
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, true, "ok", map[string]any{"user": validUser})
		}).Methods(http.MethodPost)
	})

	_, err := c.Login(context.Background(), "a@b.co", "password1")
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestSignup_Success(t *testing.T) {
	var got models.SignupRequest
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/auth/signup", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			writeEnvelope(w, http.StatusCreated, true, "created", map[string]any{"token": "tok"})
		}).Methods(http.MethodPost)
	})

	in := models.SignupRequest{FirstName: "Anna", LastName: "Smith", Email: "anna@example.com", Password: "password1"}
	res, err := c.Signup(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, "tok", res.Token)
	assert.Nil(t, res.User)
}

func TestGetProfile_Success(t *testing.T) {
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/profile/getUser", func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, true, "", validUser)
		}).Methods(http.MethodGet)
	})

	u, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MIT", u.CollegeName)
	assert.Equal(t, 3, u.Semester)
	assert.True(t, u.ProfileComplete())
}

func TestGetProfile_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{name: "null data", data: nil},
		{name: "missing user id", data: map[string]any{"email": "a@b.co"}},
		{name: "bad completion flag", data: map[string]any{"userId": 1, "email": "a@b.co", "profileInfoCompleted": "yes"}},
		{name: "bad subscription", data: map[string]any{"userId": 1, "email": "a@b.co", "subscription": "GOLD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(r *mux.Router) {
				r.HandleFunc("/profile/getUser", func(w http.ResponseWriter, _ *http.Request) {
					writeEnvelope(w, http.StatusOK, true, "", tt.data)
				})
			})

			u, err := c.GetProfile(context.Background())
			require.ErrorIs(t, err, ErrBadResponse)
			assert.Nil(t, u)
		})
	}
}

func TestGetProfile_NotJSON(t *testing.T) {
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/profile/getUser", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>gateway</html>"))
		})
	})

	_, err := c.GetProfile(context.Background())
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusUnauthorized, func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnauthorized) }},
		{http.StatusForbidden, func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnauthorized) }},
		{http.StatusInternalServerError, func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnavailable) }},
		{http.StatusBadGateway, func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnavailable) }},
		{http.StatusTooManyRequests, func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnavailable) }},
		{http.StatusBadRequest, func(t *testing.T, err error) {
			apiErr, ok := IsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, "Email already registered", apiErr.Message)
		}},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestServer(t, func(r *mux.Router) {
				r.HandleFunc("/profile/getUser", func(w http.ResponseWriter, _ *http.Request) {
					writeEnvelope(w, tt.status, false, "Email already registered", nil)
				})
			})

			_, err := c.GetProfile(context.Background())
			tt.check(t, err)
		})
	}
}

func TestSuccessFalseIsAPIError(t *testing.T) {
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/college/names", func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, false, "maintenance", nil)
		})
	})

	_, err := c.ListColleges(context.Background())
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "maintenance", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "maintenance")
}

func TestConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, nil, time.Second)
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCancelledContextIsUnavailable(t *testing.T) {
	block := make(chan struct{})
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/profile/getUser", func(w http.ResponseWriter, req *http.Request) {
			select {
			case <-block:
			case <-req.Context().Done():
			}
		})
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetProfile(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUpdateProfile_Success(t *testing.T) {
	var got map[string]any
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/profile/updateUser", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			writeEnvelope(w, http.StatusOK, true, "updated", validUser)
		}).Methods(http.MethodPut)
	})

	u, err := c.UpdateProfile(context.Background(), models.ProfileUpdate{
		Phone:                "9876543210",
		CurrentSemester:      3,
		CollegeName:          "MIT",
		ProfileInfoCompleted: models.ProfileCompleted,
	})
	require.NoError(t, err)
	assert.True(t, u.ProfileComplete())

	assert.Equal(t, "9876543210", got["phone"])
	assert.Equal(t, float64(3), got["currentSemester"])
	assert.Equal(t, "true", got["profileInfoCompleted"])
	assert.NotContains(t, got, "otp")
}

func TestListColleges(t *testing.T) {
	c := newTestServer(t, func(r *mux.Router) {
		r.HandleFunc("/college/names", func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, true, "", []map[string]any{
				{"institute_id": 1, "name": "MIT"},
				{"institute_id": 2, "name": "IIT Bombay"},
			})
		}).Methods(http.MethodGet)
	})

	cs, err := c.ListColleges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.College{{InstituteID: 1, Name: "MIT"}, {InstituteID: 2, Name: "IIT Bombay"}}, cs)
}
