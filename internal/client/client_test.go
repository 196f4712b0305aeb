package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"auction-storefront/internal/session"

	"github.com/c2h5oh/datasize"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a server with handler and returns a client pointing at it
func newTestClient(t *testing.T, token string, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", session.New(session.NewMemoryStore(token)), opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListAuctions(t *testing.T) {
	auctions := []models.Auction{
		{ID: 1, Model: "X1", StartingPrice: 100, ProductType: &models.ProductType{ID: 1, Name: "Laptop"}},
		{ID: 2, Model: "X2", StartingPrice: 50, Closed: true},
	}

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		require.NoError(t, err)
		writeJSON(w, http.StatusOK, auctions)
	})

	got, err := c.ListAuctions(context.Background())
	require.NoError(t, err)
	require.Equal(t, auctions, got)

	open, err := c.OpenAuctions(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, int64(1), open[0].ID)
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Auction{})
	})

	got, err := c.ListAuctions(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		sentinel    error
	}{
		{
			name:        "json_message",
			status:      http.StatusBadRequest,
			body:        `{"message":"Cannot bid on a closed product"}`,
			wantMessage: "Cannot bid on a closed product",
			sentinel:    auctionerrors.ErrValidation,
		},
		{
			name:        "json_error_field",
			status:      http.StatusBadRequest,
			body:        `{"error":"Price must be greater than 0"}`,
			wantMessage: "Price must be greater than 0",
			sentinel:    auctionerrors.ErrValidation,
		},
		{
			name:        "import_summary_errors",
			status:      http.StatusBadRequest,
			body:        `{"processed":0,"errors":["Missing required CSV header: sn"]}`,
			wantMessage: "Missing required CSV header: sn",
			sentinel:    auctionerrors.ErrValidation,
		},
		{
			name:        "non_json_body",
			status:      http.StatusNotFound,
			body:        `<html>nope</html>`,
			wantMessage: "request failed with status 404",
			sentinel:    auctionerrors.ErrNotFound,
		},
		{
			name:        "empty_body_unauthorized",
			status:      http.StatusUnauthorized,
			body:        ``,
			wantMessage: "request failed with status 401",
			sentinel:    auctionerrors.ErrUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := c.GetAuction(context.Background(), 7)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.sentinel), "got %v", err)

			var apiErr *auctionerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tc.status, apiErr.Status)
			require.Equal(t, tc.wantMessage, auctionerrors.Message(err))
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, session.New(session.NewMemoryStore("")))
	_, err := c.ListAuctions(context.Background())
	require.True(t, errors.Is(err, auctionerrors.ErrTransport))
}

func TestClient_Timeout(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, []models.Auction{})
	}, WithTimeout(20*time.Millisecond))

	_, err := c.ListAuctions(context.Background())
	require.True(t, errors.Is(err, auctionerrors.ErrTransport))
}

func TestClient_PlaceBid(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bids", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.PlaceBidRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, models.Bid{ID: 9, ProductID: req.ProductID, AppUserEmail: "u@example.com", Price: req.Price})
	})

	tests := []struct {
		name      string
		amount    float64
		wantErr   error
		wantCalls int32
	}{
		{name: "valid", amount: 150, wantCalls: 1},
		{name: "zero", amount: 0, wantErr: auctionerrors.ErrInvalidBidAmount, wantCalls: 1},
		{name: "negative", amount: -5, wantErr: auctionerrors.ErrInvalidBidAmount, wantCalls: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := c.PlaceBid(context.Background(), 3, tc.amount)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr))
			} else {
				require.NoError(t, err)
				require.Equal(t, int64(3), bid.ProductID)
				require.Equal(t, tc.amount, bid.Price)
			}
			require.Equal(t, tc.wantCalls, calls.Load())
		})
	}
}

func TestValidateAmount(t *testing.T) {
	require.NoError(t, ValidateAmount(0.01))
	require.Error(t, ValidateAmount(0))
	require.Error(t, ValidateAmount(-1))
	require.Error(t, ValidateAmount(math.NaN()))
	require.Error(t, ValidateAmount(math.Inf(1)))
}

func TestClient_CloseAuction(t *testing.T) {
	c := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products/4/close", r.URL.Path)
		writeJSON(w, http.StatusOK, models.Auction{ID: 4, Closed: true})
	})

	got, err := c.CloseAuction(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, got.Closed)
}

func TestClient_GetImageURL(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/5/image-url", r.URL.Path)
		writeJSON(w, http.StatusOK, models.ImageURL{ProductID: "5", ImageObjectKey: "k", ImageURL: "https://img/5"})
	})

	got, err := c.GetImageURL(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "https://img/5", got.ImageURL)
}

func TestClient_ImportCSV(t *testing.T) {
	csv := []byte("Type,model,sn,desc,st_price\nLaptop,X1,SN1,nice,100\n")

	c := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/import", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "products.csv", header.Filename)
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, csv, got)
		writeJSON(w, http.StatusOK, models.ImportResult{Processed: 1, Created: 1, Errors: []string{}})
	}, WithMaxUploadSize(1*datasize.KB))

	result, err := c.ImportCSV(context.Background(), "products.csv", csv)
	require.NoError(t, err)
	require.Equal(t, 1, result.Processed)
	require.Equal(t, 1, result.Created)
}

func TestClient_ImportRejectedLocally(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, WithMaxUploadSize(8*datasize.B))

	_, err := c.ImportCSV(context.Background(), "p.csv", nil)
	require.True(t, errors.Is(err, auctionerrors.ErrMissingFile))

	_, err = c.ImportUsersCSV(context.Background(), "u.csv", []byte("way more than eight bytes"))
	require.True(t, errors.Is(err, auctionerrors.ErrFileTooLarge))

	require.Zero(t, calls.Load())
}

func TestClient_ExportCSV(t *testing.T) {
	body := "type, model, serial, description, starting price, email, final price\nLaptop, X1, SN1, nice, 100, , \n"

	c := newTestClient(t, "admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		switch r.URL.Path {
		case "/api/products/export", "/api/products/1/export":
			_, _ = io.WriteString(w, body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	all, err := c.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t, body, string(all))

	one, err := c.ExportAuctionCSV(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, body, string(one))

	_, err = c.ExportAuctionCSV(context.Background(), 2)
	require.True(t, IsNotFound(err))
}

func TestClient_LoginLogout(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin@example.com",
		"role": []string{"ROLE_ADMIN"},
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	var logoutAuth string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "pw" {
				writeJSON(w, http.StatusUnauthorized, models.ErrorBody{Message: "Bad credentials"})
				return
			}
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
		case "/api/auth/logout":
			logoutAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}
	})

	_, err = c.Login(context.Background(), "admin@example.com", "wrong")
	require.True(t, errors.Is(err, auctionerrors.ErrUnauthorized))
	require.Equal(t, "Bad credentials", auctionerrors.Message(err))
	require.False(t, c.Session().IsAdmin())

	resp, err := c.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, token, resp.Token)
	require.True(t, c.Session().IsAdmin())

	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, "Bearer "+token, logoutAuth)
	require.False(t, c.Session().IsAuthenticated())

	// logging out twice is a local no-op
	require.NoError(t, c.Logout(context.Background()))
}

func TestClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Auction{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ListAuctions(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled) || errors.Is(err, auctionerrors.ErrTransport))
}

func TestClient_CookiesSurviveCustomHTTPClient(t *testing.T) {
	var sawCookie atomic.Bool
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			http.SetCookie(w, &http.Cookie{Name: "SESSION", Value: "abc", Path: "/"})
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: "tok"})
			return
		}
		if cookie, err := r.Cookie("SESSION"); err == nil && cookie.Value == "abc" {
			sawCookie.Store(true)
		}
		writeJSON(w, http.StatusOK, []models.Auction{})
	}

	custom := &http.Client{}
	c := newTestClient(t, "", handler, WithHTTPClient(custom), WithTimeout(2*time.Second))

	_, err := c.Login(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	_, err = c.ListAuctions(context.Background())
	require.NoError(t, err)

	require.True(t, sawCookie.Load())
	require.Nil(t, custom.Jar, "the caller's client is left untouched")
	require.Zero(t, custom.Timeout)
}

func TestClient_NilHTTPClientIgnored(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Auction{})
	}, WithHTTPClient(nil), WithTimeout(time.Second))

	_, err := c.ListAuctions(context.Background())
	require.NoError(t, err)
}
