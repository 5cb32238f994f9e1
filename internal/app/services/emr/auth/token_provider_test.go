package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"medbridge-service/internal/app/config"
	"medbridge-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func generateTestKeyPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		t.Fatalf("failed to marshal PKCS8 key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return privateKey, string(pemBytes)
}

func newTestConfig(pemKey, tokenEndpoint string) *config.InternalConfig {
	return &config.InternalConfig{
		EMR: config.EMR{
			ClientID:             "test-client-id",
			TokenEndpoint:        tokenEndpoint,
			BaseURL:              "http://localhost:5560",
			PrivateKeyPEM:        pemKey,
			JWTExpirationSeconds: 240,
		},
	}
}

// countingTransport fails every request and counts how many were attempted.
type countingTransport struct {
	calls int32
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&t.calls, 1)
	return nil, errors.New("no network expected")
}

func decodeSegment(t *testing.T, segment string) map[string]interface{} {
	t.Helper()
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		t.Fatalf("failed to decode JWT segment: %v", err)
	}
	decoded := make(map[string]interface{})
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal JWT segment: %v", err)
	}
	return decoded
}

func TestNewEMRTokenProvider_ConfigValidation(t *testing.T) {
	_, pemKey := generateTestKeyPEM(t)

	t.Run("Missing Client ID", func(t *testing.T) {
		cfg := newTestConfig(pemKey, "http://localhost/token")
		cfg.EMR.ClientID = ""
		_, err := NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("Missing Token Endpoint", func(t *testing.T) {
		cfg := newTestConfig(pemKey, "  ")
		_, err := NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("Missing Private Key", func(t *testing.T) {
		cfg := newTestConfig("", "http://localhost/token")
		_, err := NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("Garbage Private Key", func(t *testing.T) {
		cfg := newTestConfig("not a key", "http://localhost/token")
		_, err := NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("Expiry Out Of Range", func(t *testing.T) {
		cfg := newTestConfig(pemKey, "http://localhost/token")
		cfg.EMR.JWTExpirationSeconds = 3601
		_, err := NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))

		cfg.EMR.JWTExpirationSeconds = 0
		_, err = NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("Unarmored Base64 Key Accepted", func(t *testing.T) {
		privateKey, _ := generateTestKeyPEM(t)
		der, err := x509.MarshalPKCS8PrivateKey(privateKey)
		assert.NoError(t, err)
		cfg := newTestConfig(base64.StdEncoding.EncodeToString(der), "http://localhost/token")
		_, err = NewEMRTokenProvider(cfg, nil, false, zap.NewNop())
		assert.NoError(t, err)
	})
}

func TestRequestToken_AssertionProtocol(t *testing.T) {
	privateKey, pemKey := generateTestKeyPEM(t)

	var capturedAssertion string
	var capturedGrantType string
	var capturedAssertionType string
	var capturedContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		capturedGrantType = r.PostFormValue("grant_type")
		capturedAssertionType = r.PostFormValue("client_assertion_type")
		capturedAssertion = r.PostFormValue("client_assertion")
		capturedContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"bearer","expires_in":3600,"scope":"system/*.read"}`))
	}))
	defer server.Close()

	cfg := newTestConfig(pemKey, server.URL)
	provider, err := NewEMRTokenProvider(cfg, server.Client(), false, zap.NewNop())
	assert.NoError(t, err)

	token, err := provider.RequestToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
	assert.Equal(t, "system/*.read", token.Scope)

	assert.Equal(t, "client_credentials", capturedGrantType)
	assert.Equal(t, "urn:ietf:params:oauth:client-assertion-type:jwt-bearer", capturedAssertionType)
	assert.Equal(t, "application/x-www-form-urlencoded", capturedContentType)

	segments := strings.Split(capturedAssertion, ".")
	assert.Len(t, segments, 3, "assertion must be a three-segment JWT")

	header := decodeSegment(t, segments[0])
	assert.Equal(t, "RS384", header["alg"])
	assert.Equal(t, "JWT", header["typ"])

	claims := decodeSegment(t, segments[1])
	assert.Equal(t, "test-client-id", claims["iss"])
	assert.Equal(t, "test-client-id", claims["sub"])
	assert.Equal(t, server.URL, claims["aud"])
	assert.NotEmpty(t, claims["jti"])

	iat := int64(claims["iat"].(float64))
	nbf := int64(claims["nbf"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, iat, nbf)
	assert.Equal(t, int64(240), exp-iat)

	// The signature must verify against the configured key.
	parsed, err := jwt.Parse(capturedAssertion, func(token *jwt.Token) (interface{}, error) {
		assert.Equal(t, "RS384", token.Method.Alg())
		return &privateKey.PublicKey, nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestRequestToken_JTIUniqueness(t *testing.T) {
	_, pemKey := generateTestKeyPEM(t)

	seenJTIs := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		segments := strings.Split(r.PostFormValue("client_assertion"), ".")
		claims := decodeSegment(t, segments[1])
		seenJTIs[claims["jti"].(string)] = true
		w.Write([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":60}`))
	}))
	defer server.Close()

	provider, err := NewEMRTokenProvider(newTestConfig(pemKey, server.URL), server.Client(), false, zap.NewNop())
	assert.NoError(t, err)

	const iterations = 100
	for i := 0; i < iterations; i++ {
		_, err := provider.RequestToken(context.Background())
		assert.NoError(t, err)
	}
	assert.Len(t, seenJTIs, iterations, "every call must produce a distinct jti")
}

func TestRequestToken_ErrorClassification(t *testing.T) {
	_, pemKey := generateTestKeyPEM(t)

	t.Run("Non-2xx Returns AuthenticationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_client"}`))
		}))
		defer server.Close()

		provider, err := NewEMRTokenProvider(newTestConfig(pemKey, server.URL), server.Client(), false, zap.NewNop())
		assert.NoError(t, err)

		_, err = provider.RequestToken(context.Background())
		assert.Error(t, err)
		customErr, ok := exceptions.AsCustomError(err)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindAuthentication, customErr.Kind)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, `{"error":"invalid_client"}`, customErr.ResponseBody)
	})

	t.Run("Unparseable 2xx Returns ResponseParseError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`this is not json`))
		}))
		defer server.Close()

		provider, err := NewEMRTokenProvider(newTestConfig(pemKey, server.URL), server.Client(), false, zap.NewNop())
		assert.NoError(t, err)

		_, err = provider.RequestToken(context.Background())
		assert.Equal(t, exceptions.KindResponseParse, exceptions.KindOf(err))
	})

	t.Run("2xx Without Access Token Returns ResponseParseError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"token_type":"bearer"}`))
		}))
		defer server.Close()

		provider, err := NewEMRTokenProvider(newTestConfig(pemKey, server.URL), server.Client(), false, zap.NewNop())
		assert.NoError(t, err)

		_, err = provider.RequestToken(context.Background())
		assert.Equal(t, exceptions.KindResponseParse, exceptions.KindOf(err))
	})
}

func TestRequestToken_CancelledContext(t *testing.T) {
	_, pemKey := generateTestKeyPEM(t)

	transport := &countingTransport{}
	httpClient := &http.Client{Transport: transport}

	provider, err := NewEMRTokenProvider(newTestConfig(pemKey, "http://localhost/token"), httpClient, false, zap.NewNop())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = provider.RequestToken(ctx)
	assert.Equal(t, exceptions.KindCancelled, exceptions.KindOf(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&transport.calls), "no network call may be attempted after cancellation")
}
