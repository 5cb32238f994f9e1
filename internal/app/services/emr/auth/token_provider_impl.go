package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/responses"
	"medbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type emrTokenProvider struct {
	ClientID      string
	TokenEndpoint string
	JWTExpiration time.Duration
	PrivateKey    *rsa.PrivateKey
	HTTPClient    *http.Client
	OwnsTransport bool
	Log           *zap.Logger
}

// NewEMRTokenProvider validates the EMR configuration, parses the private key
// material, and returns a provider bound to the given HTTP client.
//
// When httpClient is nil the provider creates and owns one with a 30s timeout.
// When the caller supplies a client, ownsTransport states whether Close may
// release it: a borrowed transport is never closed by this component.
func NewEMRTokenProvider(internalConfig *config.InternalConfig, httpClient *http.Client, ownsTransport bool, logger *zap.Logger) (contracts.EMRTokenProvider, error) {
	emrConfig := internalConfig.EMR

	if strings.TrimSpace(emrConfig.ClientID) == "" {
		return nil, exceptions.ErrConfigMissingClientID()
	}
	if strings.TrimSpace(emrConfig.TokenEndpoint) == "" {
		return nil, exceptions.ErrConfigMissingTokenEndpoint()
	}
	if emrConfig.JWTExpirationSeconds < constvars.EMRJWTExpirationSecondsMin ||
		emrConfig.JWTExpirationSeconds > constvars.EMRJWTExpirationSecondsMax {
		return nil, exceptions.ErrConfigInvalidJWTExpiry()
	}

	privateKey, err := parseRSAPrivateKey(emrConfig.PrivateKeyPEM)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
		ownsTransport = true
	}

	return &emrTokenProvider{
		ClientID:      emrConfig.ClientID,
		TokenEndpoint: emrConfig.TokenEndpoint,
		JWTExpiration: time.Duration(emrConfig.JWTExpirationSeconds) * time.Second,
		PrivateKey:    privateKey,
		HTTPClient:    httpClient,
		OwnsTransport: ownsTransport,
		Log:           logger,
	}, nil
}

// RequestToken performs a fresh sign-and-exchange round trip. The vendor
// requires iss and sub to both equal the client id; this is a vendor
// convention, not general JWT practice.
func (p *emrTokenProvider) RequestToken(ctx context.Context) (*responses.AccessToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("emrTokenProvider.RequestToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, p.ClientID),
	)

	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrRequestCancelled(err)
	}

	assertion, err := p.signAssertion()
	if err != nil {
		p.Log.Error("emrTokenProvider.RequestToken error signing assertion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form := url.Values{}
	form.Set(constvars.EMRFormFieldGrantType, constvars.EMRGrantTypeClientCredentials)
	form.Set(constvars.EMRFormFieldClientAssertionType, constvars.EMRClientAssertionType)
	form.Set(constvars.EMRFormFieldClientAssertion, assertion)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		p.Log.Error("emrTokenProvider.RequestToken error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, exceptions.ErrRequestCancelled(ctx.Err())
		}
		p.Log.Error("emrTokenProvider.RequestToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		p.Log.Error("emrTokenProvider.RequestToken error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		p.Log.Error("emrTokenProvider.RequestToken token endpoint returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrTokenEndpointStatus(resp.StatusCode, string(bodyBytes))
	}

	accessToken := new(responses.AccessToken)
	if err := json.Unmarshal(bodyBytes, accessToken); err != nil {
		return nil, exceptions.ErrTokenResponseInvalid(err, string(bodyBytes))
	}
	if accessToken.AccessToken == "" {
		return nil, exceptions.ErrTokenResponseInvalid(nil, string(bodyBytes))
	}

	p.Log.Info("emrTokenProvider.RequestToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenTypeKey, accessToken.TokenType),
		zap.Int(constvars.LoggingExpiresInKey, accessToken.ExpiresIn),
	)
	return accessToken, nil
}

// Close releases the transport when this provider owns it. Borrowed
// transports are left untouched.
func (p *emrTokenProvider) Close() {
	if p.OwnsTransport {
		p.HTTPClient.CloseIdleConnections()
	}
}

func (p *emrTokenProvider) signAssertion() (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss": p.ClientID,
		"sub": p.ClientID,
		"aud": p.TokenEndpoint,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(p.JWTExpiration).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS384, claims)
	signed, err := token.SignedString(p.PrivateKey)
	if err != nil {
		return "", exceptions.ErrSignClientAssertion(err)
	}
	return signed, nil
}

// parseRSAPrivateKey decodes PKCS#8 PEM key material into an RSA private key.
// Material without PEM armor is accepted as raw base64 DER.
func parseRSAPrivateKey(pemMaterial string) (*rsa.PrivateKey, error) {
	trimmed := strings.TrimSpace(pemMaterial)
	if trimmed == "" {
		return nil, exceptions.ErrConfigMissingPrivateKey()
	}

	var der []byte
	if block, _ := pem.Decode([]byte(trimmed)); block != nil {
		der = block.Bytes
	} else {
		decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(trimmed))
		if err != nil {
			return nil, exceptions.ErrConfigInvalidPrivateKey(err)
		}
		der = decoded
	}

	keyAny, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		// Older key material may be PKCS#1.
		rsaKey, pkcs1Err := x509.ParsePKCS1PrivateKey(der)
		if pkcs1Err != nil {
			return nil, exceptions.ErrConfigInvalidPrivateKey(err)
		}
		return rsaKey, nil
	}

	rsaKey, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, exceptions.ErrConfigInvalidPrivateKey(fmt.Errorf("PKCS8 key is not RSA"))
	}
	return rsaKey, nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
