package medications

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type emrMedicationClient struct {
	BaseURL       string
	HTTPClient    *http.Client
	OwnsTransport bool
	Log           *zap.Logger
}

// NewEMRMedicationClient returns a client for the vendor's medication
// endpoints. When httpClient is nil the client creates and owns one with a
// 30s timeout; a borrowed transport is never closed by this component.
func NewEMRMedicationClient(internalConfig *config.InternalConfig, httpClient *http.Client, ownsTransport bool, logger *zap.Logger) contracts.EMRMedicationClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
		ownsTransport = true
	}
	return &emrMedicationClient{
		BaseURL:       internalConfig.EMR.BaseURL,
		HTTPClient:    httpClient,
		OwnsTransport: ownsTransport,
		Log:           logger,
	}
}

func (c *emrMedicationClient) GetCurrentMedications(ctx context.Context, request *requests.CurrentMedicationsRequest, accessToken string) (string, error) {
	return c.Invoke(ctx, c.BaseURL, constvars.EMRPathCurrentMedications, request, accessToken)
}

func (c *emrMedicationClient) GetMedicationAdministrationHistory(ctx context.Context, request *requests.MedicationAdministrationRequest, accessToken string) (string, error) {
	return c.Invoke(ctx, c.BaseURL, constvars.EMRPathMedicationAdministrations, request, accessToken)
}

// Invoke serializes requestBody, POSTs it to baseURL joined with relativePath
// under the given bearer token, and returns the raw response body text.
// Deserializing the clinical content is deferred to the caller.
func (c *emrMedicationClient) Invoke(ctx context.Context, baseURL, relativePath string, requestBody interface{}, accessToken string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("emrMedicationClient.Invoke called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, relativePath),
	)

	if strings.TrimSpace(baseURL) == "" {
		return "", exceptions.ErrMissingArgument("baseURL")
	}
	if strings.TrimSpace(relativePath) == "" {
		return "", exceptions.ErrMissingArgument("relativePath")
	}
	if requestBody == nil {
		return "", exceptions.ErrMissingArgument("requestBody")
	}
	if strings.TrimSpace(accessToken) == "" {
		return "", exceptions.ErrMissingArgument("accessToken")
	}
	if err := ctx.Err(); err != nil {
		return "", exceptions.ErrRequestCancelled(err)
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		c.Log.Error("emrMedicationClient.Invoke error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpointURL := JoinURL(baseURL, relativePath)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("emrMedicationClient.Invoke error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	req.Header.Set(constvars.HeaderAccept, constvars.AcceptJSONAndFHIRJSON)
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, accessToken))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", exceptions.ErrRequestCancelled(ctx.Err())
		}
		c.Log.Error("emrMedicationClient.Invoke error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpointURL),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("emrMedicationClient.Invoke error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrReadResponseBody(err)
	}
	body := string(bodyBytes)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("emrMedicationClient.Invoke vendor returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, relativePath),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrAPIEndpointStatus(resp.StatusCode, body, resp.Header)
	}

	// These endpoints never legitimately return an empty success body.
	if body == "" {
		return "", exceptions.ErrEmptyResponseBody()
	}

	c.Log.Info("emrMedicationClient.Invoke succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, relativePath),
		zap.Int(constvars.LoggingBodyLengthKey, len(body)),
	)
	return body, nil
}

// Close releases the transport when this client owns it.
func (c *emrMedicationClient) Close() {
	if c.OwnsTransport {
		c.HTTPClient.CloseIdleConnections()
	}
}

// JoinURL trims one trailing slash from baseURL and one leading slash from
// relativePath, then joins with a single slash, so the usual boundary-slash
// variations all produce the same URL.
func JoinURL(baseURL, relativePath string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(relativePath, "/")
}
