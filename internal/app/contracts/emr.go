package contracts

import (
	"context"

	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/dto/responses"
)

// EMRTokenProvider performs the JWT-bearer client-credentials exchange against
// the vendor's OAuth2 token endpoint. Every call is a fresh sign-and-exchange
// round trip; no token is cached between calls.
type EMRTokenProvider interface {
	RequestToken(ctx context.Context) (*responses.AccessToken, error)
	Close()
}

// EMRMedicationClient invokes the vendor's proprietary medication endpoints
// with a caller-supplied bearer token. Responses are returned as raw JSON
// text; interpreting the clinical content is the caller's responsibility.
type EMRMedicationClient interface {
	Invoke(ctx context.Context, baseURL, relativePath string, requestBody interface{}, accessToken string) (string, error)
	GetCurrentMedications(ctx context.Context, request *requests.CurrentMedicationsRequest, accessToken string) (string, error)
	GetMedicationAdministrationHistory(ctx context.Context, request *requests.MedicationAdministrationRequest, accessToken string) (string, error)
	Close()
}
