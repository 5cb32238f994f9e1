// Command example wires the EMR clients together against a configured vendor
// (by default the local sandbox) and walks the full flow: token exchange,
// current medications, administration history.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"time"

	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/drivers/logger"
	"medbridge-service/internal/app/services/emr/auth"
	"medbridge-service/internal/app/services/emr/medications"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	if internalConfig.EMR.ClientID == "" {
		internalConfig.EMR.ClientID = "example-client"
	}
	// The sandbox checks assertion shape, not signatures, so an ephemeral key
	// is enough when none is configured.
	if internalConfig.EMR.PrivateKeyPEM == "" {
		pemKey, err := generateEphemeralKeyPEM()
		if err != nil {
			bootLog.Fatalf("failed to generate ephemeral RSA key: %v", err)
		}
		internalConfig.EMR.PrivateKeyPEM = pemKey
	}

	// One shared transport, borrowed by both components.
	httpClient := &http.Client{Timeout: 15 * time.Second}
	defer httpClient.CloseIdleConnections()

	tokenProvider, err := auth.NewEMRTokenProvider(internalConfig, httpClient, false, zapLogger)
	if err != nil {
		bootLog.Fatalf("failed to build token provider: %v", err)
	}
	defer tokenProvider.Close()

	medicationClient := medications.NewEMRMedicationClient(internalConfig, httpClient, false, zapLogger)
	defer medicationClient.Close()

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())

	token, err := tokenProvider.RequestToken(ctx)
	if err != nil {
		bootLog.Fatalf("token exchange failed: %v", err)
	}
	bootLog.Infof("obtained %s token, expires in %ds", token.TokenType, token.ExpiresIn)

	currentMedsRequest, err := requests.NewCurrentMedicationsRequest("eXal9examplePatientFhirId", "", 30)
	if err != nil {
		bootLog.Fatalf("invalid current medications request: %v", err)
	}
	currentMedsBody, err := medicationClient.GetCurrentMedications(ctx, currentMedsRequest, token.AccessToken)
	if err != nil {
		bootLog.Fatalf("current medications call failed: %v", err)
	}
	bootLog.Infof("current medications response: %s", currentMedsBody)

	administrationRequest, err := requests.NewMedicationAdministrationRequest("eXal9examplePatientFhirId", "20035", "", []string{"101"})
	if err != nil {
		bootLog.Fatalf("invalid administration request: %v", err)
	}
	administrationBody, err := medicationClient.GetMedicationAdministrationHistory(ctx, administrationRequest, token.AccessToken)
	if err != nil {
		bootLog.Fatalf("administration history call failed: %v", err)
	}
	bootLog.Infof("administration history response: %s", administrationBody)
}

func generateEphemeralKeyPEM() (string, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return string(pemBytes), nil
}
