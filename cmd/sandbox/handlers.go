package main

import (
	"encoding/base64"
	"net/http"
	"strings"

	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sandboxHandler struct {
	Log *zap.Logger
}

type oauthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func newSandboxHandler(zapLogger *zap.Logger) *sandboxHandler {
	return &sandboxHandler{Log: zapLogger}
}

// handleToken mimics the vendor token endpoint: it checks the form fields and
// the assertion's shape and alg header, then issues a throwaway bearer token.
func (h *sandboxHandler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeJSON(w, constvars.StatusBadRequest, &oauthError{Error: "invalid_request", ErrorDescription: "malformed form body"})
		return
	}

	if r.PostFormValue(constvars.EMRFormFieldGrantType) != constvars.EMRGrantTypeClientCredentials {
		h.writeJSON(w, constvars.StatusBadRequest, &oauthError{Error: "unsupported_grant_type"})
		return
	}
	if r.PostFormValue(constvars.EMRFormFieldClientAssertionType) != constvars.EMRClientAssertionType {
		h.writeJSON(w, constvars.StatusBadRequest, &oauthError{Error: "invalid_request", ErrorDescription: "unexpected client_assertion_type"})
		return
	}

	assertion := r.PostFormValue(constvars.EMRFormFieldClientAssertion)
	if err := checkAssertionShape(assertion); err != "" {
		h.Log.Warn("sandboxHandler.handleToken rejected assertion", zap.String("reason", err))
		h.writeJSON(w, constvars.StatusBadRequest, &oauthError{Error: "invalid_client", ErrorDescription: err})
		return
	}

	h.writeJSON(w, constvars.StatusOK, &responses.AccessToken{
		AccessToken: uuid.NewString(),
		TokenType:   "bearer",
		ExpiresIn:   3600,
		Scope:       "system/MedicationRequest.read",
	})
}

func (h *sandboxHandler) handleCurrentMedications(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	h.writeRaw(w, `{"hasProblemLoadingOrders":false,"isPatientAdmitted":true,"medicationOrders":[{"ids":[{"id":"101","type":"Internal"}],"name":"Amoxicillin 500 mg capsule","dose":{"value":"500","unit":"mg"},"route":"Oral","frequency":"TID","isActive":true}]}`)
}

func (h *sandboxHandler) handleMedicationAdministrations(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	h.writeRaw(w, `{"Orders":[{"orderID":{"id":"101","type":"Internal"},"name":"Amoxicillin 500 mg capsule","isActive":true,"isInfusion":false,"isMixture":false,"medicationAdministrations":[{"action":"Given","administrationInstant":"2026-08-29T08:00:00Z","dose":{"value":"500","unit":"mg"},"mappedAction":"administered"}]}]}`)
}

func (h *sandboxHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	authorization := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authorization, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer ")) == "" {
		h.writeJSON(w, constvars.StatusUnauthorized, &oauthError{Error: "invalid_token"})
		return false
	}
	return true
}

func (h *sandboxHandler) writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Log.Error("sandboxHandler error encoding response", zap.Error(err))
	}
}

func (h *sandboxHandler) writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(body))
}

// checkAssertionShape verifies the assertion has three dot-separated segments,
// an RS384/JWT header, and iss == sub. Returns a reason string, empty if ok.
func checkAssertionShape(assertion string) string {
	if assertion == "" {
		return "client_assertion is required"
	}
	segments := strings.Split(assertion, ".")
	if len(segments) != 3 {
		return "client_assertion must be a three-segment JWT"
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(segments[0])
	if err != nil {
		return "client_assertion header is not base64url"
	}
	var header struct {
		Alg string `json:"alg"`
		Typ string `json:"typ"`
	}
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return "client_assertion header is not JSON"
	}
	if header.Alg != "RS384" {
		return "client_assertion must be signed with RS384"
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return "client_assertion payload is not base64url"
	}
	var claims struct {
		Iss string `json:"iss"`
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return "client_assertion payload is not JSON"
	}
	if claims.Iss == "" || claims.Iss != claims.Sub {
		return "client_assertion iss and sub must both equal the client id"
	}
	return ""
}
