package requests

import (
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/utils"
)

// Identifier is a tagged vendor reference, e.g. {id: "123", type: "Internal"}.
type Identifier struct {
	ID   string `json:"id" validate:"required,notblank"`
	Type string `json:"type" validate:"required,notblank"`
}

type CurrentMedicationsRequest struct {
	PatientID     string `json:"patientID" validate:"required,notblank"`
	PatientIDType string `json:"patientIDType" validate:"required,notblank"`
	UserID        string `json:"userID,omitempty"`
	UserIDType    string `json:"userIDType,omitempty"`
	ProfileView   int    `json:"profileView" validate:"required"`
	LookbackDays  int    `json:"numberDaysToIncludeDiscontinuedAndEndedOrders" validate:"gte=0"`
}

type MedicationAdministrationRequest struct {
	PatientID     string       `json:"patientID" validate:"required,notblank"`
	PatientIDType string       `json:"patientIDType" validate:"required,notblank"`
	ContactID     string       `json:"contactID" validate:"required,notblank"`
	ContactIDType string       `json:"contactIDType" validate:"required,notblank"`
	OrderIDs      []Identifier `json:"orderIDs" validate:"required,min=1,dive"`
}

// NewCurrentMedicationsRequest builds a validated request with the vendor's
// fixed conventions applied: patientIDType is always "FHIR" and profileView is
// always 2. userID is optional; when set, userIDType defaults to "FHIR".
func NewCurrentMedicationsRequest(patientID, userID string, lookbackDays int) (*CurrentMedicationsRequest, error) {
	request := &CurrentMedicationsRequest{
		PatientID:     patientID,
		PatientIDType: constvars.EMRPatientIDTypeFHIR,
		ProfileView:   constvars.EMRProfileViewMedications,
		LookbackDays:  lookbackDays,
	}
	if userID != "" {
		request.UserID = userID
		request.UserIDType = constvars.EMRPatientIDTypeFHIR
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

// NewMedicationAdministrationRequest builds a validated request. contactIDType
// defaults to "CSN" when empty; order ids are tagged with type "Internal".
func NewMedicationAdministrationRequest(patientID, contactID, contactIDType string, orderIDs []string) (*MedicationAdministrationRequest, error) {
	if contactIDType == "" {
		contactIDType = constvars.EMRContactIDTypeCSN
	}

	identifiers := make([]Identifier, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		identifiers = append(identifiers, Identifier{
			ID:   orderID,
			Type: constvars.EMROrderIDTypeInternal,
		})
	}

	request := &MedicationAdministrationRequest{
		PatientID:     patientID,
		PatientIDType: constvars.EMRPatientIDTypeFHIR,
		ContactID:     contactID,
		ContactIDType: contactIDType,
		OrderIDs:      identifiers,
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
