package requests

import (
	"testing"

	"medbridge-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestNewCurrentMedicationsRequest(t *testing.T) {
	t.Run("Applies Fixed Wire Conventions", func(t *testing.T) {
		request, err := NewCurrentMedicationsRequest("patient-1", "", 30)
		assert.NoError(t, err)
		assert.Equal(t, "patient-1", request.PatientID)
		assert.Equal(t, "FHIR", request.PatientIDType)
		assert.Equal(t, 2, request.ProfileView)
		assert.Equal(t, 30, request.LookbackDays)
		assert.Empty(t, request.UserID)
		assert.Empty(t, request.UserIDType)
	})

	t.Run("Optional User Gets FHIR Type", func(t *testing.T) {
		request, err := NewCurrentMedicationsRequest("patient-1", "user-9", 7)
		assert.NoError(t, err)
		assert.Equal(t, "user-9", request.UserID)
		assert.Equal(t, "FHIR", request.UserIDType)
	})

	t.Run("Rejects Missing Patient ID", func(t *testing.T) {
		_, err := NewCurrentMedicationsRequest("", "", 30)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindArgument, exceptions.KindOf(err))
	})

	t.Run("Rejects Blank Patient ID", func(t *testing.T) {
		_, err := NewCurrentMedicationsRequest("   ", "", 30)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindArgument, exceptions.KindOf(err))
	})

	t.Run("Rejects Negative Lookback", func(t *testing.T) {
		_, err := NewCurrentMedicationsRequest("patient-1", "", -1)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindArgument, exceptions.KindOf(err))
	})
}

func TestNewMedicationAdministrationRequest(t *testing.T) {
	t.Run("Defaults Contact Type To CSN And Tags Orders Internal", func(t *testing.T) {
		request, err := NewMedicationAdministrationRequest("patient-1", "20035", "", []string{"101", "102"})
		assert.NoError(t, err)
		assert.Equal(t, "FHIR", request.PatientIDType)
		assert.Equal(t, "CSN", request.ContactIDType)
		assert.Len(t, request.OrderIDs, 2)
		assert.Equal(t, Identifier{ID: "101", Type: "Internal"}, request.OrderIDs[0])
		assert.Equal(t, Identifier{ID: "102", Type: "Internal"}, request.OrderIDs[1])
	})

	t.Run("Keeps Explicit Contact Type", func(t *testing.T) {
		request, err := NewMedicationAdministrationRequest("patient-1", "20035", "UCI", []string{"101"})
		assert.NoError(t, err)
		assert.Equal(t, "UCI", request.ContactIDType)
	})

	t.Run("Rejects Empty Order List", func(t *testing.T) {
		_, err := NewMedicationAdministrationRequest("patient-1", "20035", "", nil)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindArgument, exceptions.KindOf(err))
	})

	t.Run("Rejects Missing Contact ID", func(t *testing.T) {
		_, err := NewMedicationAdministrationRequest("patient-1", "", "", []string{"101"})
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindArgument, exceptions.KindOf(err))
	})
}
