package constvars

// OAuth2 token exchange (vendor backend-services grant).
const (
	EMRGrantTypeClientCredentials = "client_credentials"
	EMRClientAssertionType        = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

	EMRFormFieldGrantType           = "grant_type"
	EMRFormFieldClientAssertionType = "client_assertion_type"
	EMRFormFieldClientAssertion     = "client_assertion"
)

// Fixed wire conventions observed on the vendor's medication endpoints.
const (
	EMRPatientIDTypeFHIR      = "FHIR"
	EMRContactIDTypeCSN       = "CSN"
	EMROrderIDTypeInternal    = "Internal"
	EMRProfileViewMedications = 2
)

// Relative paths of the two medication operations.
const (
	EMRPathCurrentMedications        = "api/epic/2014/Clinical/Patient/GETCURRENTMEDICATIONS/CurrentMedications"
	EMRPathMedicationAdministrations = "api/epic/2014/Clinical/Patient/GETMEDICATIONADMINISTRATIONHISTORY/MedicationAdministration"
)

// JWT assertion lifetime bounds in seconds.
const (
	EMRJWTExpirationSecondsDefault = 240
	EMRJWTExpirationSecondsMin     = 1
	EMRJWTExpirationSecondsMax     = 3600
)
