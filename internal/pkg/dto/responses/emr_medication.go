package responses

// The structures below are read-only reflections of the vendor's medication
// JSON. Every field may be absent; booleans are pointers so absence is
// distinguishable from false.

type Identifier struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
}

// MeasuredValue keeps the vendor's string-encoded numerics as strings. The
// vendor does not guarantee canonical numeric formatting, so parsing here
// would risk precision loss.
type MeasuredValue struct {
	Value string `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

type CurrentMedicationsResponse struct {
	HasProblemLoadingOrders                   *bool             `json:"hasProblemLoadingOrders,omitempty"`
	ProblemLoadingOrdersInformation           string            `json:"problemLoadingOrdersInformation,omitempty"`
	IncludeDiscontinuedAndEndedOrdersFromDate string            `json:"includeDiscontinuedAndEndedOrdersFromDate,omitempty"`
	IncludeDiscontinuedAndEndedOrdersToDate   string            `json:"includeDiscontinuedAndEndedOrdersToDate,omitempty"`
	IsPatientAdmitted                         *bool             `json:"isPatientAdmitted,omitempty"`
	MedicationOrders                          []MedicationOrder `json:"medicationOrders,omitempty"`
}

type MedicationOrder struct {
	IDs            []Identifier   `json:"ids,omitempty"`
	Name           string         `json:"name,omitempty"`
	Dose           *MeasuredValue `json:"dose,omitempty"`
	Rate           *MeasuredValue `json:"rate,omitempty"`
	Route          string         `json:"route,omitempty"`
	Frequency      string         `json:"frequency,omitempty"`
	StartDate      string         `json:"startDate,omitempty"`
	EndDate        string         `json:"endDate,omitempty"`
	IsActive       *bool          `json:"isActive,omitempty"`
	IsDiscontinued *bool          `json:"isDiscontinued,omitempty"`
}

type MedicationAdministrationResponse struct {
	Orders []AdministrationOrder `json:"Orders,omitempty"`
}

type AdministrationOrder struct {
	OrderID                   *Identifier                `json:"orderID,omitempty"`
	Name                      string                     `json:"name,omitempty"`
	IsActive                  *bool                      `json:"isActive,omitempty"`
	IsInfusion                *bool                      `json:"isInfusion,omitempty"`
	IsMixture                 *bool                      `json:"isMixture,omitempty"`
	LinkedOrderIDs            []Identifier               `json:"linkedOrderIDs,omitempty"`
	LinkedOrderType           string                     `json:"linkedOrderType,omitempty"`
	MedicationAdministrations []MedicationAdministration `json:"medicationAdministrations,omitempty"`
}

type MedicationAdministration struct {
	Action                string         `json:"action,omitempty"`
	AdministrationInstant string         `json:"administrationInstant,omitempty"`
	Dose                  *MeasuredValue `json:"dose,omitempty"`
	Rate                  *MeasuredValue `json:"rate,omitempty"`
	MappedAction          string         `json:"mappedAction,omitempty"`
	LinkedOverrideOrderID *Identifier    `json:"linkedOverrideOrderID,omitempty"`
}
