package models

// Dependent is a person-in-care profile managed by a caregiver patient.
// The client performs no validation; required-field checks belong to the
// layer collecting the input.
type Dependent struct {
	ID                      string `json:"_id"`
	Name                    string `json:"name"`
	Age                     string `json:"age"`
	Birthday                string `json:"birthday,omitempty"`
	Gender                  string `json:"gender"`
	ContactNumber           string `json:"contactNumber"`
	Relationship            string `json:"relationship"`
	MedicalHistory          string `json:"medicalHistory"`
	SpecialCareInstructions string `json:"specialCareInstructions"`
	Caregiver               string `json:"caregiver,omitempty"`
}
