package common

const (
	// TokenStorageKey is the metadata key the bearer token is persisted under.
	// It is the only durable piece of session state on the device.
	TokenStorageKey = "token"

	// CivilIDStorageKey remembers the identifier of the last logged-in patient
	// so the prompt can greet them on restart.
	CivilIDStorageKey = "civil_id"

	// RolePatient is forced onto every registration payload.
	RolePatient = "Patient"

	// ProviderTypeDoctor is the discriminator the backend requires on
	// appointment-create requests to tell the doctor handler apart from the
	// lab and physio ones. The field name and value are fixed by the backend.
	ProviderTypeDoctor = "doctor"
)
