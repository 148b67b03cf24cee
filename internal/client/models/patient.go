// Package models holds transient, unvalidated projections of backend-owned
// entities. The backend is the source of truth; the client never mutates
// these locally and tolerates missing or malformed fields.
package models

import "encoding/json"

// Patient is the caller's own profile as the backend reports it.
type Patient struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CivilID   string `json:"civilID"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PatientInfo is the registration payload. Role is forced to "Patient" by the
// auth module regardless of what the caller sets here.
type PatientInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CivilID  string `json:"civilID"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is the body of a login or registration response. The token
// arrives as either "token" or "accessToken" depending on the backend build;
// normalization lives in Token().
type AuthResponse struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"accessToken"`
	Message     string          `json:"message"`
	User        json.RawMessage `json:"user"`
}

// BearerToken returns the session token from whichever field the backend
// used, "token" taking precedence, or "" when the response carried none.
func (r *AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}
