package payload

import (
	"encoding/json"
	"strings"

	"github.com/skillpath/pkg/reconcile"
)

const UserDetailsFailedMessage = "Failed to fetch user details"
const UserDetailsErrorMessage = "An error occurred while fetching user details"

type UserDetails struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Education string `json:"education"`
	Dream     string `json:"dream"`
}

type UserDetailsRequest struct {
	// UserID is sent as null for anonymous visitors.
	UserID *string `json:"user_id"`
}

func MakeUserDetailsRequest(userID string) UserDetailsRequest {
	if strings.TrimSpace(userID) == "" {
		return UserDetailsRequest{}
	}

	return UserDetailsRequest{UserID: &userID}
}

type UserDetailsResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *UserDetails `json:"data"`
}

// ExtractUserDetails returns the user record. JSON that is not a success
// envelope is rejected with the server's message when it sent a string one.
func ExtractUserDetails(body []byte) (*UserDetails, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	var data UserDetailsResponse

	if err := json.Unmarshal(body, &data); err != nil || !data.Success || data.Data == nil {
		return nil, reconcile.Rejected(failureMessage(body))
	}

	return data.Data, nil
}

func failureMessage(body []byte) string {
	var envelope struct {
		Message any `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return UserDetailsFailedMessage
	}

	if message, ok := envelope.Message.(string); ok && strings.TrimSpace(message) != "" {
		return strings.TrimSpace(message)
	}

	return UserDetailsFailedMessage
}
