package utils

import (
	"encoding/json"
	"fmt"

	"github.com/solankismit/exambuddy/config"

	"github.com/go-resty/resty/v2"
)

// ProviderIdentity is the subset of the identity provider's token payload we use
type ProviderIdentity struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"iss"`
}

// VerifyProviderToken asks the configured identity provider to verify a token
// and returns the identity it vouches for
func VerifyProviderToken(token string) (*ProviderIdentity, error) {
	client := resty.New()
	resp, err := client.R().
		SetQueryParam("id_token", token).
		Get(config.AppConfig.IdentityProviderURL)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("identity provider rejected token: %s", resp.String())
	}

	var identity ProviderIdentity
	if err := json.Unmarshal(resp.Body(), &identity); err != nil {
		return nil, fmt.Errorf("invalid identity provider response: %w", err)
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("identity provider response missing email")
	}

	return &identity, nil
}
