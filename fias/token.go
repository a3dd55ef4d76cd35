package fias

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/addrkit/go-fias/httpclient"
)

// TokenRequest configures token acquisition. Zero values use the public
// FIAS endpoints.
type TokenRequest struct {
	// SettingsURL is the token-issuing settings endpoint.
	SettingsURL string
	// ServiceURL is passed as the "url" query parameter.
	ServiceURL string
}

// GetToken obtains a bearer token from the FIAS settings endpoint.
//
// A non-success status or a response without the Token field fails with
// an auth error. GetToken does not retry; compose with retry.Do when the
// first call is allowed to fail:
//
//	token, err := retry.Do(ctx, retry.DefaultPolicy(),
//		func(ctx context.Context) (string, error) {
//			return fias.GetToken(ctx, transport, fias.TokenRequest{})
//		})
func GetToken(ctx context.Context, transport httpclient.Client, req TokenRequest) (string, error) {
	settingsURL := req.SettingsURL
	if settingsURL == "" {
		settingsURL = DefaultSettingsURL
	}
	serviceURL := req.ServiceURL
	if serviceURL == "" {
		serviceURL = DefaultServiceURL
	}

	resp, err := transport.Get(ctx, &httpclient.Request{
		URL:     settingsURL,
		Query:   map[string]string{"url": serviceURL},
		Headers: map[string]string{"accept": "application/json"},
	})
	if err != nil {
		if httpclient.IsErrorType(err, httpclient.HTTPError) {
			return "", httpclient.NewAuthError("token endpoint returned non-success status", httpclient.StatusCode(err))
		}
		return "", err
	}

	token := gjson.GetBytes(resp.Body, "Token")
	if token.String() == "" {
		return "", httpclient.NewAuthError("settings response is missing the Token field", resp.StatusCode)
	}
	return token.String(), nil
}
