package sheet

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleScopes are the read-only scopes needed to export a private sheet.
func GoogleScopes() []string {
	return []string{
		"https://www.googleapis.com/auth/drive.readonly",
		"https://www.googleapis.com/auth/spreadsheets.readonly",
	}
}

// GoogleTokenSource builds a token source from a service account or
// authorized user JSON document. Empty credentials fall back to
// Application Default Credentials.
func GoogleTokenSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	if len(credentialsJSON) == 0 {
		ts, err := google.DefaultTokenSource(ctx, GoogleScopes()...)
		if err != nil {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		return ts, nil
	}

	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, GoogleScopes()...)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredentials, err)
	}
	return creds.TokenSource, nil
}
