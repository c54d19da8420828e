package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"avrstore/internal/usecase"
)

// AdminClaim is the custom claim that grants access to the admin API.
const AdminClaim = "admin"

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseAuthClient struct {
	client tokenVerifier
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks a Firebase ID token and reads the caller's identity
// and admin claim from it.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*usecase.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return identityFromToken(result), nil
}

func identityFromToken(token *auth.Token) *usecase.Identity {
	identity := &usecase.Identity{UID: token.UID}

	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if admin, ok := token.Claims[AdminClaim].(bool); ok {
		identity.IsAdmin = admin
	}
	return identity
}
