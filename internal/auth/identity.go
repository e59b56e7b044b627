package auth

// OAuthIdentity is the profile an OAuth provider vouches for.
type OAuthIdentity struct {
	Email      string
	Name       *string
	AvatarURL  *string
	ProviderID string
}
