package authenticator

type TokenEngine[T any] interface {
	// Generate creates a signed token carrying obj, sub is stored as the
	// subject claim.
	Generate(sub string, obj T) (string, error)

	// Verify fails if the token is malformed, wrongly signed or expired.
	Verify(token string) (T, error)
}
