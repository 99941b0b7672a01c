package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher owns the password hashing policy. bcrypt embeds a random
// salt in its output, so the same plaintext hashes differently across calls
// and verification needs only the stored hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given work factor. Costs
// outside bcrypt's valid range fall back to the library default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash returns the irreversible hash of plaintext.
func (h PasswordHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hashed. Wrong passwords are not
// an error, only a false result; bcrypt compares in constant time.
func (h PasswordHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
