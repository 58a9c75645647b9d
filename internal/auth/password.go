package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the upstream deployment hashed with.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. The salt is
// randomized per call, so hashing the same input twice yields different strings.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Mismatches and malformed hashes both report false; it never panics.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
