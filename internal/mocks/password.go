package mocks

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing
type MockPasswordHasher struct {
	// HashFn allows test cases to mock the Hash behavior
	HashFn func(password string) (string, error)

	// CompareFn allows test cases to mock the Compare behavior
	CompareFn func(hashedPassword, password string) error

	// Default values used when functions aren't explicitly defined
	Digest     string
	HashErr    error
	CompareErr error
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.Digest != "" {
		return m.Digest, m.HashErr
	}
	return "hashed:" + password, m.HashErr
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.CompareErr != nil {
		return m.CompareErr
	}
	return nil
}
