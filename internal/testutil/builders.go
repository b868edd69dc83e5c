package testutil

// StringPtr returns a pointer to the given string. Useful for optional fields in tests.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool. Useful for optional fields in tests.
func BoolPtr(b bool) *bool {
	return &b
}
