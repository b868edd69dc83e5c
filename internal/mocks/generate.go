// Package mocks provides mock implementations for testing the offboarding backend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockOffboardingRepository(ctrl)
//	mockRepo.EXPECT().Get(gomock.Any(), "id", identity).Return(rec, nil)
package mocks

// Generate mock for OffboardingRepository interface from internal/core package.
// This creates MockOffboardingRepository with methods for all OffboardingRepository interface methods:
// List, ListWithOptions, Get, Create, Update, Remove, Execute
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=offboarding_repository_mock.go github.com/offboardhq/offboard-api/internal/core OffboardingRepository

// Generate mock for SessionStore interface from internal/core package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/offboardhq/offboard-api/internal/core SessionStore
