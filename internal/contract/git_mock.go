package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetUserEmail implements the GitClient interface.
func (m *MockGitClient) GetUserEmail(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	email, _ := ret.Get(0).(string)
	return email, ret.Error(1)
}

// ListAuthorEmails implements the GitClient interface.
func (m *MockGitClient) ListAuthorEmails(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	emails, _ := ret.Get(0).([]string)
	return emails, ret.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath, email, since, divergedFrom string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, email, since, divergedFrom)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}
