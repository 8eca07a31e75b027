// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"io"
	"os"

	"github.com/stretchr/testify/mock"
)

// MockFileSystemAdapter is a mock implementation of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a new mock and registers expectation checks on cleanup.
func NewMockFileSystemAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ReadDir provides a mock function.
func (m *MockFileSystemAdapter) ReadDir(path string) ([]os.DirEntry, error) {
	args := m.Called(path)
	entries, _ := args.Get(0).([]os.DirEntry)
	return entries, args.Error(1)
}

// Stat provides a mock function.
func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	info, _ := args.Get(0).(os.FileInfo)
	return info, args.Error(1)
}

// Lstat provides a mock function.
func (m *MockFileSystemAdapter) Lstat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	info, _ := args.Get(0).(os.FileInfo)
	return info, args.Error(1)
}

// Open provides a mock function.
func (m *MockFileSystemAdapter) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

// Create provides a mock function.
func (m *MockFileSystemAdapter) Create(path string) (io.WriteCloser, error) {
	args := m.Called(path)
	wc, _ := args.Get(0).(io.WriteCloser)
	return wc, args.Error(1)
}

// Remove provides a mock function.
func (m *MockFileSystemAdapter) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// Getwd provides a mock function.
func (m *MockFileSystemAdapter) Getwd() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
