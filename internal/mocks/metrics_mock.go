package mocks

import (
	"github.com/stretchr/testify/mock"
)

// TextfileWriter is a mock implementation of the services.TextfileWriter interface
type TextfileWriter struct {
	mock.Mock
}

func (m *TextfileWriter) WriteTextfile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
