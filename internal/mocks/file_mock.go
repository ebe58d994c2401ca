package mocks

import (
	"github.com/stretchr/testify/mock"
)

// FileOperations is a mock implementation of the file.FileOperations interface
type FileOperations struct {
	mock.Mock
}

func (m *FileOperations) IsFileExists(filePath string) (bool, error) {
	args := m.Called(filePath)
	return args.Bool(0), args.Error(1)
}

func (m *FileOperations) ReadYamlFile(filePath string, v any) error {
	args := m.Called(filePath, v)
	return args.Error(0)
}

func (m *FileOperations) ReadCSVFile(filePath string) ([][]string, error) {
	args := m.Called(filePath)
	records, _ := args.Get(0).([][]string)
	return records, args.Error(1)
}

func (m *FileOperations) CreateCSVFile(filePath string, header []string) error {
	args := m.Called(filePath, header)
	return args.Error(0)
}

func (m *FileOperations) AppendCSVRow(filePath string, row []string) error {
	args := m.Called(filePath, row)
	return args.Error(0)
}
