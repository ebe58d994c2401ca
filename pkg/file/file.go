package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOperations defines methods for reading from and writing to files.
type FileOperations interface {
	IsFileExists(filePath string) (bool, error)
	ReadYamlFile(filePath string, v any) error
	ReadCSVFile(filePath string) ([][]string, error)
	CreateCSVFile(filePath string, header []string) error
	AppendCSVRow(filePath string, row []string) error
}

// FileService implements the FileOperations interface using standard file operations.
type FileService struct{}

// NewFileService creates a new instance of FileService.
func NewFileService() *FileService {
	return &FileService{}
}

// IsFileExists checks if the file exists and returns boolean and error
func (fs *FileService) IsFileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}

	// checking err == nil because of permission related error
	return err == nil, err
}

// ReadYamlFile reads and unmarshals YAML data from the given file.
func (fs *FileService) ReadYamlFile(filePath string, v any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ReadCSVFile reads every record of a CSV file, header included.
func (fs *FileService) ReadCSVFile(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// CreateCSVFile creates (or truncates) filePath and writes the header row.
func (fs *FileService) CreateCSVFile(filePath string, header []string) error {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if err := writeRow(file, header); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// AppendCSVRow opens filePath in append mode, writes one row and closes the file again.
func (fs *FileService) AppendCSVRow(filePath string, row []string) error {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if err := writeRow(file, row); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// writeRow terminates rows with \r\n.
func writeRow(w io.Writer, row []string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("error writing csv row: %w", err)
	}
	writer.Flush()
	return writer.Error()
}
