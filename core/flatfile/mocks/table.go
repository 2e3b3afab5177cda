package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Table is a mock implementation of flatfile.Table
type Table struct {
	mock.Mock
}

func (m *Table) ReadAll(name string) ([][]string, error) {
	args := m.Called(name)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Table) WriteAll(name string, header []string, rows [][]string) error {
	args := m.Called(name, header, rows)
	return args.Error(0)
}

// Sink is a mock implementation of flatfile.Sink
type Sink struct {
	mock.Mock
}

func (m *Sink) Log(message string) {
	m.Called(message)
}
