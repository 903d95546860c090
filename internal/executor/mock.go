package executor

import (
	"context"
	"fmt"
)

type MockCall struct {
	Method string
	Args   []interface{}
}

// MockExecutor records calls and serves canned outputs, for testing
// checks without touching a real host.
type MockExecutor struct {
	Calls      []MockCall
	RunOutputs map[string]string
	RunErrors  map[string]error
	Files      map[string][]byte
	ReadErrors map[string]error
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		RunOutputs: make(map[string]string),
		RunErrors:  make(map[string]error),
		Files:      make(map[string][]byte),
		ReadErrors: make(map[string]error),
	}
}

func (m *MockExecutor) Run(_ context.Context, cmd string) (string, error) {
	m.Calls = append(m.Calls, MockCall{Method: "Run", Args: []interface{}{cmd}})
	if err, ok := m.RunErrors[cmd]; ok {
		return "", err
	}
	if out, ok := m.RunOutputs[cmd]; ok {
		return out, nil
	}
	return "", nil
}

func (m *MockExecutor) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.Calls = append(m.Calls, MockCall{Method: "ReadFile", Args: []interface{}{path}})
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}
