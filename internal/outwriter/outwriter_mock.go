package outwriter

import (
	"time"

	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ contract.ResultWriter = &MockResultWriter{} // Compile-time check
var _ contract.ResultWriter = &OutWriter{}        // Compile-time check

// WriteMerge implements the ResultWriter interface.
func (m *MockResultWriter) WriteMerge(result schema.MergeResult, cfg *contract.Config, duration time.Duration) error {
	args := m.Called(result, cfg, duration)
	return args.Error(0)
}
