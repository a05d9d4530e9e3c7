package inreader

import (
	"io"

	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockRangeReader is a mock implementation of RangeReader for testing.
type MockRangeReader struct {
	mock.Mock
}

var _ contract.RangeReader = &MockRangeReader{} // Compile-time check

// ReadRanges implements the RangeReader interface.
func (m *MockRangeReader) ReadRanges(r io.Reader) (any, error) {
	args := m.Called(r)
	return args.Get(0), args.Error(1)
}
