package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// CaptureBuffer collects printer output in tests. Safe for concurrent writers.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureBuffer creates an empty capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

func (c *CaptureBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the captured output without its final newline, split per line.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Records decodes JSON mode output, one object per line.
func (c *CaptureBuffer) Records() ([]map[string]any, error) {
	var records []map[string]any
	for i, line := range c.Lines() {
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("line %d is not a JSON object: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Reset clears the captured output.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// Len returns the number of bytes captured.
func (c *CaptureBuffer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len()
}

// CaptureOutput runs fn with a deterministic plain printer and returns what it wrote.
func CaptureOutput(fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buffer), TestMode()))
	return buffer.String()
}

// CaptureOutputWithStyles is CaptureOutput with provider in place of the plain styles.
func CaptureOutputWithStyles(provider StyleProvider, fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buffer), WithStyles(provider)))
	return buffer.String()
}

// MockStyleProvider marks styled text as [semantic]text[/semantic].
type MockStyleProvider struct{}

// NewMockStyleProvider creates a mock style provider.
func NewMockStyleProvider() *MockStyleProvider {
	return &MockStyleProvider{}
}

func (m *MockStyleProvider) GetStyle(semantic string) TextStyle {
	return mockTextStyle(semantic)
}

func (m *MockStyleProvider) IsAvailable() bool {
	return true
}

type mockTextStyle string

func (s mockTextStyle) Render(strs ...string) string {
	return "[" + string(s) + "]" + strings.Join(strs, " ") + "[/" + string(s) + "]"
}
