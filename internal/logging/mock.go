package logging

import "sync"

// MockEntry is a single captured log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

type mockRecorder struct {
	mu      sync.Mutex
	entries []MockEntry
}

// MockLogger records log calls for assertions in tests. Derived loggers
// (WithField etc.) share the same recorder as their parent.
type MockLogger struct {
	rec    *mockRecorder
	fields []Field
	err    error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{rec: &mockRecorder{}}
}

func (m *MockLogger) log(level, msg string, fields []Field) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.rec.entries = append(m.rec.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.log("error", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{rec: m.rec, fields: m.fields, err: err}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &MockLogger{rec: m.rec, fields: append(append([]Field{}, m.fields...), fields...), err: m.err}
}

// Entries returns the captured log calls.
func (m *MockLogger) Entries() []MockEntry {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	return append([]MockEntry{}, m.rec.entries...)
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	for _, e := range m.rec.entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
