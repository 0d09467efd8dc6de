package scenecmd_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/talekit/pkg/scenecmd"
)

type MockScene struct {
	mock.Mock
}

func (m *MockScene) Name() string {
	return m.Called().String(0)
}

func (m *MockScene) Memory() (scenecmd.MemoryAgent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(scenecmd.MemoryAgent), args.Error(1)
}

func (m *MockScene) CommitToMemory(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockScene) SetContentContext(value string) {
	m.Called(value)
}

func (m *MockScene) SetPlayerAIControlled(turns int) error {
	return m.Called(turns).Error(0)
}

func (m *MockScene) History() []any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]any)
}

func (m *MockScene) ResetLayeredHistory() {
	m.Called()
}

func (m *MockScene) Serialize() (json.RawMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockMemory struct {
	mock.Mock
}

func (m *MockMemory) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMemory) DBName() string {
	return m.Called().String(0)
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) GenerateTimeline(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSummarizer) SummarizeToLayeredHistory(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSummarizer) DigLayeredHistory(ctx context.Context, query string) error {
	return m.Called(ctx, query).Error(0)
}

type MockAgents struct {
	mock.Mock
}

func (m *MockAgents) Summarizer(ctx context.Context) (scenecmd.Summarizer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(scenecmd.Summarizer), args.Error(1)
}

type MockPrompts struct {
	mock.Mock
}

func (m *MockPrompts) SetDefaultSectioningHandler(name string) error {
	return m.Called(name).Error(0)
}

// recordingEmitter collects emitted messages.
type recordingEmitter struct {
	mu       sync.Mutex
	messages []string
}

func (e *recordingEmitter) Emit(_ context.Context, kind scenecmd.MessageKind, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.messages = append(e.messages, string(kind)+": "+text)
}

func (e *recordingEmitter) Messages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.messages...)
}
