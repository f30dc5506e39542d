package handler

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/library"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// stubSnapshots serves fixed indexes built from in-memory parts.
type stubSnapshots struct {
	parts       map[domain.PartKind][]domain.Part
	err         error
	invalidated bool
}

func (s *stubSnapshots) Index(_ context.Context, kind domain.PartKind) (*derive.Index, error) {
	if s.err != nil {
		return nil, s.err
	}
	return derive.NewIndex(s.parts[kind]), nil
}

func (s *stubSnapshots) Parts(ctx context.Context, kind domain.PartKind) ([]domain.Part, error) {
	idx, err := s.Index(ctx, kind)
	if err != nil {
		return nil, err
	}
	return idx.Parts(), nil
}

func (s *stubSnapshots) Invalidate(_ context.Context) {
	s.invalidated = true
}

// MockLibraryService mocks the library.Service interface
type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) CreateDraft(ctx context.Context, ownerID string, kind domain.DraftKind, name string, payload json.RawMessage) (*domain.Draft, error) {
	args := m.Called(ctx, ownerID, kind, name, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockLibraryService) GetDraft(ctx context.Context, ownerID, draftID string) (*library.DraftView, error) {
	args := m.Called(ctx, ownerID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.DraftView), args.Error(1)
}

func (m *MockLibraryService) ListDrafts(ctx context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error) {
	args := m.Called(ctx, ownerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Draft), args.Error(1)
}

func (m *MockLibraryService) UpdateDraft(ctx context.Context, ownerID, draftID, name string, payload json.RawMessage) (*domain.Draft, error) {
	args := m.Called(ctx, ownerID, draftID, name, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockLibraryService) DeleteDraft(ctx context.Context, ownerID, draftID string) error {
	args := m.Called(ctx, ownerID, draftID)
	return args.Error(0)
}

// nopBus discards published events.
type nopBus struct{}

func (nopBus) Publish(context.Context, event.Event) error { return nil }
func (nopBus) Subscribe(event.Type, event.Handler)        {}
