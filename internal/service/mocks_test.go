package service

import (
	"context"

	"github.com/Shivanand-hulikatti/party-events/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockPartyStore struct {
	mock.Mock
}

func (m *mockPartyStore) ListActive(ctx context.Context) ([]model.Party, error) {
	args := m.Called(ctx)
	parties, _ := args.Get(0).([]model.Party)
	return parties, args.Error(1)
}

func (m *mockPartyStore) GetActiveByShortname(ctx context.Context, shortname string) (*model.Party, error) {
	args := m.Called(ctx, shortname)
	party, _ := args.Get(0).(*model.Party)
	return party, args.Error(1)
}

type mockEventStore struct {
	mock.Mock
}

func (m *mockEventStore) ListByParty(ctx context.Context, party string) ([]model.Event, error) {
	args := m.Called(ctx, party)
	events, _ := args.Get(0).([]model.Event)
	return events, args.Error(1)
}

func (m *mockEventStore) ListByPartyAndTag(ctx context.Context, party, tag string) ([]model.Event, error) {
	args := m.Called(ctx, party, tag)
	events, _ := args.Get(0).([]model.Event)
	return events, args.Error(1)
}
