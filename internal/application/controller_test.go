package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/people-cli/internal/domain"
	"github.com/bnema/people-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestControllerStartsEmpty(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	controller := NewController(api, nil, nil)

	people := controller.People()
	require.NotNil(t, people)
	assert.Empty(t, people)
	assert.True(t, controller.RefreshedAt().IsZero())
}

func TestControllerInitializeIssuesExactlyOneList(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	clock := mocks.NewMockClock(t)
	refreshedAt := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann", Age: 30}}, nil).Once()
	clock.EXPECT().Now().Return(refreshedAt).Once()

	controller := NewController(api, nil, clock)
	Drain(context.Background(), controller, controller.Initialize())

	assert.Equal(t, []domain.Person{{Name: "Ann", Age: 30}}, controller.People())
	assert.Equal(t, refreshedAt, controller.RefreshedAt())
}

func TestControllerListReplacesCollectionInReceivedOrder(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	first := []domain.Person{{Name: "Ann", Age: 30}, {Name: "Bob", Age: 41}}
	second := []domain.Person{{Name: "Zoe", Age: 19}, {Name: "Cy", Age: 77}, {Name: "Ann", Age: 30}}
	api.EXPECT().List(mockAnyContext()).Return(first, nil).Once()
	api.EXPECT().List(mockAnyContext()).Return(second, nil).Once()

	controller := NewController(api, nil, nil)
	Drain(context.Background(), controller, controller.ListAll())
	require.Equal(t, first, controller.People())

	Drain(context.Background(), controller, controller.ListAll())
	assert.Equal(t, second, controller.People())
}

func TestControllerListNullBodyYieldsEmptyCollection(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann", Age: 30}}, nil).Once()
	api.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()

	controller := NewController(api, nil, nil)
	Drain(context.Background(), controller, controller.ListAll())
	Drain(context.Background(), controller, controller.ListAll())

	people := controller.People()
	require.NotNil(t, people)
	assert.Empty(t, people)
}

func TestControllerListFailureLeavesCollectionAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	api := mocks.NewMockPeopleAPI(t)
	listErr := errors.New("connection refused")
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann", Age: 30}}, nil).Once()
	api.EXPECT().List(mockAnyContext()).Return(nil, listErr).Once()

	controller := NewController(api, zap.New(core), nil)
	Drain(context.Background(), controller, controller.ListAll())
	refreshedAt := controller.RefreshedAt()

	Drain(context.Background(), controller, controller.ListAll())

	assert.Equal(t, []domain.Person{{Name: "Ann", Age: 30}}, controller.People())
	assert.Equal(t, refreshedAt, controller.RefreshedAt())

	failures := logs.FilterMessage("list people").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, "connection refused", failures[0].ContextMap()["error"])
}

func TestControllerListSuccessLogsCount(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann"}, {Name: "Bob"}}, nil).Once()

	controller := NewController(api, zap.New(core), nil)
	Drain(context.Background(), controller, controller.ListAll())

	entries := logs.FilterMessage("successfully got people").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
}

func TestControllerAddPersonSendsPayloadThenRefreshesOnce(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().Create(mockAnyContext(), domain.Person{Name: "Ann", Age: 30}).Return(nil).Once()
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann", Age: 30}}, nil).Once()

	controller := NewController(api, nil, nil)
	Drain(context.Background(), controller, controller.AddPerson("Ann", 30))

	assert.Equal(t, []domain.Person{{Name: "Ann", Age: 30}}, controller.People())
}

func TestControllerAddPersonFailureIsDropped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().Create(mockAnyContext(), domain.Person{Name: "Ann", Age: 30}).Return(errors.New("status 500: boom")).Once()

	controller := NewController(api, zap.New(core), nil)
	followUp := controller.Apply(controller.AddPerson("Ann", 30)(context.Background()))

	assert.Nil(t, followUp)
	assert.Empty(t, controller.People())
	assert.Zero(t, logs.Len())
	api.AssertNotCalled(t, "List", mock.Anything)
}

func TestControllerAddPersonDoesNotValidateInput(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().Create(mockAnyContext(), domain.Person{Name: "", Age: -3.5}).Return(nil).Once()
	api.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()

	controller := NewController(api, nil, nil)
	Drain(context.Background(), controller, controller.AddPerson("", -3.5))
}

func TestControllerCommandsDoNotTouchStateUntilApplied(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Ann", Age: 30}}, nil).Once()

	controller := NewController(api, nil, nil)
	event := controller.ListAll()(context.Background())

	assert.Empty(t, controller.People())
	assert.Nil(t, controller.Apply(event))
	assert.Equal(t, []domain.Person{{Name: "Ann", Age: 30}}, controller.People())
}

func TestControllerLastAppliedListWins(t *testing.T) {
	api := mocks.NewMockPeopleAPI(t)
	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().List(mockAnyContext()).RunAndReturn(func(context.Context) ([]domain.Person, error) {
		close(started)
		<-release
		return []domain.Person{{Name: "Stale"}}, nil
	}).Once()
	api.EXPECT().List(mockAnyContext()).Return([]domain.Person{{Name: "Fresh"}}, nil).Once()

	controller := NewController(api, nil, nil)
	events := make(chan Event, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	slow := controller.ListAll()
	go func() {
		defer wg.Done()
		events <- slow(context.Background())
	}()
	<-started

	controller.Apply(controller.ListAll()(context.Background()))
	require.Equal(t, []domain.Person{{Name: "Fresh"}}, controller.People())

	close(release)
	wg.Wait()
	controller.Apply(<-events)

	assert.Equal(t, []domain.Person{{Name: "Stale"}}, controller.People())
}

func TestControllerApplyIgnoresUnknownEvents(t *testing.T) {
	controller := NewController(mocks.NewMockPeopleAPI(t), nil, nil)

	assert.Nil(t, controller.Apply(nil))
	assert.Empty(t, controller.People())
}

func mockAnyContext() interface{} {
	return mock.Anything
}
