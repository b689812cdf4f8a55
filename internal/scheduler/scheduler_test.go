package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sipdeck/internal/common/clock/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	scheduler *TimerScheduler

	// fired holds the callbacks handed to the clock, in order
	fired []func()
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.fired = nil

	var err error
	s.scheduler, err = New(&Config{Clock: s.mockClock})
	s.Require().NoError(err)
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

// expectTimer captures the callback of the next AfterFunc call
func (s *SchedulerTestSuite) expectTimer(delay time.Duration) *mocks.MockTimer {
	timer := mocks.NewMockTimer(s.mockCtrl)
	s.mockClock.EXPECT().AfterFunc(delay, gomock.Any()).DoAndReturn(func(d time.Duration, f func()) *mocks.MockTimer {
		s.fired = append(s.fired, f)
		return timer
	})
	return timer
}

func (s *SchedulerTestSuite) TestNewRequiresClock() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *SchedulerTestSuite) TestTaskRuns() {
	s.expectTimer(2 * time.Second)

	ran := 0
	s.scheduler.Schedule("chan", 2*time.Second, func() { ran++ })
	s.True(s.scheduler.Pending("chan"))

	s.Require().Len(s.fired, 1)
	s.fired[0]()

	s.Equal(1, ran)
	s.False(s.scheduler.Pending("chan"))
}

func (s *SchedulerTestSuite) TestCancel() {
	timer := s.expectTimer(time.Second)
	timer.EXPECT().Stop().Return(true)

	ran := false
	s.scheduler.Schedule("chan", time.Second, func() { ran = true })
	s.True(s.scheduler.Cancel("chan"))
	s.False(s.scheduler.Pending("chan"))
	s.False(s.scheduler.Cancel("chan"))

	// a timer that fires after being stopped must not run the task
	s.fired[0]()
	s.False(ran)
}

func (s *SchedulerTestSuite) TestScheduleSupersedes() {
	first := s.expectTimer(time.Second)
	first.EXPECT().Stop().Return(true)
	s.expectTimer(time.Second)

	var ran []string
	s.scheduler.Schedule("chan", time.Second, func() { ran = append(ran, "first") })
	s.scheduler.Schedule("chan", time.Second, func() { ran = append(ran, "second") })

	s.Require().Len(s.fired, 2)
	s.fired[0]()
	s.fired[1]()

	s.Equal([]string{"second"}, ran)
}

func (s *SchedulerTestSuite) TestKeysAreIndependent() {
	s.expectTimer(time.Second)
	s.expectTimer(time.Second)

	ran := map[string]bool{}
	s.scheduler.Schedule("a", time.Second, func() { ran["a"] = true })
	s.scheduler.Schedule("b", time.Second, func() { ran["b"] = true })

	s.fired[1]()
	s.True(ran["b"])
	s.False(ran["a"])
	s.True(s.scheduler.Pending("a"))
}

func (s *SchedulerTestSuite) TestPanicIsRecovered() {
	s.expectTimer(time.Millisecond)

	s.scheduler.Schedule("chan", time.Millisecond, func() { panic("boom") })
	s.NotPanics(func() { s.fired[0]() })
	s.False(s.scheduler.Pending("chan"))
}
