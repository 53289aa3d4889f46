package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/Marga-Ghale/projectflow/internal/views"
)

// ============================================
// UI State Service
// ============================================

// Modal names
const (
	ModalNewProject = "new-project"
	ModalNewTask    = "new-task"
	ModalNewEvent   = "new-event"
)

type ModalState struct {
	NewProject bool `json:"newProject"`
	NewTask    bool `json:"newTask"`
	NewEvent   bool `json:"newEvent"`
}

type CalendarCursor struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	View  string `json:"view"`
}

// UIState is the navigation and widget state of the dashboard. It lives in
// memory only and starts over on restart.
type UIState struct {
	ActiveTab string         `json:"activeTab"`
	Modals    ModalState     `json:"modals"`
	Calendar  CalendarCursor `json:"calendar"`
	TasksView string         `json:"tasksView"`
}

// UIStatePatch carries the fields a client wants to change; nil means keep.
type UIStatePatch struct {
	ActiveTab    *string
	CalendarView *string
	TasksView    *string
}

type UIStateService interface {
	Get() UIState
	Update(patch UIStatePatch) (UIState, error)
	SetActiveTab(tab string) (UIState, error)
	OpenModal(name string) (UIState, error)
	CloseModal(name string) (UIState, error)
	NavigateMonth(delta int) UIState
	Reset() UIState
}

type uiStateService struct {
	mu          sync.Mutex
	state       UIState
	now         func() time.Time
	broadcaster *socket.Broadcaster
}

func NewUIStateService(now func() time.Time, broadcaster *socket.Broadcaster) UIStateService {
	s := &uiStateService{now: now, broadcaster: broadcaster}
	s.state = s.initial()
	return s
}

func (s *uiStateService) initial() UIState {
	today := s.now()
	return UIState{
		ActiveTab: types.TabDashboard,
		Calendar: CalendarCursor{
			Year:  today.Year(),
			Month: int(today.Month()),
			View:  types.CalendarMonth,
		},
		TasksView: types.TasksKanban,
	}
}

func (s *uiStateService) Get() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *uiStateService) Update(patch UIStatePatch) (UIState, error) {
	if patch.ActiveTab != nil && !types.IsValidTab(*patch.ActiveTab) {
		return UIState{}, fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, *patch.ActiveTab)
	}
	if patch.CalendarView != nil && !types.IsValidCalendarView(*patch.CalendarView) {
		return UIState{}, fmt.Errorf("%w: unknown calendar view %q", ErrInvalidInput, *patch.CalendarView)
	}
	if patch.TasksView != nil && !types.IsValidTasksView(*patch.TasksView) {
		return UIState{}, fmt.Errorf("%w: unknown tasks view %q", ErrInvalidInput, *patch.TasksView)
	}

	return s.mutate(func(st *UIState) {
		if patch.ActiveTab != nil {
			st.ActiveTab = *patch.ActiveTab
		}
		if patch.CalendarView != nil {
			st.Calendar.View = *patch.CalendarView
		}
		if patch.TasksView != nil {
			st.TasksView = *patch.TasksView
		}
	}), nil
}

func (s *uiStateService) SetActiveTab(tab string) (UIState, error) {
	return s.Update(UIStatePatch{ActiveTab: &tab})
}

func (s *uiStateService) OpenModal(name string) (UIState, error) {
	return s.setModal(name, true)
}

func (s *uiStateService) CloseModal(name string) (UIState, error) {
	return s.setModal(name, false)
}

func (s *uiStateService) setModal(name string, open bool) (UIState, error) {
	switch name {
	case ModalNewProject, ModalNewTask, ModalNewEvent:
	default:
		return UIState{}, fmt.Errorf("%w: unknown modal %q", ErrInvalidInput, name)
	}

	return s.mutate(func(st *UIState) {
		switch name {
		case ModalNewProject:
			st.Modals.NewProject = open
		case ModalNewTask:
			st.Modals.NewTask = open
		case ModalNewEvent:
			st.Modals.NewEvent = open
		}
	}), nil
}

// NavigateMonth moves the calendar cursor; -1 is previous, +1 next.
func (s *uiStateService) NavigateMonth(delta int) UIState {
	return s.mutate(func(st *UIState) {
		y, m := views.ShiftMonth(st.Calendar.Year, time.Month(st.Calendar.Month), delta)
		st.Calendar.Year = y
		st.Calendar.Month = int(m)
	})
}

func (s *uiStateService) Reset() UIState {
	return s.mutate(func(st *UIState) {
		*st = s.initial()
	})
}

func (s *uiStateService) mutate(fn func(*UIState)) UIState {
	s.mu.Lock()
	fn(&s.state)
	state := s.state
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastUIState(state)
	}
	return state
}
