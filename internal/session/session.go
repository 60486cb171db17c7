// Package session owns one user's in-memory event log and goals for
// the duration of an interaction cycle: it routes interpreted commands
// to the confirmation gate, the action executor, or the analytics
// renderers, and persists mutations through the storage provider.
// Sessions are single-threaded request/response objects and are not
// safe for concurrent use.
package session

import (
	"fmt"
	"time"

	"habitual/internal/models"
	"habitual/internal/storage"
)

// DefaultTimeout is how long a proposed action waits for confirmation
// before it is discarded.
const DefaultTimeout = 300 * time.Second

// ResultKind classifies a handled command's outcome for display.
type ResultKind string

const (
	ResultOK      ResultKind = "ok"
	ResultInfo    ResultKind = "info"
	ResultWarning ResultKind = "warning"
	ResultConfirm ResultKind = "confirm"
	ResultTimeout ResultKind = "timeout"
)

// Result is the structured outcome of handling one command.
type Result struct {
	Kind    ResultKind
	Message string
}

// Options configures session behavior. Zero values get defaults.
type Options struct {
	Timeout          time.Duration
	AutoSaveInterval time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

type Session struct {
	User   string
	Events []models.HabitEvent
	Goals  map[string]models.WeeklyGoal

	pending          *models.PendingAction
	store            storage.Provider
	timeout          time.Duration
	autoSaveInterval time.Duration
	lastSave         time.Time
	now              func() time.Time
}

// New loads the user's persisted events and goals into a fresh session.
func New(user string, store storage.Provider, opts Options) (*Session, error) {
	events, err := store.LoadEvents(user)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for %s: %w", user, err)
	}
	goals, err := store.LoadGoals(user)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for %s: %w", user, err)
	}
	if goals == nil {
		goals = make(map[string]models.WeeklyGoal)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Session{
		User:             user,
		Events:           events,
		Goals:            goals,
		store:            store,
		timeout:          opts.Timeout,
		autoSaveInterval: opts.AutoSaveInterval,
		lastSave:         opts.Now(),
		now:              opts.Now,
	}, nil
}

// Pending returns the outstanding proposal, or nil.
func (s *Session) Pending() *models.PendingAction {
	return s.pending
}

// Handle routes one interpreted command. It never returns an error:
// expected failure modes (no habit recognized, bad goal parameters,
// nothing to confirm) come back as warning or info Results, and
// persistence failures are surfaced in the message without rolling
// back the in-memory change.
func (s *Session) Handle(cmd models.Command) Result {
	expired := s.checkTimeout()

	switch cmd.Intent {
	case models.IntentConfirm:
		if expired {
			return Result{ResultTimeout, "That took too long, so I dropped the pending action. Please try again."}
		}
		return s.confirm()

	case models.IntentCancel:
		if expired {
			return Result{ResultTimeout, "That took too long, so I dropped the pending action. Please try again."}
		}
		return s.cancel()

	case models.IntentLog, models.IntentAdd, models.IntentDelete:
		if len(cmd.Habits) == 0 {
			return Result{ResultWarning, "I didn't recognize a habit in that. Say 'help' to see what I understand."}
		}
		return s.propose(cmd)

	case models.IntentSetGoal:
		return s.applyGoal(cmd)

	case models.IntentStreakQuery:
		return s.streakReport(cmd.Habits)

	case models.IntentProgressQuery:
		return s.progressReport()

	case models.IntentDashboard:
		return s.dashboardReport()

	case models.IntentQuery:
		return s.recentActivity(cmd.Habits)

	case models.IntentHelp:
		return Result{ResultInfo, helpText}

	case models.IntentExport:
		return Result{ResultInfo, "Run 'habitual export --format csv|json|report' to save your data."}
	}

	return Result{ResultWarning, fmt.Sprintf("I don't know what to do with %q.", cmd.Intent)}
}

// checkTimeout clears a pending action that has outlived the timeout
// window. It runs at the top of every Handle call; there is no
// background timer.
func (s *Session) checkTimeout() bool {
	if s.pending == nil {
		return false
	}
	if s.now().Sub(s.pending.Timestamp) <= s.timeout {
		return false
	}
	s.pending = nil
	return true
}

// propose records a PendingAction for a confirmable command. A prior
// proposal is silently replaced; there is no queue.
func (s *Session) propose(cmd models.Command) Result {
	habit := cmd.Habits[0]
	s.pending = &models.PendingAction{
		Habit:      habit,
		Duration:   cmd.Duration,
		ActionText: actionText(cmd.Intent, habit, cmd.Duration),
		ActionType: cmd.Intent,
		User:       s.User,
		Timestamp:  s.now(),
	}
	return Result{ResultConfirm, fmt.Sprintf("%s — is that right? (yes/no)", s.pending.ActionText)}
}

func (s *Session) confirm() Result {
	if s.pending == nil {
		return Result{ResultInfo, "There's nothing waiting for confirmation."}
	}
	action := *s.pending
	s.pending = nil
	return s.apply(action)
}

func (s *Session) cancel() Result {
	if s.pending == nil {
		return Result{ResultInfo, "There's nothing to cancel."}
	}
	text := s.pending.ActionText
	s.pending = nil
	return Result{ResultInfo, fmt.Sprintf("Okay, cancelled: %s", text)}
}

// AutoSave persists the session if the configured interval has elapsed
// since the last save. A zero interval disables it.
func (s *Session) AutoSave() error {
	if s.autoSaveInterval <= 0 {
		return nil
	}
	if s.now().Sub(s.lastSave) < s.autoSaveInterval {
		return nil
	}
	return s.Save()
}

// Save persists events and goals unconditionally.
func (s *Session) Save() error {
	if err := s.store.SaveEvents(s.User, s.Events); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	if err := s.store.SaveGoals(s.User, s.Goals); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	s.lastSave = s.now()
	return nil
}
