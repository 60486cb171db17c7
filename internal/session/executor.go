package session

import (
	"fmt"

	"habitual/internal/models"
	"habitual/internal/taxonomy"

	"github.com/google/uuid"
)

// actionText renders the human-readable description of a confirmable
// action, shown both in the confirmation prompt and the final result.
func actionText(intent models.Intent, habit, duration string) string {
	switch intent {
	case models.IntentLog:
		if duration != "" {
			return fmt.Sprintf("Completed %s for %s", habit, duration)
		}
		return fmt.Sprintf("Completed %s", habit)
	case models.IntentAdd:
		return fmt.Sprintf("Add %s to your habits", habit)
	case models.IntentDelete:
		return fmt.Sprintf("Delete %s and all its logs", habit)
	}
	return ""
}

// apply executes a confirmed action against the event log and goals.
// The in-memory mutation always lands; a failed save is reported in
// the Result but not rolled back, so a later save can retry.
func (s *Session) apply(action models.PendingAction) Result {
	switch action.ActionType {
	case models.IntentLog:
		return s.applyLog(action)
	case models.IntentAdd:
		return s.applyAdd(action)
	case models.IntentDelete:
		return s.applyDelete(action)
	}
	return Result{ResultWarning, fmt.Sprintf("Cannot apply action type %q.", action.ActionType)}
}

func (s *Session) applyLog(action models.PendingAction) Result {
	text := actionText(models.IntentLog, action.Habit, action.Duration)
	s.Events = append(s.Events, models.HabitEvent{
		ID:       uuid.NewString(),
		Habit:    action.Habit,
		Action:   text,
		Time:     s.now(),
		Type:     models.EventLog,
		Duration: action.Duration,
	})
	return s.persisted(Result{ResultOK, fmt.Sprintf("%s. Nice work!", text)})
}

func (s *Session) applyAdd(action models.PendingAction) Result {
	for _, e := range s.Events {
		if e.Habit == action.Habit {
			return Result{ResultInfo, fmt.Sprintf("%s is already one of your habits.", action.Habit)}
		}
	}

	s.Events = append(s.Events, models.HabitEvent{
		ID:     uuid.NewString(),
		Habit:  action.Habit,
		Action: fmt.Sprintf("Added habit: %s", action.Habit),
		Time:   s.now(),
		Type:   models.EventAdd,
	})

	msg := fmt.Sprintf("Added habit: %s", action.Habit)
	if target, ok := taxonomy.DefaultGoal(action.Habit); ok {
		s.Goals[action.Habit] = models.WeeklyGoal{
			Habit:         action.Habit,
			TargetPerWeek: target,
			Created:       s.now(),
			Category:      taxonomy.CategoryOf(action.Habit),
		}
		msg = fmt.Sprintf("%s (weekly goal: %dx)", msg, target)
	}
	return s.persisted(Result{ResultOK, msg})
}

func (s *Session) applyDelete(action models.PendingAction) Result {
	kept := s.Events[:0:0]
	removed := 0
	for _, e := range s.Events {
		if e.Habit == action.Habit {
			removed++
			continue
		}
		kept = append(kept, e)
	}

	if removed == 0 {
		return Result{ResultWarning, fmt.Sprintf("No entries found for %s.", action.Habit)}
	}

	s.Events = kept
	delete(s.Goals, action.Habit)
	return s.persisted(Result{ResultOK, fmt.Sprintf("Deleted %s and %d related entries.", action.Habit, removed)})
}

// applyGoal upserts a weekly goal. Goal setting is not confirmable, so
// it runs directly from Handle.
func (s *Session) applyGoal(cmd models.Command) Result {
	if len(cmd.Habits) == 0 {
		return Result{ResultWarning, "I need a habit name to set a goal for."}
	}
	if cmd.Target <= 0 {
		return Result{ResultWarning, "A weekly goal needs a positive number of times per week."}
	}

	habit := cmd.Habits[0]
	s.Goals[habit] = models.WeeklyGoal{
		Habit:         habit,
		TargetPerWeek: cmd.Target,
		Created:       s.now(),
		Category:      taxonomy.CategoryOf(habit),
	}
	return s.persisted(Result{ResultOK, fmt.Sprintf("Goal set: %s %dx per week.", habit, cmd.Target)})
}

// persisted saves synchronously after a mutation and folds any save
// failure into the result message.
func (s *Session) persisted(r Result) Result {
	if err := s.Save(); err != nil {
		r.Kind = ResultWarning
		r.Message = fmt.Sprintf("%s (warning: %v)", r.Message, err)
	}
	return r
}
