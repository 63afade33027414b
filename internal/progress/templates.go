package progress

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// upsertTemplate matches by exact (name, category, stars) among non-deleted
// templates: a match bumps the usage counter, otherwise a new template is
// created with usage count 1.
func (s *Store) upsertTemplate(name string, category Category, stars int) {
	for i := range s.state.TaskTemplates {
		t := &s.state.TaskTemplates[i]
		if !t.Deleted && t.Name == name && t.Category == category && t.Stars == stars {
			t.UsageCount++
			return
		}
	}
	s.state.TaskTemplates = append(s.state.TaskTemplates, TaskTemplate{
		ID:         uuid.NewString(),
		Name:       name,
		Category:   category,
		Stars:      stars,
		CreatedAt:  s.now(),
		UsageCount: 1,
	})
}

func (s *Store) templateByID(id string) *TaskTemplate {
	for i := range s.state.TaskTemplates {
		if s.state.TaskTemplates[i].ID == id {
			return &s.state.TaskTemplates[i]
		}
	}
	return nil
}

// AddTaskFromTemplate instantiates a task from a stored template and bumps
// its usage counter. Unknown or soft-deleted templates are silent no-ops.
func (s *Store) AddTaskFromTemplate(ctx context.Context, templateID string) (*Task, error) {
	tpl := s.templateByID(templateID)
	if tpl == nil || tpl.Deleted {
		s.log.Debug("instantiate: no active template", zap.String("id", templateID))
		return nil, nil
	}

	tpl.UsageCount++
	task := s.appendTask(tpl.Name, tpl.Category, tpl.Stars)
	s.log.Debug("task instantiated from template",
		zap.String("templateId", tpl.ID),
		zap.String("taskId", task.ID),
		zap.Int("usageCount", tpl.UsageCount))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTemplate soft-deletes a template; it moves to the trash and can be
// restored later. Returns false when no active template matched.
func (s *Store) DeleteTemplate(ctx context.Context, templateID string) (bool, error) {
	tpl := s.templateByID(templateID)
	if tpl == nil || tpl.Deleted {
		return false, nil
	}
	tpl.Deleted = true
	s.log.Debug("template deleted", zap.String("id", tpl.ID))
	if err := s.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// RestoreTemplate brings a soft-deleted template back from the trash.
func (s *Store) RestoreTemplate(ctx context.Context, templateID string) (bool, error) {
	tpl := s.templateByID(templateID)
	if tpl == nil || !tpl.Deleted {
		return false, nil
	}
	tpl.Deleted = false
	s.log.Debug("template restored", zap.String("id", tpl.ID))
	if err := s.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ActiveTemplates returns non-deleted templates, most used first, with ties
// broken by most recent creation.
func (s *Store) ActiveTemplates() []TaskTemplate {
	var out []TaskTemplate
	for _, t := range s.state.TaskTemplates {
		if !t.Deleted {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UsageCount != out[j].UsageCount {
			return out[i].UsageCount > out[j].UsageCount
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// DeletedTemplates returns the trash, in insertion order.
func (s *Store) DeletedTemplates() []TaskTemplate {
	var out []TaskTemplate
	for _, t := range s.state.TaskTemplates {
		if t.Deleted {
			out = append(out, t)
		}
	}
	return out
}
