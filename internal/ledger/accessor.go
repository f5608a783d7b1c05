package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-engine/internal/types"
)

// Store is the persistence surface the accessor reads from.
type Store interface {
	ListSkills(ctx context.Context) ([]types.Skill, error)
	ListProjects(ctx context.Context) ([]types.Project, error)
	ListExperiences(ctx context.Context) ([]types.Experience, error)
	ListAchievements(ctx context.Context) ([]types.Achievement, error)
}

// Accessor produces ledger snapshots from a store.
type Accessor struct {
	store Store
}

// NewAccessor creates an accessor over the given store.
func NewAccessor(store Store) *Accessor {
	return &Accessor{store: store}
}

// Snapshot reads all four ledger collections concurrently and returns them
// as one consistent view.
func (a *Accessor) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snapshot Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := a.store.ListSkills(ctx)
		snapshot.Skills = skills
		return err
	})
	g.Go(func() error {
		projects, err := a.store.ListProjects(ctx)
		snapshot.Projects = projects
		return err
	})
	g.Go(func() error {
		experiences, err := a.store.ListExperiences(ctx)
		snapshot.Experiences = experiences
		return err
	})
	g.Go(func() error {
		achievements, err := a.store.ListAchievements(ctx)
		snapshot.Achievements = achievements
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}
	return &snapshot, nil
}
