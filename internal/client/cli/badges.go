package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"golang.org/x/sync/errgroup"
)

func (a *App) Badges(ctx context.Context) error {
	list, err := a.api.Badges(ctx)
	if err != nil {
		return err
	}
	printBadges(a.out, list)
	return nil
}

func (a *App) Eligible(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list, err := a.api.EligibleBadges(ctx)
	if err != nil {
		return err
	}
	printBadges(a.out, list)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	list, err := a.api.Categories(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No categories")
		return nil
	}
	tw := newTable(a.out, "ID", "NAME")
	for _, c := range list {
		row(tw, c.ID, c.Name)
	}
	return tw.Flush()
}

// Overview loads the dashboard counters concurrently. Admins also get the
// user totals. The first failure cancels the rest.
func (a *App) Overview(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	var (
		challenges []models.Challenge
		joined     []models.Participation
		earned     []models.UserBadge
		categories []models.Category
		users      []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		challenges, err = a.api.Challenges(gctx)
		return err
	})
	g.Go(func() (err error) {
		joined, err = a.api.JoinedChallenges(gctx)
		return err
	})
	g.Go(func() (err error) {
		earned, err = a.api.UserBadges(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = a.api.Categories(gctx)
		return err
	})
	if a.isAdmin() {
		g.Go(func() (err error) {
			users, err = a.api.Users(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	completed := 0
	for _, p := range joined {
		if p.Status == models.ChallengeCompleted {
			completed++
		}
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	row(tw, "Challenges:", len(challenges))
	row(tw, "Joined:", len(joined))
	row(tw, "Completed:", completed)
	row(tw, "Badges earned:", len(earned))
	row(tw, "Categories:", len(categories))
	if users != nil {
		banned := 0
		for _, u := range users {
			if u.IsBanned != nil && *u.IsBanned {
				banned++
			}
		}
		row(tw, "Users:", len(users))
		row(tw, "Banned users:", banned)
	}
	return tw.Flush()
}
