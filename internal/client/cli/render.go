package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	s := make([]string, len(cols))
	for i, c := range cols {
		s[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(s, "\t"))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func printUser(w io.Writer, u *models.User) {
	if u == nil {
		fmt.Fprintln(w, "(no user)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row(tw, "ID:", u.ID)
	row(tw, "Username:", u.Username)
	row(tw, "Email:", u.Email)
	row(tw, "Role:", u.Role)
	row(tw, "Name:", strings.TrimSpace(deref(u.Firstname)+" "+deref(u.Lastname)))
	row(tw, "Level:", deref(u.Level))
	row(tw, "Experience:", deref(u.Experience))
	if deref(u.IsBanned) {
		row(tw, "Banned:", deref(u.BanReason))
	}
	_ = tw.Flush()
}

func printChallenges(w io.Writer, list []models.Challenge) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No challenges")
		return
	}
	tw := newTable(w, "ID", "TITLE", "DIFFICULTY", "STATUS", "XP", "ENDS", "CATEGORIES")
	for _, c := range list {
		cats := make([]string, len(c.Categories))
		for i, cat := range c.Categories {
			cats[i] = cat.Name
		}
		row(tw, c.ID, c.Title, c.Difficulty, c.Status, c.ExpReward, date(c.EndDate), strings.Join(cats, ","))
	}
	_ = tw.Flush()
}

func printParticipations(w io.Writer, list []models.Participation) {
	if len(list) == 0 {
		fmt.Fprintln(w, "Nothing here yet")
		return
	}
	tw := newTable(w, "CHALLENGE", "TITLE", "STATUS", "JOINED", "COMPLETED")
	for _, p := range list {
		title := ""
		if p.Challenge != nil {
			title = p.Challenge.Title
		}
		row(tw, p.ChallengeID, title, p.Status, date(p.JoinedAt), date(p.CompletedAt))
	}
	_ = tw.Flush()
}

func printBadges(w io.Writer, list []models.Badge) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No badges")
		return
	}
	tw := newTable(w, "ID", "NAME", "DESCRIPTION")
	for _, b := range list {
		row(tw, b.ID, b.Name, b.Description)
	}
	_ = tw.Flush()
}

func printUsers(w io.Writer, list []models.User) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No users")
		return
	}
	tw := newTable(w, "ID", "USERNAME", "EMAIL", "ROLE", "BANNED", "REASON")
	for _, u := range list {
		row(tw, u.ID, u.Username, u.Email, u.Role, deref(u.IsBanned), deref(u.BanReason))
	}
	_ = tw.Flush()
}
