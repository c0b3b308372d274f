package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

func (a *App) Challenges(ctx context.Context) error {
	list, err := a.api.Challenges(ctx)
	if err != nil {
		return err
	}
	printChallenges(a.out, list)
	return nil
}

func (a *App) Joined(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list, err := a.api.JoinedChallenges(ctx)
	if err != nil {
		return err
	}
	printParticipations(a.out, list)
	return nil
}

func (a *App) Created(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list, err := a.api.CreatedChallenges(ctx)
	if err != nil {
		return err
	}
	printChallenges(a.out, list)
	return nil
}

func (a *App) History(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	list, err := a.api.ChallengeHistory(ctx)
	if err != nil {
		return err
	}
	printParticipations(a.out, list)
	return nil
}

// Create walks through the new-challenge form.
func (a *App) Create(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return usageError("a challenge needs a title")
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	difficulty, err := getSimpleText(a.reader, "Difficulty (easy, medium, hard)", a.out)
	if err != nil {
		return err
	}
	xp, err := getSimpleText(a.reader, "Experience reward (number, empty for none)", a.out)
	if err != nil {
		return err
	}
	cats, err := getSimpleText(a.reader, "Category IDs (comma separated, empty for none)", a.out)
	if err != nil {
		return err
	}

	in := models.NewChallenge{
		Title:       title,
		Description: description,
		Difficulty:  models.Difficulty(strings.ToUpper(strings.TrimSpace(difficulty))),
		IsPublic:    true,
	}
	if xp != "" {
		n, err := strconv.Atoi(xp)
		if err != nil {
			return fmt.Errorf("experience reward: %w", err)
		}
		in.ExpReward = n
	}
	for _, id := range strings.Split(cats, ",") {
		if id = strings.TrimSpace(id); id != "" {
			in.CategoryIDs = append(in.CategoryIDs, models.ID(id))
		}
	}

	if _, err := a.api.CreateChallenge(ctx, in); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Challenge created")
	return nil
}

func (a *App) Join(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("join <challengeID>")
	}
	if !a.requireLogin() {
		return nil
	}
	if _, err := a.api.JoinChallenge(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Joined challenge %s\n", args[0])
	return nil
}

func (a *App) Cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("cancel <challengeID>")
	}
	if !a.requireLogin() {
		return nil
	}
	if _, err := a.api.CancelChallenge(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Challenge %s cancelled\n", args[0])
	return nil
}

// Submit uploads one or more proof images with a note.
func (a *App) Submit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("submit <challengeID> <file>...")
	}
	if !a.requireLogin() {
		return nil
	}

	proof := models.ProofSubmission{}
	for _, path := range args[1:] {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open proof: %w", err)
		}
		defer f.Close()
		proof.Files = append(proof.Files, models.Upload{FileName: filepath.Base(path), Content: f})
	}

	note, err := GetMultiline(a.reader, "Note for the reviewer", a.out)
	if err != nil {
		return err
	}
	proof.Note = note

	if _, err := a.api.SubmitProof(ctx, models.ID(args[0]), proof); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Proof submitted")
	return nil
}
