package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

// requireAdmin is a convenience check only; the server enforces roles.
func (a *App) requireAdmin() bool {
	if !a.requireLogin() {
		return false
	}
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "This command is for administrators.")
		return false
	}
	return true
}

func (a *App) Users(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	list, err := a.api.Users(ctx)
	if err != nil {
		return err
	}
	printUsers(a.out, list)
	return nil
}

func (a *App) Ban(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("ban <userID> <reason>")
	}
	if !a.requireAdmin() {
		return nil
	}
	req := models.BanRequest{UserID: models.ID(args[0]), Reason: strings.Join(args[1:], " ")}
	if _, err := a.api.BanUser(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s banned\n", args[0])
	return nil
}

func (a *App) Unban(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("unban <userID>")
	}
	if !a.requireAdmin() {
		return nil
	}
	if _, err := a.api.UnbanUser(ctx, models.UnbanRequest{UserID: models.ID(args[0])}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s unbanned\n", args[0])
	return nil
}

// Review approves or rejects a proof. A rejection may carry a reason.
func (a *App) Review(ctx context.Context, args []string) error {
	const usage = usageError("review <challengeID> <proofID> approve|reject [reason]")
	if len(args) < 3 {
		return usage
	}

	review := models.ProofReview{}
	switch strings.ToLower(args[2]) {
	case "approve":
		review.Status = models.ProofApproved
	case "reject":
		review.Status = models.ProofRejected
		review.RejectionReason = strings.Join(args[3:], " ")
	default:
		return usage
	}

	if !a.requireAdmin() {
		return nil
	}
	if _, err := a.api.ReviewProof(ctx, models.ID(args[0]), models.ID(args[1]), review); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Proof %s %s\n", args[1], strings.ToLower(string(review.Status)))
	return nil
}
