package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/session"
	"github.com/dmitrijs2005/challengehub/internal/logging"
)

// Session is the part of *session.Manager the commands drive.
type Session interface {
	Login(ctx context.Context, identity, password string) (*models.User, error)
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Logout(ctx context.Context)
	FetchCurrentSession(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (*models.User, error)
	UpdatePassword(ctx context.Context, old, next, confirm string) error
	DeleteAccount(ctx context.Context) error
	ClearError()
	State() session.State
}

// API is the part of *api.Client the commands call directly.
type API interface {
	Challenges(ctx context.Context) ([]models.Challenge, error)
	JoinedChallenges(ctx context.Context) ([]models.Participation, error)
	CreatedChallenges(ctx context.Context) ([]models.Challenge, error)
	CreateChallenge(ctx context.Context, in models.NewChallenge) (models.Ack, error)
	JoinChallenge(ctx context.Context, id models.ID) (models.Ack, error)
	CancelChallenge(ctx context.Context, id models.ID) (models.Ack, error)
	SubmitProof(ctx context.Context, id models.ID, proof models.ProofSubmission) (models.Ack, error)
	ChallengeHistory(ctx context.Context) ([]models.Participation, error)
	UserBadges(ctx context.Context) ([]models.UserBadge, error)
	Badges(ctx context.Context) ([]models.Badge, error)
	EligibleBadges(ctx context.Context) ([]models.Badge, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Users(ctx context.Context) ([]models.User, error)
	BanUser(ctx context.Context, req models.BanRequest) (models.Ack, error)
	UnbanUser(ctx context.Context, req models.UnbanRequest) (models.Ack, error)
	ReviewProof(ctx context.Context, challengeID, proofID models.ID, review models.ProofReview) (models.Ack, error)
}

type App struct {
	session Session
	api     API
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(sess Session, client API, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		session: sess,
		api:     client,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run confirms a restored session with the server and starts the REPL on
// stdin. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Challenge Hub CLI (type 'help' for commands)")

	if a.session.State().Token != "" {
		if _, err := a.session.FetchCurrentSession(ctx); err != nil {
			fmt.Fprintln(a.out, "Saved session is no longer valid, please log in again.")
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) isAdmin() bool {
	s := a.session.State()
	return s.IsAuthenticated && s.User.IsAdmin()
}

func (a *App) getStatus() string {
	s := a.session.State()
	if !s.IsAuthenticated {
		return "(" + s.Status.String() + ")"
	}
	name := ""
	if s.User != nil {
		name = s.User.Username + " "
	}
	if s.PendingConfirmation {
		return fmt.Sprintf("(%sunconfirmed)", name)
	}
	return fmt.Sprintf("(%s%s)", name, s.Status)
}

// requireLogin prints a hint and reports false when nobody is signed in.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}
