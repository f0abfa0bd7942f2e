package nutriai

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/app"
	"github.com/rsinghcodes/nutriai/internal/config"
	"github.com/rsinghcodes/nutriai/internal/db"
	"github.com/rsinghcodes/nutriai/internal/session"
)

// withSession opens the credential store, builds the API client, resumes
// any persisted session, and hands both to run.
func withSession(run func(client *api.Client, sess *session.Session) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath, err = app.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	if err := app.EnsureDBDir(cfg.DBPath); err != nil {
		return err
	}
	sqldb, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	store := session.NewStore(sqldb)
	client := api.New(cfg.APIURL, cfg.Timeout, store, logger)
	sess := session.New(client, store)
	if err := sess.Resume(); err != nil {
		return err
	}

	runErr := run(client, sess)
	// An auth failure inside run already cleared the store; make sure the
	// in-memory state agrees before the process exits.
	sess.Observe(runErr)
	return runErr
}

// requireStage gates a command on the session lifecycle, mirroring the
// screen-routing contract: unauthenticated users are sent to login,
// un-onboarded users to onboarding.
func requireStage(sess *session.Session, want session.Stage) error {
	stage := sess.Stage()
	if stage == want {
		return nil
	}
	switch stage {
	case session.StageUnauthenticated:
		return fmt.Errorf("not logged in; run \"nutriai login\" first")
	case session.StageOnboarding:
		return fmt.Errorf("onboarding incomplete; run \"nutriai onboard\" first")
	default:
		return fmt.Errorf("already onboarded; this command is only for new accounts")
	}
}

func parseID(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
