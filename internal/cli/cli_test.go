package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramavi/balans/internal/repository"
	"github.com/ramavi/balans/internal/service"
	"github.com/ramavi/balans/internal/testutil"
)

// newTestApp wires a full App over an in-memory database. Interactive
// forms are disabled so commands behave like a piped shell.
func newTestApp(t *testing.T) *App {
	t.Helper()

	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Tasks:         service.NewTaskService(taskRepo, userRepo, uow),
		Analysis:      service.NewAnalysisService(taskRepo),
		Users:         service.NewUserService(userRepo),
		UserID:        "test-user",
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := execute(t, app, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}

func registerUser(t *testing.T, app *App) {
	t.Helper()
	mustExecute(t, app, "user", "register", "--name", "Test User", "--email", "test@example.com")
}

// taskID extracts the short ID from "Created task NAME [abcd1234]" output.
func taskID(t *testing.T, out string) string {
	t.Helper()
	start := strings.LastIndex(out, "[")
	end := strings.LastIndex(out, "]")
	require.True(t, start >= 0 && end > start, "no task ID in output: %q", out)
	return out[start+1 : end]
}

func TestUserRegisterAndShow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "user", "show")
	assert.Contains(t, out, "Test User")
	assert.Contains(t, out, "test@example.com")
	assert.Contains(t, out, "Tasks created    0")
}

func TestTaskCreateListShow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create",
		"--name", "Write the report",
		"--category", "work",
		"--estimate", "45")
	id := taskID(t, out)

	listOut := mustExecute(t, app, "task", "list")
	assert.Contains(t, listOut, "Write the report")
	assert.Contains(t, listOut, "Pending")

	showOut := mustExecute(t, app, "task", "show", id)
	assert.Contains(t, showOut, "Write the report")
	assert.Contains(t, showOut, "45m")
}

func TestTaskCreate_RequiresNameWhenNotInteractive(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	_, err := execute(t, app, "task", "create", "--category", "work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name is required")
}

func TestTaskCreate_RejectsInvalidCategory(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	_, err := execute(t, app, "task", "create", "--name", "x", "--category", "gardening")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestTaskLifecycleCommands(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Deep work", "--category", "work")
	id := taskID(t, out)

	startOut := mustExecute(t, app, "task", "start", id)
	assert.Contains(t, startOut, "Tracking started")

	listOut := mustExecute(t, app, "task", "list")
	assert.Contains(t, listOut, "tracking")

	stopOut := mustExecute(t, app, "task", "stop", id)
	assert.Contains(t, stopOut, "Session closed")

	completeOut := mustExecute(t, app, "task", "complete", id, "--feeling", "8", "--note", "went well")
	assert.Contains(t, completeOut, "Completed Deep work")

	// Second completion is rejected.
	_, err := execute(t, app, "task", "complete", id, "--feeling", "8")
	require.Error(t, err)

	showOut := mustExecute(t, app, "task", "show", id)
	assert.Contains(t, showOut, "went well")
	assert.Contains(t, showOut, "8/10")

	userOut := mustExecute(t, app, "user", "show")
	assert.Contains(t, userOut, "Tasks completed  1")
}

func TestTaskStop_WithoutOpenSession(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Idle", "--category", "study")
	id := taskID(t, out)

	_, err := execute(t, app, "task", "stop", id)
	require.Error(t, err)
}

func TestTaskEmotionCommand(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Call mom", "--category", "socialFriends")
	id := taskID(t, out)

	mustExecute(t, app, "task", "emotion", id, "--phase", "before", "--level", "4", "--note", "nervous")

	// The before slot is write-once.
	_, err := execute(t, app, "task", "emotion", id, "--phase", "before", "--level", "6")
	require.Error(t, err)

	_, err = execute(t, app, "task", "emotion", id, "--phase", "during", "--level", "12")
	require.Error(t, err)

	showOut := mustExecute(t, app, "task", "show", id)
	assert.Contains(t, showOut, "nervous")
}

func TestTaskDeleteCommand(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Oops", "--category", "work")
	id := taskID(t, out)

	mustExecute(t, app, "task", "delete", id)

	listOut := mustExecute(t, app, "task", "list")
	assert.Contains(t, listOut, "No tasks found.")
}

func TestTaskIDPrefixResolution(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Prefixed", "--category", "work")
	id := taskID(t, out)

	// The 8-char short ID printed at creation resolves as a prefix.
	showOut := mustExecute(t, app, "task", "show", id[:4])
	assert.Contains(t, showOut, "Prefixed")

	_, err := execute(t, app, "task", "show", "zzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAnalysisAndBalanceCommands(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "task", "create", "--name", "Ship it", "--category", "work")
	id := taskID(t, out)
	mustExecute(t, app, "task", "complete", id)

	analysisOut := mustExecute(t, app, "analysis", "--window", "week")
	assert.Contains(t, analysisOut, "Work")
	assert.Contains(t, analysisOut, "Partner")
	assert.Contains(t, analysisOut, "last 7 days")

	balanceOut := mustExecute(t, app, "balance")
	assert.Contains(t, balanceOut, "all time")

	_, err := execute(t, app, "analysis", "--window", "fortnight")
	require.Error(t, err)
}

func TestBalanceInsightFallsBackWithoutModel(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "balance", "--insight")
	assert.Contains(t, out, "INSIGHT")
	assert.Contains(t, out, "No completed")
}

func TestSuggestCommandUsesFallback(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "suggest", "--category", "socialPartner")
	assert.Contains(t, out, "built-in suggestions")
	assert.Contains(t, out, "1.")
}

func TestSuggestSaveCreatesTask(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	out := mustExecute(t, app, "suggest", "--category", "study", "--save", "1")
	assert.Contains(t, out, "Created task")

	listOut := mustExecute(t, app, "task", "list")
	assert.Contains(t, listOut, "Study")
}
