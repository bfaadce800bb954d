package web_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/arcade-go/internal/model"
)

func TestHomeListsGames(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "ul.game-list")
	assert.Equal(t, len(model.Games), doc.Find("ul.game-list li").Length())
	assertContainsElement(t, doc, `a[href='/games/snake']`)
}

func TestHomeShowsLoginLinkWhenAnonymous(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "Log in")
	assertContainsText(t, doc, "nav", "Register")
}

func TestGamePage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/snake")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, `script[src='/static/js/snake.js']`)
}

func TestGamePageUnknownGame(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/pacman")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLeaderboardEmpty(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/leaderboard")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "p.empty", "No scores yet")
}

func TestLeaderboardShowsEntries(t *testing.T) {
	ts := newWebTestServer(t)

	user, err := ts.app.AuthService.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	require.NoError(t, ts.app.ScoreService.Record(context.Background(), user.ID, model.GameSnake, 100))
	require.NoError(t, ts.app.ScoreService.Record(context.Background(), user.ID, model.GameSnake, 300))

	rr := ts.get("/leaderboard?game=snake")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	rows := doc.Find("table.leaderboard tbody tr")
	require.Equal(t, 2, rows.Length())

	// Highest score first
	first := rows.First()
	assert.Contains(t, first.Text(), "alice")
	assert.Contains(t, first.Text(), "300")
}

func TestLeaderboardDefaultsToFirstGame(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/leaderboard")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h2", model.Games[0].Title)
}

func TestLeaderboardUnknownGame(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/leaderboard?game=pacman")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
