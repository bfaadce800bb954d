package model

// GameName identifies one of the arcade's mini-games
type GameName string

// The fixed set of games the arcade serves
const (
	GameBlock      GameName = "block"
	GameBulletHell GameName = "bullet_hell"
	GameSnake      GameName = "snake"
	GameKeyboard   GameName = "keyboard"
	GameDino       GameName = "dino"
	GameTwister    GameName = "twister"
)

// Game describes a mini-game for page rendering and navigation
type Game struct {
	Name  GameName
	Title string
}

// Games lists every known game, in the order they appear on the home page
var Games = []Game{
	{GameBlock, "Block Breaker"},
	{GameBulletHell, "Bullet Hell"},
	{GameSnake, "Snake"},
	{GameKeyboard, "Keyboard Hero"},
	{GameDino, "Dino Run"},
	{GameTwister, "Twister"},
}

// GameByName looks up a game in the registry
func GameByName(name GameName) (Game, bool) {
	for _, g := range Games {
		if g.Name == name {
			return g, true
		}
	}
	return Game{}, false
}

// KnownGame reports whether name is in the registry
func KnownGame(name GameName) bool {
	_, ok := GameByName(name)
	return ok
}
