package game

import "time"

// State is one screen of the game: menu, play session, game over.
// Create runs after the state is installed, Destroy before it is replaced
type State interface {
	Create(g *Game)
	Update(g *Game, dt time.Duration)
	Destroy(g *Game)
}
