package redis

import "fmt"

// Key prefix for all scoreboard data
const keyPrefix = "vierbure"

// playerNamesKey returns the Redis key for the player name LIST
func playerNamesKey(profile string) string {
	return fmt.Sprintf("%s:%s:player_names", keyPrefix, profile)
}

// gameStateKey returns the Redis key for the game state blob
func gameStateKey(profile string) string {
	return fmt.Sprintf("%s:%s:game_state", keyPrefix, profile)
}
