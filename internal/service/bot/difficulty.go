package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium // Default to medium
	}
}

// Depth is the search horizon used for the difficulty.
func (d BotDifficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 6
	default:
		return DefaultDepth
	}
}

var botNames = map[BotDifficulty]string{
	DifficultyEasy:   "Alice",
	DifficultyMedium: "Bob",
	DifficultyHard:   "Charles",
}

func (d BotDifficulty) BotName() string {
	if name, ok := botNames[d]; ok {
		return name
	}
	return "BOT"
}
